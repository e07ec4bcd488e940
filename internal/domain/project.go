package domain

import "time"

// ProjectStatus representa a situação de um projeto da operação
type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "Ativo"
	ProjectStatusPaused ProjectStatus = "Pausado"
	ProjectStatusDone   ProjectStatus = "Concluído"
)

// Valid indica se o status é um dos valores conhecidos
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusPaused, ProjectStatusDone:
		return true
	}
	return false
}

// Project agrupa tarefas da operação. Progress é derivado: percentual de
// tarefas concluídas, recalculado a cada mutação de tarefa.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Task é um item de trabalho de um projeto. Os campos *Author registram o
// nome do membro que editou instruções/anotações pela última vez.
type Task struct {
	ID                string     `json:"id"`
	ProjectID         string     `json:"project_id"`
	Text              string     `json:"text"`
	Completed         bool       `json:"completed"`
	AssigneeID        *string    `json:"assignee_id,omitempty"`
	Instructions      string     `json:"instructions,omitempty"`
	AssigneeNotes     string     `json:"assignee_notes,omitempty"`
	InstructionAuthor string     `json:"instruction_author,omitempty"`
	NotesAuthor       string     `json:"notes_author,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// UpdateTaskRequest carrega alterações parciais de uma tarefa
type UpdateTaskRequest struct {
	ID            string  `json:"id"`
	Text          *string `json:"text"`
	Completed     *bool   `json:"completed"`
	AssigneeID    *string `json:"assignee_id"`
	Instructions  *string `json:"instructions"`
	AssigneeNotes *string `json:"assignee_notes"`
}
