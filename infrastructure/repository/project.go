package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const (
	projectsTable = "projects p"
	tasksTable    = "tasks t"
)

type ProjectRepository interface {
	ListProjects() ([]*domain.Project, error)
	GetProjectByID(id string) (*domain.Project, error)
	CreateProject(project *domain.Project) error
	UpdateProject(project *domain.Project) error
	DeleteProject(id string) error
}

type TaskRepository interface {
	ListTasksByProject(projectID string) ([]*domain.Task, error)
	GetTaskByID(id string) (*domain.Task, error)
	CreateTask(task *domain.Task) error
	UpdateTask(task *domain.Task) error
	DeleteTask(id string) error
	CountTasksByProject(projectID string) (total int, completed int, err error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

// ListProjects retorna os projetos com o progresso derivado da contagem de
// tarefas concluídas, calculado na própria query.
func (r *projectRepository) ListProjects() ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns).
		From(projectsTable).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return projects, nil
}

const projectColumns = `p.id, p.name, p.description, p.status, p.created_at,
		COALESCE((SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id), 0) AS total_tasks,
		COALESCE((SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id AND t.completed), 0) AS completed_tasks`

type projectScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row projectScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var total, completed int
	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.CreatedAt,
		&total,
		&completed,
	); err != nil {
		return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
	}
	if total > 0 {
		project.Progress = completed * 100 / total
	}
	return project, nil
}

func (r *projectRepository) GetProjectByID(id string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns).
		From(projectsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	project, err := scanProject(r.conn.QueryRow(query, args...))
	if err != nil {
		if errIsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return project, nil
}

func (r *projectRepository) CreateProject(project *domain.Project) error {
	query, args, err := squirrel.
		Insert("projects").
		Columns("id", "name", "description", "status").
		Values(project.ID, project.Name, project.Description, project.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir projeto: %w", err)
	}

	return nil
}

func (r *projectRepository) UpdateProject(project *domain.Project) error {
	query, args, err := squirrel.
		Update("projects").
		Set("name", project.Name).
		Set("description", project.Description).
		Set("status", project.Status).
		Where(squirrel.Eq{"id": project.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar projeto: %w", err)
	}

	return nil
}

// DeleteProject remove o projeto e as tarefas associadas na mesma transação.
func (r *projectRepository) DeleteProject(id string) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		deleteTasks, args, err := squirrel.
			Delete("tasks").
			Where(squirrel.Eq{"project_id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
		if _, err := tx.Exec(deleteTasks, args...); err != nil {
			return fmt.Errorf("erro ao excluir tarefas do projeto: %w", err)
		}

		deleteProject, args, err := squirrel.
			Delete("projects").
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
		if _, err := tx.Exec(deleteProject, args...); err != nil {
			return fmt.Errorf("erro ao excluir projeto: %w", err)
		}

		return nil
	})
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

const taskColumns = "t.id, t.project_id, t.text, t.completed, t.assignee_id, t.instructions, t.assignee_notes, t.instruction_author, t.notes_author, t.completed_at, t.created_at"

func scanTask(row projectScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var (
		instructions      sql.NullString
		assigneeNotes     sql.NullString
		instructionAuthor sql.NullString
		notesAuthor       sql.NullString
	)
	if err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Text,
		&task.Completed,
		&task.AssigneeID,
		&instructions,
		&assigneeNotes,
		&instructionAuthor,
		&notesAuthor,
		&task.CompletedAt,
		&task.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
	}
	task.Instructions = instructions.String
	task.AssigneeNotes = assigneeNotes.String
	task.InstructionAuthor = instructionAuthor.String
	task.NotesAuthor = notesAuthor.String
	return task, nil
}

func (r *taskRepository) ListTasksByProject(projectID string) ([]*domain.Task, error) {
	query, args, err := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.Eq{"t.project_id": projectID}).
		OrderBy("t.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) GetTaskByID(id string) (*domain.Task, error) {
	query, args, err := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	task, err := scanTask(r.conn.QueryRow(query, args...))
	if err != nil {
		if errIsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) CreateTask(task *domain.Task) error {
	query, args, err := squirrel.
		Insert("tasks").
		Columns("id", "project_id", "text", "completed", "assignee_id", "instructions", "assignee_notes", "instruction_author", "notes_author").
		Values(task.ID, task.ProjectID, task.Text, task.Completed, task.AssigneeID, task.Instructions, task.AssigneeNotes, task.InstructionAuthor, task.NotesAuthor).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir tarefa: %w", err)
	}

	return nil
}

func (r *taskRepository) UpdateTask(task *domain.Task) error {
	var completedAt interface{}
	if task.CompletedAt != nil {
		completedAt = *task.CompletedAt
	}

	query, args, err := squirrel.
		Update("tasks").
		Set("text", task.Text).
		Set("completed", task.Completed).
		Set("assignee_id", task.AssigneeID).
		Set("instructions", task.Instructions).
		Set("assignee_notes", task.AssigneeNotes).
		Set("instruction_author", task.InstructionAuthor).
		Set("notes_author", task.NotesAuthor).
		Set("completed_at", completedAt).
		Where(squirrel.Eq{"id": task.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar tarefa: %w", err)
	}

	return nil
}

func (r *taskRepository) DeleteTask(id string) error {
	query, args, err := squirrel.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir tarefa: %w", err)
	}

	return nil
}

func (r *taskRepository) CountTasksByProject(projectID string) (int, int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(CASE WHEN t.completed THEN 1 ELSE 0 END), 0)").
		From(tasksTable).
		Where(squirrel.Eq{"t.project_id": projectID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total, completed int
	if err := r.conn.QueryRow(query, args...).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("erro ao contar tarefas: %w", err)
	}

	return total, completed, nil
}

func errIsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
