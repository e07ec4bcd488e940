package planning

import "errors"

// Erros do contexto de projetos e tarefas
var (
	ErrProjectNotFound      = errors.New("projeto não encontrado")
	ErrProjectNameRequired  = errors.New("nome do projeto é obrigatório")
	ErrInvalidProjectStatus = errors.New("status de projeto inválido")
	ErrTaskNotFound         = errors.New("tarefa não encontrada")
	ErrTaskTextRequired     = errors.New("texto da tarefa é obrigatório")
)
