package planning

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/infrastructure/repository"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/pkg/utils"
)

// Planner expõe o quadro de projetos e tarefas da operação. O progresso
// de um projeto é sempre derivado da contagem de tarefas concluídas.
type Planner interface {
	ListProjects() ([]*domain.Project, error)
	CreateProject(project *domain.Project) (*domain.Project, error)
	UpdateProject(project *domain.Project) error
	DeleteProject(id string) error

	ListTasks(projectID string) ([]*domain.Task, error)
	CreateTask(task *domain.Task, actor *domain.TeamMember) (*domain.Task, error)
	UpdateTask(req *domain.UpdateTaskRequest, actor *domain.TeamMember) (*domain.Task, error)
	DeleteTask(id string) error
}

type Service struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

func NewService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) Planner {
	return &Service{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

func (s *Service) ListProjects() ([]*domain.Project, error) {
	return s.projectRepo.ListProjects()
}

func (s *Service) CreateProject(project *domain.Project) (*domain.Project, error) {
	if project.Name == "" {
		return nil, ErrProjectNameRequired
	}

	if project.Status == "" {
		project.Status = domain.ProjectStatusActive
	}

	if !project.Status.Valid() {
		return nil, ErrInvalidProjectStatus
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID do projeto")
		return nil, err
	}
	project.ID = id

	if err := s.projectRepo.CreateProject(project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *Service) UpdateProject(project *domain.Project) error {
	if project.Name == "" {
		return ErrProjectNameRequired
	}

	if !project.Status.Valid() {
		return ErrInvalidProjectStatus
	}

	existing, err := s.projectRepo.GetProjectByID(project.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProjectNotFound
	}

	return s.projectRepo.UpdateProject(project)
}

func (s *Service) DeleteProject(id string) error {
	return s.projectRepo.DeleteProject(id)
}

func (s *Service) ListTasks(projectID string) ([]*domain.Task, error) {
	return s.taskRepo.ListTasksByProject(projectID)
}

func (s *Service) CreateTask(task *domain.Task, actor *domain.TeamMember) (*domain.Task, error) {
	if task.Text == "" {
		return nil, ErrTaskTextRequired
	}

	project, err := s.projectRepo.GetProjectByID(task.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if task.Instructions != "" && actor != nil {
		task.InstructionAuthor = actor.Name
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID da tarefa")
		return nil, err
	}
	task.ID = id

	if err := s.taskRepo.CreateTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask aplica alterações parciais registrando a autoria: quem mexeu
// nas instruções vira InstructionAuthor, quem mexeu nas anotações vira
// NotesAuthor. Concluir carimba CompletedAt; reabrir o apaga.
func (s *Service) UpdateTask(req *domain.UpdateTaskRequest, actor *domain.TeamMember) (*domain.Task, error) {
	task, err := s.taskRepo.GetTaskByID(req.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Text != nil {
		if *req.Text == "" {
			return nil, ErrTaskTextRequired
		}
		task.Text = *req.Text
	}

	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}

	if req.Instructions != nil && *req.Instructions != task.Instructions {
		task.Instructions = *req.Instructions
		if actor != nil {
			task.InstructionAuthor = actor.Name
		}
	}

	if req.AssigneeNotes != nil && *req.AssigneeNotes != task.AssigneeNotes {
		task.AssigneeNotes = *req.AssigneeNotes
		if actor != nil {
			task.NotesAuthor = actor.Name
		}
	}

	if req.Completed != nil && *req.Completed != task.Completed {
		task.Completed = *req.Completed
		if task.Completed {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := s.taskRepo.UpdateTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *Service) DeleteTask(id string) error {
	return s.taskRepo.DeleteTask(id)
}
