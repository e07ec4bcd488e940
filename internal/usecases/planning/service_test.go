package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var gestor = &domain.TeamMember{ID: "m1", Name: "Vinícius"}
var editor = &domain.TeamMember{ID: "m2", Name: "Marina"}

func newServiceWithMocks(ctrl *gomock.Controller) (Planner, *mocks.MockProjectRepository, *mocks.MockTaskRepository) {
	projectRepo := mocks.NewMockProjectRepository(ctrl)
	taskRepo := mocks.NewMockTaskRepository(ctrl)

	return NewService(projectRepo, taskRepo), projectRepo, taskRepo
}

func TestService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, projectRepo, _ := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().CreateProject(gomock.Any()).Return(nil)

	project, err := service.CreateProject(&domain.Project{Name: "Nova Loja"})

	require.NoError(t, err)
	assert.Len(t, project.ID, 6)
	assert.Equal(t, domain.ProjectStatusActive, project.Status)
}

func TestService_CreateProject_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newServiceWithMocks(ctrl)

	_, err := service.CreateProject(&domain.Project{})
	assert.ErrorIs(t, err, ErrProjectNameRequired)

	_, err = service.CreateProject(&domain.Project{Name: "X", Status: domain.ProjectStatus("Arquivado")})
	assert.ErrorIs(t, err, ErrInvalidProjectStatus)
}

func TestService_CreateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, projectRepo, taskRepo := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().GetProjectByID("p1").Return(&domain.Project{ID: "p1", Name: "Nova Loja"}, nil)
	taskRepo.EXPECT().CreateTask(gomock.Any()).Return(nil)

	task, err := service.CreateTask(&domain.Task{
		ProjectID:    "p1",
		Text:         "Subir criativos",
		Instructions: "Usar os 3 últimos vídeos validados",
	}, gestor)

	require.NoError(t, err)
	assert.Len(t, task.ID, 6)
	assert.Equal(t, "Vinícius", task.InstructionAuthor)
}

func TestService_CreateTask_ProjectMustExist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, projectRepo, _ := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().GetProjectByID("fantasma").Return(nil, nil)

	_, err := service.CreateTask(&domain.Task{ProjectID: "fantasma", Text: "x"}, gestor)

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestService_UpdateTask_AuthorAttribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, taskRepo := newServiceWithMocks(ctrl)

	existing := &domain.Task{
		ID:                "t1",
		ProjectID:         "p1",
		Text:              "Subir criativos",
		Instructions:      "Usar os vídeos antigos",
		InstructionAuthor: "Vinícius",
	}
	taskRepo.EXPECT().GetTaskByID("t1").Return(existing, nil)
	taskRepo.EXPECT().UpdateTask(gomock.Any()).Return(nil)

	newInstructions := "Usar os vídeos novos"
	notes := "Feito, faltou o terceiro"

	task, err := service.UpdateTask(&domain.UpdateTaskRequest{
		ID:            "t1",
		Instructions:  &newInstructions,
		AssigneeNotes: &notes,
	}, editor)

	require.NoError(t, err)
	assert.Equal(t, "Marina", task.InstructionAuthor)
	assert.Equal(t, "Marina", task.NotesAuthor)
}

// Alterações que não tocam instruções nem anotações não mudam a autoria.
func TestService_UpdateTask_UnchangedFieldsKeepAuthors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, taskRepo := newServiceWithMocks(ctrl)

	existing := &domain.Task{
		ID:                "t1",
		ProjectID:         "p1",
		Text:              "Subir criativos",
		Instructions:      "Usar os vídeos novos",
		InstructionAuthor: "Vinícius",
	}
	taskRepo.EXPECT().GetTaskByID("t1").Return(existing, nil)
	taskRepo.EXPECT().UpdateTask(gomock.Any()).Return(nil)

	sameInstructions := "Usar os vídeos novos"
	completed := true

	task, err := service.UpdateTask(&domain.UpdateTaskRequest{
		ID:           "t1",
		Instructions: &sameInstructions,
		Completed:    &completed,
	}, editor)

	require.NoError(t, err)
	assert.Equal(t, "Vinícius", task.InstructionAuthor)
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
}

func TestService_UpdateTask_ReopenClearsCompletedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, taskRepo := newServiceWithMocks(ctrl)

	completedAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	existing := &domain.Task{
		ID:          "t1",
		ProjectID:   "p1",
		Text:        "Subir criativos",
		Completed:   true,
		CompletedAt: &completedAt,
	}
	taskRepo.EXPECT().GetTaskByID("t1").Return(existing, nil)
	taskRepo.EXPECT().UpdateTask(gomock.Any()).Return(nil)

	reopened := false
	task, err := service.UpdateTask(&domain.UpdateTaskRequest{
		ID:        "t1",
		Completed: &reopened,
	}, gestor)

	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
}

func TestService_UpdateTask_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, taskRepo := newServiceWithMocks(ctrl)

	taskRepo.EXPECT().GetTaskByID("nope").Return(nil, nil)

	_, err := service.UpdateTask(&domain.UpdateTaskRequest{ID: "nope"}, gestor)

	assert.ErrorIs(t, err, ErrTaskNotFound)
}
