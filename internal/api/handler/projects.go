package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/usecases/planning"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
	"github.com/vfg2006/adtracker-api/pkg/log"
	"github.com/vfg2006/adtracker-api/pkg/middleware"
)

func ListProjects(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		projects, err := service.ListProjects()
		if err != nil {
			logger.WithError(err).Error("projetos: falha ao listar projetos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar projetos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(projects); err != nil {
			logger.WithError(err).Error("projetos: falha ao codificar resposta")
		}
	})
}

func CreateProject(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var project domain.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateProject(&project)
		if err != nil {
			writePlanningError(w, logger, err, "Erro ao criar projeto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("projetos: falha ao codificar resposta")
		}
	})
}

func UpdateProject(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		var project domain.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		project.ID = id

		if err := service.UpdateProject(&project); err != nil {
			writePlanningError(w, logger, err, "Erro ao atualizar projeto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteProject(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		if err := service.DeleteProject(id); err != nil {
			logger.WithError(err).WithField("project_id", id).Error("projetos: falha ao excluir projeto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir projeto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListTasks(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		tasks, err := service.ListTasks(projectID)
		if err != nil {
			logger.WithError(err).WithField("project_id", projectID).Error("tarefas: falha ao listar tarefas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar tarefas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			logger.WithError(err).Error("tarefas: falha ao codificar resposta")
		}
	})
}

func CreateTask(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		actor, ok := actorFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Membro não autenticado", nil)
			return
		}

		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)
			return
		}

		var task domain.Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		task.ProjectID = projectID

		created, err := service.CreateTask(&task, actor)
		if err != nil {
			writePlanningError(w, logger, err, "Erro ao criar tarefa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("tarefas: falha ao codificar resposta")
		}
	})
}

func UpdateTask(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		actor, ok := actorFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Membro não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa não fornecido", nil)
			return
		}

		var req domain.UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		updated, err := service.UpdateTask(&req, actor)
		if err != nil {
			writePlanningError(w, logger, err, "Erro ao atualizar tarefa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logger.WithError(err).Error("tarefas: falha ao codificar resposta")
		}
	})
}

func DeleteTask(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa não fornecido", nil)
			return
		}

		if err := service.DeleteTask(id); err != nil {
			logger.WithError(err).WithField("task_id", id).Error("tarefas: falha ao excluir tarefa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir tarefa", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// actorFromContext reconstrói o membro que executa a ação a partir dos
// claims do token, para fins de autoria de instruções e anotações
func actorFromContext(r *http.Request) (*domain.TeamMember, bool) {
	claims := middleware.MemberFromContext(r.Context())
	if claims == nil {
		return nil, false
	}

	return &domain.TeamMember{
		ID:    claims.MemberID,
		Name:  claims.MemberName,
		Email: claims.MemberEmail,
		Role:  claims.MemberRole,
	}, true
}

func writePlanningError(w http.ResponseWriter, logger log.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, planning.ErrProjectNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Projeto não encontrado", nil)

	case errors.Is(err, planning.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Tarefa não encontrada", nil)

	case errors.Is(err, planning.ErrProjectNameRequired),
		errors.Is(err, planning.ErrTaskTextRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, planning.ErrInvalidProjectStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logger.WithError(err).Error("planejamento: operação falhou")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
