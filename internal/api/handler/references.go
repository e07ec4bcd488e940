package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/usecases/spying"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
	"github.com/vfg2006/adtracker-api/pkg/log"
)

func ListReferences(service spying.Spy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter := spying.ReferenceFilter{
			Niche:  r.URL.Query().Get("niche"),
			Search: r.URL.Query().Get("search"),
		}

		references, err := service.ListReferences(filter)
		if err != nil {
			logger.WithError(err).Error("referências: falha ao listar acervo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar referências", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(references); err != nil {
			logger.WithError(err).Error("referências: falha ao codificar resposta")
		}
	})
}

func CreateReference(service spying.Spy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var reference domain.Reference
		if err := json.NewDecoder(r.Body).Decode(&reference); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateReference(&reference)
		if err != nil {
			switch {
			case errors.Is(err, spying.ErrTitleRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

			case errors.Is(err, spying.ErrInvalidSource):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				logger.WithError(err).Error("referências: falha ao salvar referência")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao salvar referência", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("referências: falha ao codificar resposta")
		}
	})
}

func DeleteReference(service spying.Spy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da referência não fornecido", nil)
			return
		}

		if err := service.DeleteReference(id); err != nil {
			logger.WithError(err).WithField("reference_id", id).Error("referências: falha ao excluir referência")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir referência", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
