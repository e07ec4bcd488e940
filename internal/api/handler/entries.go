package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/usecases/tracking"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
	"github.com/vfg2006/adtracker-api/pkg/log"
)

func ListAdEntries(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entries, err := service.ListAdEntries()
		if err != nil {
			logger.WithError(err).Error("anúncios: falha ao listar lançamentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lançamentos de anúncios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("anúncios: falha ao codificar resposta")
		}
	})
}

func CreateAdEntry(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var entry domain.AdEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateAdEntry(&entry)
		if err != nil {
			writeTrackingError(w, logger, err, "Erro ao registrar lançamento de anúncio")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("anúncios: falha ao codificar resposta")
		}
	})
}

func DeleteAdEntry(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		if err := service.DeleteAdEntry(id); err != nil {
			logger.WithError(err).WithField("entry_id", id).Error("anúncios: falha ao excluir lançamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir lançamento", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListExpenses(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		expenses, err := service.ListExpenses()
		if err != nil {
			logger.WithError(err).Error("gastos: falha ao listar gastos extras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar gastos extras", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(expenses); err != nil {
			logger.WithError(err).Error("gastos: falha ao codificar resposta")
		}
	})
}

func CreateExpense(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var expense domain.ExtraExpense
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateExpense(&expense)
		if err != nil {
			writeTrackingError(w, logger, err, "Erro ao registrar gasto extra")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("gastos: falha ao codificar resposta")
		}
	})
}

func DeleteExpense(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do gasto não fornecido", nil)
			return
		}

		if err := service.DeleteExpense(id); err != nil {
			logger.WithError(err).WithField("expense_id", id).Error("gastos: falha ao excluir gasto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir gasto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListRecurringExpenses(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		definitions, err := service.ListRecurringExpenses()
		if err != nil {
			logger.WithError(err).Error("gastos recorrentes: falha ao listar definições")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar gastos recorrentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(definitions); err != nil {
			logger.WithError(err).Error("gastos recorrentes: falha ao codificar resposta")
		}
	})
}

func CreateRecurringExpense(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var def domain.RecurringExpense
		if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateRecurringExpense(&def)
		if err != nil {
			writeTrackingError(w, logger, err, "Erro ao registrar gasto recorrente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("gastos recorrentes: falha ao codificar resposta")
		}
	})
}

func DeleteRecurringExpense(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do gasto recorrente não fornecido", nil)
			return
		}

		if err := service.DeleteRecurringExpense(id); err != nil {
			logger.WithError(err).WithField("recurring_id", id).Error("gastos recorrentes: falha ao excluir definição")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir gasto recorrente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
