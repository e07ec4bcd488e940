package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/usecases/tracking"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
	"github.com/vfg2006/adtracker-api/pkg/log"
)

func ListOffers(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		offers, err := service.ListOffers()
		if err != nil {
			logger.WithError(err).Error("ofertas: falha ao listar ofertas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar ofertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(offers); err != nil {
			logger.WithError(err).Error("ofertas: falha ao codificar resposta")
		}
	})
}

func CreateOffer(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var offer domain.Offer
		if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateOffer(&offer)
		if err != nil {
			writeTrackingError(w, logger, err, "Erro ao criar oferta")
			return
		}

		logger.WithFields(log.Fields{
			"offer_id":   created.ID,
			"offer_name": created.Name,
		}).Info("ofertas: oferta criada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("ofertas: falha ao codificar resposta")
		}
	})
}

func UpdateOffer(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da oferta não fornecido", nil)
			return
		}

		var req domain.UpdateOfferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		if err := service.UpdateOffer(&req); err != nil {
			writeTrackingError(w, logger, err, "Erro ao atualizar oferta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteOffer(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da oferta não fornecido", nil)
			return
		}

		if err := service.DeleteOffer(id); err != nil {
			logger.WithError(err).WithField("offer_id", id).Error("ofertas: falha ao excluir oferta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir oferta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeTrackingError traduz os erros de validação do rastreamento para a
// resposta HTTP correspondente
func writeTrackingError(w http.ResponseWriter, logger log.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, tracking.ErrOfferNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Oferta não encontrada", nil)

	case errors.Is(err, tracking.ErrOfferNameRequired),
		errors.Is(err, tracking.ErrOfferRequired),
		errors.Is(err, tracking.ErrRecurringNameMissing):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, tracking.ErrInvalidOfferStatus),
		errors.Is(err, tracking.ErrNegativeAmount),
		errors.Is(err, tracking.ErrInvalidCategory):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case strings.Contains(err.Error(), "dia do mês inválido"),
		strings.Contains(err.Error(), "categoria inválida"),
		strings.Contains(err.Error(), "não pode ser negativo"):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logger.WithError(err).Error("rastreamento: operação falhou")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
