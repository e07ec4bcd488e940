package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/usecases/reporting"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
	"github.com/vfg2006/adtracker-api/pkg/log"
	"github.com/vfg2006/adtracker-api/pkg/utils"
)

// parseReportQuery monta a consulta de relatório a partir da query string.
// Parâmetros aceitos: range, offer_id, start_date, end_date e
// reference_date (este último apenas para reproduzir relatórios passados).
func parseReportQuery(r *http.Request) (reporting.ReportQuery, error) {
	q := r.URL.Query()

	query := reporting.ReportQuery{
		Range:      domain.DateRangeType(q.Get("range")),
		OfferScope: q.Get("offer_id"),
	}

	if query.Range == "" {
		query.Range = domain.DateRangeLast7Days
	}

	if q.Get("start_date") != "" && q.Get("end_date") != "" {
		start, err := utils.ParseDate(q.Get("start_date"))
		if err != nil {
			return query, errors.Wrap(err, "start_date inválida")
		}

		end, err := utils.ParseDate(q.Get("end_date"))
		if err != nil {
			return query, errors.Wrap(err, "end_date inválida")
		}

		query.Custom = &domain.CustomBounds{Start: *start, End: *end}
	}

	if q.Get("reference_date") != "" {
		reference, err := utils.ParseDate(q.Get("reference_date"))
		if err != nil {
			return query, errors.Wrap(err, "reference_date inválida")
		}

		query.Today = *reference
	}

	return query, nil
}

// writeReportError separa erros de contrato (entrada inválida) de falhas
// internas do motor de agregação
func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, reporting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Seletor de período inválido", nil)

	case errors.Is(err, reporting.ErrCustomBoundsRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Período custom exige start_date e end_date", nil)

	case errors.Is(err, reporting.ErrInvalidCustomBounds):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início não pode ser posterior à data de fim", nil)

	default:
		logger.WithError(err).Error("dashboard: falha ao calcular relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas", nil)
	}
}

func GetDashboardMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseReportQuery(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.GetDashboard(query)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"range":       string(query.Range),
			"offer_scope": query.OfferScope,
		}).Info("dashboard: métricas calculadas")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: falha ao codificar resposta")
		}
	})
}

func GetDashboardSeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseReportQuery(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		series, err := service.GetDailySeries(query)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("dashboard: falha ao codificar resposta")
		}
	})
}

func AnalyzeDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseReportQuery(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: parâmetros de consulta inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		analysis, err := service.AnalyzePerformance(query)
		if err != nil {
			logger.WithError(err).Error("dashboard: falha na análise de desempenho")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar análise de desempenho", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"analysis": analysis}); err != nil {
			logger.WithError(err).Error("dashboard: falha ao codificar resposta")
		}
	})
}

func GetOfferStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats, err := service.GetOfferStats()
		if err != nil {
			logger.WithError(err).Error("ofertas: falha ao calcular economia das ofertas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular economia das ofertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("ofertas: falha ao codificar resposta")
		}
	})
}
