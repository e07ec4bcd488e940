package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/scheduler"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
	"github.com/vfg2006/adtracker-api/pkg/middleware"
	"github.com/vfg2006/adtracker-api/pkg/utils"
)

// CronJobType define o tipo de cron job que pode ser executada manualmente
const (
	CronJobTypeSnapshot = "snapshot"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os agendadores expostos para execução manual
type CronJobServices struct {
	DailySnapshotService *scheduler.DailySnapshotService
}

// RunCronJob executa manualmente uma cron job específica. Apenas gestores.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		claims := middleware.MemberFromContext(r.Context())
		if claims == nil || claims.MemberRole != domain.RoleManager {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas gestores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot, CronJobTypeAll:
			if services.DailySnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot diário não disponível", nil)
				return
			}
			services.DailySnapshotService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetDashboardSnapshot devolve o snapshot histórico gravado para uma data
func GetDashboardSnapshot(service *scheduler.DailySnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateParam := r.URL.Query().Get("date")
		if dateParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data do snapshot não fornecida", nil)
			return
		}

		date, err := utils.ParseDate(dateParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato 2006-01-02", nil)
			return
		}

		snapshot, err := service.GetSnapshot(*date)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar snapshot histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar snapshot", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum snapshot gravado para esta data", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	}
}

// GetCronStatus retorna o status das cron jobs. Apenas gestores.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		claims := middleware.MemberFromContext(r.Context())
		if claims == nil || claims.MemberRole != domain.RoleManager {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas gestores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"snapshot": services.DailySnapshotService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
