package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/infrastructure/repository"
	"github.com/vfg2006/adtracker-api/internal/config"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/usecases/reporting"
	"github.com/vfg2006/adtracker-api/pkg/utils"
)

// DailySnapshotConfig representa a configuração do agendador de snapshots
type DailySnapshotConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
}

// DailySnapshotService fotografa diariamente as métricas gerais do dia
// anterior e as persiste para consulta histórica barata.
type DailySnapshotService struct {
	scheduler           *gocron.Scheduler
	config              DailySnapshotConfig
	reporter            reporting.Reporter
	snapshotRepo        repository.SnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailySnapshotService cria uma nova instância do serviço de snapshots diários
func NewDailySnapshotService(
	reporter reporting.Reporter,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *DailySnapshotService {
	snapshotConfig := DailySnapshotConfig{
		CronSchedule:  appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:   appConfig.SnapshotSync.Enabled,
		RetentionDays: appConfig.SnapshotSync.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &DailySnapshotService{
		scheduler:    scheduler,
		config:       snapshotConfig,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *DailySnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot diário de métricas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.snapshotYesterday()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots diários")
		s.scheduler.Stop()
	}()

	return nil
}

// snapshotYesterday calcula as métricas gerais de ontem e grava o snapshot
func (s *DailySnapshotService) snapshotYesterday() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot diário já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando snapshot diário de métricas")

	if err := s.snapshotDate(time.Now()); err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshot diário")
		return
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Snapshot diário concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// snapshotDate fotografa o dia anterior à referência informada
func (s *DailySnapshotService) snapshotDate(reference time.Time) error {
	report, err := s.reporter.GetDashboard(reporting.ReportQuery{
		Range:      domain.DateRangeYesterday,
		OfferScope: domain.OfferScopeAll,
		Today:      reference,
	})
	if err != nil {
		return fmt.Errorf("erro ao calcular métricas de ontem: %w", err)
	}

	snapshot := &domain.DashboardSnapshot{
		Date:    report.Period.StartDate,
		Metrics: roundMetrics(report.Metrics),
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return fmt.Errorf("erro ao persistir snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"date":       snapshot.Date.Format(time.DateOnly),
		"net_profit": snapshot.Metrics.NetProfit,
	}).Info("Snapshot diário gravado")

	if s.config.RetentionDays > 0 {
		removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
		} else if removed > 0 {
			logrus.WithFields(logrus.Fields{
				"removed":        removed,
				"retention_days": s.config.RetentionDays,
			}).Info("Snapshots antigos removidos")
		}
	}

	return nil
}

// roundMetrics arredonda os valores persistidos para duas casas; o motor
// de agregação continua trabalhando com os valores exatos.
func roundMetrics(metrics *domain.DashboardMetrics) *domain.DashboardMetrics {
	if metrics == nil {
		return nil
	}

	return &domain.DashboardMetrics{
		TotalRevenue: utils.RoundWithTwoDecimalPlace(metrics.TotalRevenue),
		TotalSpend:   utils.RoundWithTwoDecimalPlace(metrics.TotalSpend),
		TotalExtras:  utils.RoundWithTwoDecimalPlace(metrics.TotalExtras),
		NetProfit:    utils.RoundWithTwoDecimalPlace(metrics.NetProfit),
		ROAS:         utils.RoundWithTwoDecimalPlace(metrics.ROAS),
		ROI:          utils.RoundWithTwoDecimalPlace(metrics.ROI),
	}
}

// GetSnapshot devolve o snapshot gravado para uma data, ou nil se o dia
// ainda não foi fotografado
func (s *DailySnapshotService) GetSnapshot(date time.Time) (*domain.DashboardSnapshot, error) {
	return s.snapshotRepo.GetByDate(date)
}

// TriggerManualSync inicia manualmente a gravação do snapshot de ontem
func (s *DailySnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot diário já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de métricas")
	go s.snapshotYesterday()
}

// GetStatus retorna o status atual do agendador
func (s *DailySnapshotService) GetStatus() map[string]any {
	retention := "snapshots mantidos permanentemente"
	if s.config.RetentionDays > 0 {
		retention = fmt.Sprintf("snapshots mantidos por %d dias", s.config.RetentionDays)
	}

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_policy":       retention,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
