package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/adtracker-api/infrastructure/repository"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const recentSampleLimit = 10

// Service implementa Reporter sobre os repositórios de lançamentos e o
// analista de IA. Carrega as coleções completas e agrega em memória: o
// volume de uma operação de tráfego cabe folgado e mantém as mesmas
// regras de filtro entre métricas, série e análise.
type Service struct {
	adEntryRepository          repository.AdEntryRepository
	extraExpenseRepository     repository.ExtraExpenseRepository
	recurringExpenseRepository repository.RecurringExpenseRepository
	offerRepository            repository.OfferRepository
	geminiService              gemini.GeminiIntegrator
}

func NewService(
	adEntryRepo repository.AdEntryRepository,
	extraExpenseRepo repository.ExtraExpenseRepository,
	recurringExpenseRepo repository.RecurringExpenseRepository,
	offerRepo repository.OfferRepository,
	geminiService gemini.GeminiIntegrator,
) Reporter {
	return &Service{
		adEntryRepository:          adEntryRepo,
		extraExpenseRepository:     extraExpenseRepo,
		recurringExpenseRepository: recurringExpenseRepo,
		offerRepository:            offerRepo,
		geminiService:              geminiService,
	}
}

func (s *Service) referenceToday(query ReportQuery) time.Time {
	if query.Today.IsZero() {
		return time.Now()
	}
	return query.Today
}

func (s *Service) offerScope(query ReportQuery) string {
	if query.OfferScope == "" {
		return domain.OfferScopeAll
	}
	return query.OfferScope
}

func (s *Service) loadCollections() ([]*domain.AdEntry, []*domain.ExtraExpense, []*domain.RecurringExpense, error) {
	ads, err := s.adEntryRepository.ListAdEntries()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar anúncios")
		return nil, nil, nil, err
	}

	expenses, err := s.extraExpenseRepository.ListExpenses()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar gastos extras")
		return nil, nil, nil, err
	}

	defs, err := s.recurringExpenseRepository.ListRecurringExpenses()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar gastos recorrentes")
		return nil, nil, nil, err
	}

	return ads, expenses, defs, nil
}

// GetDashboard calcula as métricas do período resolvido e as do período
// imediatamente anterior de mesma duração, sobre a mesma carga de dados.
func (s *Service) GetDashboard(query ReportQuery) (*domain.DashboardReport, error) {
	today := s.referenceToday(query)
	scope := s.offerScope(query)

	period, err := ResolvePeriod(query.Range, today, 0, query.Custom)
	if err != nil {
		return nil, err
	}

	previousPeriod, err := ResolvePeriod(query.Range, today, 1, query.Custom)
	if err != nil {
		return nil, err
	}

	ads, expenses, defs, err := s.loadCollections()
	if err != nil {
		return nil, err
	}

	return &domain.DashboardReport{
		Period:   period,
		Metrics:  ComputeMetrics(ads, expenses, defs, period, scope),
		Previous: ComputeMetrics(ads, expenses, defs, previousPeriod, scope),
	}, nil
}

func (s *Service) GetDailySeries(query ReportQuery) ([]*domain.SeriesPoint, error) {
	period, err := ResolvePeriod(query.Range, s.referenceToday(query), 0, query.Custom)
	if err != nil {
		return nil, err
	}

	ads, expenses, defs, err := s.loadCollections()
	if err != nil {
		return nil, err
	}

	return BuildDailySeries(ads, expenses, defs, period, s.offerScope(query)), nil
}

func (s *Service) GetOfferStats() ([]*domain.OfferStats, error) {
	offers, err := s.offerRepository.ListOffers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar ofertas")
		return nil, err
	}

	ads, err := s.adEntryRepository.ListAdEntries()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar anúncios")
		return nil, err
	}

	return ComputeOfferStats(offers, ads), nil
}

// AnalyzePerformance envia as métricas do período e uma amostra dos
// lançamentos mais recentes ao analista de IA. O texto volta como veio.
func (s *Service) AnalyzePerformance(query ReportQuery) (string, error) {
	period, err := ResolvePeriod(query.Range, s.referenceToday(query), 0, query.Custom)
	if err != nil {
		return "", err
	}

	ads, expenses, defs, err := s.loadCollections()
	if err != nil {
		return "", err
	}

	scope := s.offerScope(query)
	metrics := ComputeMetrics(ads, expenses, defs, period, scope)

	recentAds, err := s.adEntryRepository.ListRecentAdEntries(recentSampleLimit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar anúncios recentes")
		return "", err
	}

	recentExpenses, err := s.extraExpenseRepository.ListRecentExpenses(recentSampleLimit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar gastos recentes")
		return "", err
	}

	return s.geminiService.AnalyzePerformance(context.Background(), metrics, recentAds, recentExpenses)
}
