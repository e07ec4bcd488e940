package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geminimocks "github.com/vfg2006/adtracker-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/adtracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *mocks.MockAdEntryRepository, *mocks.MockExtraExpenseRepository, *mocks.MockRecurringExpenseRepository, *mocks.MockOfferRepository, *geminimocks.MockGeminiIntegrator) {
	adRepo := mocks.NewMockAdEntryRepository(ctrl)
	expenseRepo := mocks.NewMockExtraExpenseRepository(ctrl)
	recurringRepo := mocks.NewMockRecurringExpenseRepository(ctrl)
	offerRepo := mocks.NewMockOfferRepository(ctrl)
	geminiService := geminimocks.NewMockGeminiIntegrator(ctrl)

	service := &Service{
		adEntryRepository:          adRepo,
		extraExpenseRepository:     expenseRepo,
		recurringExpenseRepository: recurringRepo,
		offerRepository:            offerRepo,
		geminiService:              geminiService,
	}

	return service, adRepo, expenseRepo, recurringRepo, offerRepo, geminiService
}

func TestService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adRepo, expenseRepo, recurringRepo, _, _ := newServiceWithMocks(ctrl)

	adRepo.EXPECT().ListAdEntries().Return([]*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 16), OfferID: "o1", Spend: 100, Revenue: 300},
		{ID: "a2", Date: day(2024, 5, 15), OfferID: "o1", Spend: 80, Revenue: 100},
	}, nil)
	expenseRepo.EXPECT().ListExpenses().Return([]*domain.ExtraExpense{}, nil)
	recurringRepo.EXPECT().ListRecurringExpenses().Return([]*domain.RecurringExpense{}, nil)

	report, err := service.GetDashboard(ReportQuery{
		Range: domain.DateRangeToday,
		Today: testToday,
	})

	require.NoError(t, err)
	assert.Equal(t, day(2024, 5, 16), report.Period.StartDate)

	// Hoje só tem a1; ontem só a2 no período anterior.
	assert.Equal(t, 300.0, report.Metrics.TotalRevenue)
	assert.Equal(t, 100.0, report.Metrics.TotalSpend)
	assert.Equal(t, 100.0, report.Previous.TotalRevenue)
	assert.Equal(t, 80.0, report.Previous.TotalSpend)
}

func TestService_GetDashboard_InvalidSelector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _, _ := newServiceWithMocks(ctrl)

	_, err := service.GetDashboard(ReportQuery{
		Range: domain.DateRangeType("quinzena"),
		Today: testToday,
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestService_GetDashboard_EmptyScopeMeansAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adRepo, expenseRepo, recurringRepo, _, _ := newServiceWithMocks(ctrl)

	adRepo.EXPECT().ListAdEntries().Return(nil, nil)
	expenseRepo.EXPECT().ListExpenses().Return([]*domain.ExtraExpense{
		{ID: "e1", Date: day(2024, 5, 16), Category: domain.ExpenseCategoryBM, Amount: 50},
	}, nil)
	recurringRepo.EXPECT().ListRecurringExpenses().Return(nil, nil)

	report, err := service.GetDashboard(ReportQuery{
		Range: domain.DateRangeToday,
		Today: testToday,
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0, report.Metrics.TotalExtras)
}

func TestService_GetDailySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adRepo, expenseRepo, recurringRepo, _, _ := newServiceWithMocks(ctrl)

	adRepo.EXPECT().ListAdEntries().Return([]*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 15), OfferID: "o1", Spend: 100, Revenue: 250},
	}, nil)
	expenseRepo.EXPECT().ListExpenses().Return(nil, nil)
	recurringRepo.EXPECT().ListRecurringExpenses().Return(nil, nil)

	series, err := service.GetDailySeries(ReportQuery{
		Range: domain.DateRangeLast3Days,
		Today: testToday,
	})

	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, "2024-05-14", series[0].Date)
	assert.Equal(t, 250.0, series[1].Revenue)
	assert.Equal(t, "2024-05-16", series[2].Date)
}

func TestService_GetOfferStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adRepo, _, _, offerRepo, _ := newServiceWithMocks(ctrl)

	offerRepo.EXPECT().ListOffers().Return([]*domain.Offer{
		{ID: "o1", Name: "Oferta A", Status: domain.OfferStatusRunning},
	}, nil)
	adRepo.EXPECT().ListAdEntries().Return([]*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 1), OfferID: "o1", Spend: 100, Revenue: 400},
	}, nil)

	stats, err := service.GetOfferStats()

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 300.0, stats[0].Profit)
	assert.Equal(t, 300.0, stats[0].ROI)
}

func TestService_AnalyzePerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adRepo, expenseRepo, recurringRepo, _, geminiService := newServiceWithMocks(ctrl)

	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 16), OfferID: "o1", Spend: 100, Revenue: 300},
	}

	adRepo.EXPECT().ListAdEntries().Return(ads, nil)
	expenseRepo.EXPECT().ListExpenses().Return(nil, nil)
	recurringRepo.EXPECT().ListRecurringExpenses().Return(nil, nil)
	adRepo.EXPECT().ListRecentAdEntries(uint64(recentSampleLimit)).Return(ads, nil)
	expenseRepo.EXPECT().ListRecentExpenses(uint64(recentSampleLimit)).Return(nil, nil)

	geminiService.EXPECT().
		AnalyzePerformance(gomock.Any(), gomock.Any(), ads, gomock.Nil()).
		Return("## Resumo\nROAS saudável.", nil)

	analysis, err := service.AnalyzePerformance(ReportQuery{
		Range: domain.DateRangeToday,
		Today: testToday,
	})

	require.NoError(t, err)
	assert.Contains(t, analysis, "ROAS")
}

func TestService_AnalyzePerformance_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adRepo, _, _, _, _ := newServiceWithMocks(ctrl)

	adRepo.EXPECT().ListAdEntries().Return(nil, assert.AnError)

	_, err := service.AnalyzePerformance(ReportQuery{
		Range: domain.DateRangeToday,
		Today: testToday,
	})

	assert.ErrorIs(t, err, assert.AnError)
}
