package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

func TestComputeMetrics_EmptyCollections(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 1), EndDate: day(2024, 5, 31)}

	metrics := ComputeMetrics(nil, nil, nil, period, domain.OfferScopeAll)

	assert.Equal(t, &domain.DashboardMetrics{}, metrics)
}

func TestComputeMetrics_SingleDayOperation(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 1), EndDate: day(2024, 5, 1)}
	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 1), OfferID: "o1", Spend: 100, Revenue: 300},
	}
	expenses := []*domain.ExtraExpense{
		{ID: "e1", Date: day(2024, 5, 1), Category: domain.ExpenseCategoryBM, Amount: 50},
	}

	tests := []struct {
		name     string
		expenses []*domain.ExtraExpense
		scope    string
		want     *domain.DashboardMetrics
	}{
		{
			name:  "apenas anúncios, visão geral",
			scope: domain.OfferScopeAll,
			want: &domain.DashboardMetrics{
				TotalRevenue: 300,
				TotalSpend:   100,
				TotalExtras:  0,
				NetProfit:    200,
				ROAS:         3,
				ROI:          200,
			},
		},
		{
			name:     "gasto manual entra na visão geral",
			expenses: expenses,
			scope:    domain.OfferScopeAll,
			want: &domain.DashboardMetrics{
				TotalRevenue: 300,
				TotalSpend:   100,
				TotalExtras:  50,
				NetProfit:    150,
				ROAS:         3,
				ROI:          100,
			},
		},
		{
			name:     "gasto manual excluído sob escopo de oferta",
			expenses: expenses,
			scope:    "o1",
			want: &domain.DashboardMetrics{
				TotalRevenue: 300,
				TotalSpend:   100,
				TotalExtras:  0,
				NetProfit:    200,
				ROAS:         3,
				ROI:          200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := ComputeMetrics(ads, tt.expenses, nil, period, tt.scope)

			assert.Equal(t, tt.want, metrics)
		})
	}
}

func TestComputeMetrics_ZeroSpendNeverDivides(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 1), EndDate: day(2024, 5, 31)}
	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 10), OfferID: "o1", Spend: 0, Revenue: 500},
	}

	metrics := ComputeMetrics(ads, nil, nil, period, domain.OfferScopeAll)

	assert.Equal(t, 500.0, metrics.TotalRevenue)
	assert.Equal(t, 0.0, metrics.ROAS)
	assert.Equal(t, 0.0, metrics.ROI)
	assert.Equal(t, 500.0, metrics.NetProfit)
}

func TestComputeMetrics_RoasDefinition(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 1), EndDate: day(2024, 5, 31)}
	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 10), OfferID: "o1", Spend: 200, Revenue: 500},
		{ID: "a2", Date: day(2024, 5, 11), OfferID: "o2", Spend: 300, Revenue: 250},
	}

	metrics := ComputeMetrics(ads, nil, nil, period, domain.OfferScopeAll)

	assert.InDelta(t, 750.0/500.0, metrics.ROAS, 1e-9)
}

// Sob escopo de oferta sem anúncios no período, nada pode vazar dos gastos
// manuais ou recorrentes para os extras.
func TestComputeMetrics_OfferScopeExcludesSharedCosts(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 1), EndDate: day(2024, 5, 31)}
	expenses := []*domain.ExtraExpense{
		{ID: "e1", Date: day(2024, 5, 3), Category: domain.ExpenseCategoryTools, Amount: 80},
	}
	defs := []*domain.RecurringExpense{
		{ID: "r1", Name: "Servidor", Amount: 120, DayOfMonth: 10, Category: domain.ExpenseCategoryDomain},
	}

	metrics := ComputeMetrics(nil, expenses, defs, period, "oferta-sem-anuncios")

	assert.Equal(t, &domain.DashboardMetrics{}, metrics)
}

func TestComputeMetrics_RecurringEntersGeneralView(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 1), EndDate: day(2024, 5, 31)}
	defs := []*domain.RecurringExpense{
		{ID: "r1", Name: "Servidor", Amount: 120, DayOfMonth: 10, Category: domain.ExpenseCategoryDomain},
	}

	metrics := ComputeMetrics(nil, nil, defs, period, domain.OfferScopeAll)

	assert.Equal(t, 120.0, metrics.TotalExtras)
	assert.Equal(t, -120.0, metrics.NetProfit)
	assert.Equal(t, -100.0, metrics.ROI)
}

func TestComputeMetrics_DegeneratePeriodIsEmpty(t *testing.T) {
	period := domain.Period{StartDate: day(2020, 1, 1), EndDate: day(2019, 12, 31)}
	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 10), OfferID: "o1", Spend: 100, Revenue: 300},
	}
	defs := []*domain.RecurringExpense{
		{ID: "r1", Name: "Servidor", Amount: 120, DayOfMonth: 10, Category: domain.ExpenseCategoryDomain},
	}

	metrics := ComputeMetrics(ads, nil, defs, period, domain.OfferScopeAll)

	assert.Equal(t, &domain.DashboardMetrics{}, metrics)
}
