package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

func TestBuildDailySeries(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 9), EndDate: day(2024, 5, 11)}
	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 9), OfferID: "o1", Spend: 100, Revenue: 250},
		{ID: "a2", Date: day(2024, 5, 9), OfferID: "o2", Spend: 50, Revenue: 80},
		{ID: "a3", Date: day(2024, 5, 11), OfferID: "o1", Spend: 30, Revenue: 90},
		{ID: "fora", Date: day(2024, 5, 12), OfferID: "o1", Spend: 999, Revenue: 999},
	}
	expenses := []*domain.ExtraExpense{
		{ID: "e1", Date: day(2024, 5, 10), Category: domain.ExpenseCategoryBM, Amount: 40},
	}
	defs := []*domain.RecurringExpense{
		{ID: "r1", Name: "Servidor", Amount: 20, DayOfMonth: 11, Category: domain.ExpenseCategoryDomain},
	}

	series := BuildDailySeries(ads, expenses, defs, period, domain.OfferScopeAll)

	require.Len(t, series, 3)

	assert.Equal(t, "2024-05-09", series[0].Date)
	assert.Equal(t, 330.0, series[0].Revenue)
	assert.Equal(t, 150.0, series[0].Spend)
	assert.Equal(t, 0.0, series[0].Extras)
	assert.Equal(t, 180.0, series[0].Profit)

	// Dia sem anúncios permanece na série, zerado exceto pelos extras.
	assert.Equal(t, "2024-05-10", series[1].Date)
	assert.Equal(t, 0.0, series[1].Revenue)
	assert.Equal(t, 40.0, series[1].Extras)
	assert.Equal(t, -40.0, series[1].Profit)

	assert.Equal(t, "2024-05-11", series[2].Date)
	assert.Equal(t, 90.0, series[2].Revenue)
	assert.Equal(t, 30.0, series[2].Spend)
	assert.Equal(t, 20.0, series[2].Extras)
	assert.Equal(t, 40.0, series[2].Profit)
}

func TestBuildDailySeries_OfferScope(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 9), EndDate: day(2024, 5, 10)}
	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 9), OfferID: "o1", Spend: 100, Revenue: 250},
		{ID: "a2", Date: day(2024, 5, 9), OfferID: "o2", Spend: 50, Revenue: 80},
	}
	expenses := []*domain.ExtraExpense{
		{ID: "e1", Date: day(2024, 5, 9), Category: domain.ExpenseCategoryBM, Amount: 40},
	}
	defs := []*domain.RecurringExpense{
		{ID: "r1", Name: "Servidor", Amount: 20, DayOfMonth: 9, Category: domain.ExpenseCategoryDomain},
	}

	series := BuildDailySeries(ads, expenses, defs, period, "o1")

	require.Len(t, series, 2)
	assert.Equal(t, 250.0, series[0].Revenue)
	assert.Equal(t, 100.0, series[0].Spend)
	assert.Equal(t, 0.0, series[0].Extras)
	assert.Equal(t, 150.0, series[0].Profit)
}

func TestBuildDailySeries_DegeneratePeriod(t *testing.T) {
	period := domain.Period{StartDate: day(2020, 1, 1), EndDate: day(2019, 12, 31)}

	series := BuildDailySeries(nil, nil, nil, period, domain.OfferScopeAll)

	assert.Empty(t, series)
}

func TestBuildDailySeries_SingleDay(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 9), EndDate: day(2024, 5, 9)}

	series := BuildDailySeries(nil, nil, nil, period, domain.OfferScopeAll)

	require.Len(t, series, 1)
	assert.Equal(t, "2024-05-09", series[0].Date)
	assert.Equal(t, 0.0, series[0].Profit)
}
