package reporting

import "github.com/vfg2006/adtracker-api/internal/domain"

// ComputeMetrics agrega anúncios, gastos manuais e gastos recorrentes de
// um período nas métricas derivadas do dashboard.
//
// Coleções vazias produzem o objeto zerado; divisões por zero rendem 0 em
// ROAS e ROI, nunca NaN ou infinito. Sob escopo de oferta específica os
// gastos manuais e recorrentes não entram (custos compartilhados).
func ComputeMetrics(
	ads []*domain.AdEntry,
	expenses []*domain.ExtraExpense,
	defs []*domain.RecurringExpense,
	period domain.Period,
	offerScope string,
) *domain.DashboardMetrics {
	relevantAds := FilterAds(ads, period, offerScope)
	relevantExpenses := FilterExpenses(expenses, period)

	totalRevenue := 0.0
	totalSpend := 0.0
	for _, ad := range relevantAds {
		totalRevenue += ad.Revenue
		totalSpend += ad.Spend
	}

	manualExtras := 0.0
	if offerScope == domain.OfferScopeAll {
		for _, expense := range relevantExpenses {
			manualExtras += expense.Amount
		}
	}

	recurringTotal := AccrueRecurring(defs, period, offerScope)
	totalExtras := manualExtras + recurringTotal
	netProfit := totalRevenue - totalSpend - totalExtras

	roas := 0.0
	if totalSpend > 0 {
		roas = totalRevenue / totalSpend
	}

	roi := 0.0
	totalInvestment := totalSpend + totalExtras
	if totalInvestment > 0 {
		roi = (totalRevenue - totalInvestment) / totalInvestment * 100
	}

	return &domain.DashboardMetrics{
		TotalRevenue: totalRevenue,
		TotalSpend:   totalSpend,
		TotalExtras:  totalExtras,
		NetProfit:    netProfit,
		ROAS:         roas,
		ROI:          roi,
	}
}
