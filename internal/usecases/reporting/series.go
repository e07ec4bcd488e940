package reporting

import (
	"time"

	"github.com/vfg2006/adtracker-api/internal/domain"
)

// BuildDailySeries produz um agregado por dia de calendário do período,
// em ordem ascendente de data, aplicando as mesmas regras de escopo do
// agregador de métricas. O acúmulo recorrente é avaliado dia a dia, não
// pela soma do período. Alimenta o gráfico; nunca é persistido.
func BuildDailySeries(
	ads []*domain.AdEntry,
	expenses []*domain.ExtraExpense,
	defs []*domain.RecurringExpense,
	period domain.Period,
	offerScope string,
) []*domain.SeriesPoint {
	start := domain.Day(period.StartDate)
	end := domain.Day(period.EndDate)

	if end.Before(start) {
		return []*domain.SeriesPoint{}
	}

	buckets := make(map[string]*domain.SeriesPoint)
	order := make([]string, 0, period.Days())

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		point := &domain.SeriesPoint{Date: key}

		if offerScope == domain.OfferScopeAll {
			point.Extras = accrueOnDay(defs, day.Day())
		}

		buckets[key] = point
		order = append(order, key)
	}

	for _, ad := range ads {
		if offerScope != domain.OfferScopeAll && ad.OfferID != offerScope {
			continue
		}

		if point, ok := buckets[domain.Day(ad.Date).Format(time.DateOnly)]; ok {
			point.Revenue += ad.Revenue
			point.Spend += ad.Spend
		}
	}

	if offerScope == domain.OfferScopeAll {
		for _, expense := range expenses {
			if point, ok := buckets[domain.Day(expense.Date).Format(time.DateOnly)]; ok {
				point.Extras += expense.Amount
			}
		}
	}

	series := make([]*domain.SeriesPoint, 0, len(order))
	for _, key := range order {
		point := buckets[key]
		point.Profit = point.Revenue - point.Spend - point.Extras
		series = append(series, point)
	}

	return series
}
