package reporting

import "github.com/vfg2006/adtracker-api/internal/domain"

// FilterAds seleciona os anúncios cuja data cai dentro do período e que
// pertencem ao escopo de oferta informado.
func FilterAds(ads []*domain.AdEntry, period domain.Period, offerScope string) []*domain.AdEntry {
	relevant := make([]*domain.AdEntry, 0, len(ads))

	for _, ad := range ads {
		if offerScope != domain.OfferScopeAll && ad.OfferID != offerScope {
			continue
		}

		if period.Contains(ad.Date) {
			relevant = append(relevant, ad)
		}
	}

	return relevant
}

// FilterExpenses seleciona os gastos manuais dentro do período. A exclusão
// de gastos sob escopo de oferta é decidida pelo agregador, não aqui.
func FilterExpenses(expenses []*domain.ExtraExpense, period domain.Period) []*domain.ExtraExpense {
	relevant := make([]*domain.ExtraExpense, 0, len(expenses))

	for _, expense := range expenses {
		if period.Contains(expense.Date) {
			relevant = append(relevant, expense)
		}
	}

	return relevant
}
