package reporting

import "github.com/vfg2006/adtracker-api/internal/domain"

// AccrueRecurring soma quanto de gasto recorrente vence dentro do período,
// caminhando dia a dia e casando o dia do mês de cada regra.
//
// Custos recorrentes são compartilhados pela operação: sob escopo de uma
// oferta específica o acúmulo é zero. Uma regra com DayOfMonth 31 não
// dispara em meses mais curtos; não há rolagem para o fim do mês.
func AccrueRecurring(defs []*domain.RecurringExpense, period domain.Period, offerScope string) float64 {
	if offerScope != domain.OfferScopeAll || len(defs) == 0 {
		return 0
	}

	total := 0.0
	start := domain.Day(period.StartDate)
	end := domain.Day(period.EndDate)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		total += accrueOnDay(defs, day.Day())
	}

	return total
}

// accrueOnDay soma as regras que vencem em um dia do mês específico
func accrueOnDay(defs []*domain.RecurringExpense, dayOfMonth int) float64 {
	total := 0.0

	for _, def := range defs {
		if def.DayOfMonth == dayOfMonth {
			total += def.Amount
		}
	}

	return total
}
