package reporting

import (
	"time"

	"github.com/vfg2006/adtracker-api/internal/domain"
)

// allTimeEpoch é o piso histórico do seletor allTime: antigo o bastante
// para cobrir qualquer registro real da operação.
var allTimeEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// rangeDuration retorna a duração nominal em dias usada para deslocar a
// referência ao calcular períodos anteriores. thisMonth usa a aproximação
// de 30 dias herdada do comportamento original do painel.
func rangeDuration(selector domain.DateRangeType) int {
	switch selector {
	case domain.DateRangeLast3Days:
		return 3
	case domain.DateRangeLast7Days:
		return 7
	case domain.DateRangeLast30Days, domain.DateRangeThisMonth:
		return 30
	default:
		return 1
	}
}

// ResolvePeriod converte um seletor simbólico de janela mais um offset de
// comparação em limites concretos de dias de calendário, inclusivos.
//
// offset 0 é o período em si; offset N é o N-ésimo período anterior de
// mesma duração. A referência é recuada offset × duração dias antes de
// aplicar a regra de limites do seletor; para yesterday isso significa
// que offset 1 resolve para anteontem.
//
// allTime não tem período anterior: com offset > 0 devolve a janela
// degenerada [épocaFloor, épocaFloor−1d], cujo início após o fim faz todos
// os filtros retornarem vazio.
func ResolvePeriod(
	selector domain.DateRangeType,
	referenceToday time.Time,
	offset int,
	custom *domain.CustomBounds,
) (domain.Period, error) {
	if !selector.Valid() {
		return domain.Period{}, ErrInvalidDateRange
	}

	if offset < 0 {
		return domain.Period{}, ErrInvalidOffset
	}

	if selector == domain.DateRangeCustom {
		return resolveCustomPeriod(custom, offset)
	}

	today := domain.Day(referenceToday)

	if selector == domain.DateRangeAllTime {
		if offset > 0 {
			return domain.Period{
				StartDate: allTimeEpoch,
				EndDate:   allTimeEpoch.AddDate(0, 0, -1),
			}, nil
		}

		return domain.Period{StartDate: allTimeEpoch, EndDate: today}, nil
	}

	reference := today.AddDate(0, 0, -offset*rangeDuration(selector))

	start := reference
	end := reference

	switch selector {
	case domain.DateRangeToday:
		// limites já na referência
	case domain.DateRangeYesterday:
		start = reference.AddDate(0, 0, -1)
		end = start
	case domain.DateRangeLast3Days:
		start = reference.AddDate(0, 0, -2)
	case domain.DateRangeLast7Days:
		start = reference.AddDate(0, 0, -6)
	case domain.DateRangeLast30Days:
		start = reference.AddDate(0, 0, -29)
	case domain.DateRangeThisMonth:
		start = time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	}

	return domain.Period{StartDate: start, EndDate: end}, nil
}

func resolveCustomPeriod(custom *domain.CustomBounds, offset int) (domain.Period, error) {
	if custom == nil {
		return domain.Period{}, ErrCustomBoundsRequired
	}

	start := domain.Day(custom.Start)
	end := domain.Day(custom.End)

	if start.After(end) {
		return domain.Period{}, ErrInvalidCustomBounds
	}

	if offset > 0 {
		duration := domain.Period{StartDate: start, EndDate: end}.Days()
		shift := offset * duration
		start = start.AddDate(0, 0, -shift)
		end = end.AddDate(0, 0, -shift)
	}

	return domain.Period{StartDate: start, EndDate: end}, nil
}
