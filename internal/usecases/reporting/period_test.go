package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

// Referência fixa dos testes: sexta-feira, 16 de maio de 2024.
var testToday = time.Date(2024, 5, 16, 14, 30, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		selector  domain.DateRangeType
		offset    int
		custom    *domain.CustomBounds
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today resolve para o próprio dia",
			selector:  domain.DateRangeToday,
			wantStart: day(2024, 5, 16),
			wantEnd:   day(2024, 5, 16),
		},
		{
			name:      "yesterday resolve para o dia anterior",
			selector:  domain.DateRangeYesterday,
			wantStart: day(2024, 5, 15),
			wantEnd:   day(2024, 5, 15),
		},
		{
			name:      "yesterday com offset 1 resolve para anteontem",
			selector:  domain.DateRangeYesterday,
			offset:    1,
			wantStart: day(2024, 5, 14),
			wantEnd:   day(2024, 5, 14),
		},
		{
			name:      "last3days inclui a referência",
			selector:  domain.DateRangeLast3Days,
			wantStart: day(2024, 5, 14),
			wantEnd:   day(2024, 5, 16),
		},
		{
			name:      "last7days inclui a referência",
			selector:  domain.DateRangeLast7Days,
			wantStart: day(2024, 5, 10),
			wantEnd:   day(2024, 5, 16),
		},
		{
			name:      "last30days inclui a referência",
			selector:  domain.DateRangeLast30Days,
			wantStart: day(2024, 4, 17),
			wantEnd:   day(2024, 5, 16),
		},
		{
			name:      "thisMonth cobre o mês de calendário inteiro",
			selector:  domain.DateRangeThisMonth,
			wantStart: day(2024, 5, 1),
			wantEnd:   day(2024, 5, 31),
		},
		{
			name:      "thisMonth com offset recua a referência 30 dias",
			selector:  domain.DateRangeThisMonth,
			offset:    1,
			wantStart: day(2024, 4, 1),
			wantEnd:   day(2024, 4, 30),
		},
		{
			name:      "allTime vai da época até hoje",
			selector:  domain.DateRangeAllTime,
			wantStart: day(2020, 1, 1),
			wantEnd:   day(2024, 5, 16),
		},
		{
			name:      "allTime com offset é degenerado e vazio",
			selector:  domain.DateRangeAllTime,
			offset:    1,
			wantStart: day(2020, 1, 1),
			wantEnd:   day(2019, 12, 31),
		},
		{
			name:     "custom respeita os limites informados",
			selector: domain.DateRangeCustom,
			custom: &domain.CustomBounds{
				Start: day(2024, 3, 10),
				End:   day(2024, 3, 20),
			},
			wantStart: day(2024, 3, 10),
			wantEnd:   day(2024, 3, 20),
		},
		{
			name:     "custom com offset desloca a janela pela própria duração",
			selector: domain.DateRangeCustom,
			offset:   1,
			custom: &domain.CustomBounds{
				Start: day(2024, 3, 10),
				End:   day(2024, 3, 20),
			},
			wantStart: day(2024, 2, 28),
			wantEnd:   day(2024, 3, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ResolvePeriod(tt.selector, testToday, tt.offset, tt.custom)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, period.StartDate)
			assert.Equal(t, tt.wantEnd, period.EndDate)
		})
	}
}

func TestResolvePeriod_PreviousWindowSymmetry(t *testing.T) {
	current, err := ResolvePeriod(domain.DateRangeLast7Days, testToday, 0, nil)
	require.NoError(t, err)

	previous, err := ResolvePeriod(domain.DateRangeLast7Days, testToday, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, current.Days(), previous.Days())
	assert.Equal(t, current.StartDate.AddDate(0, 0, -1), previous.EndDate)
}

func TestResolvePeriod_Errors(t *testing.T) {
	tests := []struct {
		name     string
		selector domain.DateRangeType
		offset   int
		custom   *domain.CustomBounds
		wantErr  error
	}{
		{
			name:     "seletor desconhecido",
			selector: domain.DateRangeType("lastCentury"),
			wantErr:  ErrInvalidDateRange,
		},
		{
			name:     "offset negativo",
			selector: domain.DateRangeToday,
			offset:   -1,
			wantErr:  ErrInvalidOffset,
		},
		{
			name:     "custom sem limites",
			selector: domain.DateRangeCustom,
			wantErr:  ErrCustomBoundsRequired,
		},
		{
			name:     "custom com início após o fim",
			selector: domain.DateRangeCustom,
			custom: &domain.CustomBounds{
				Start: day(2024, 3, 20),
				End:   day(2024, 3, 10),
			},
			wantErr: ErrInvalidCustomBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.selector, testToday, tt.offset, tt.custom)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolvePeriod_ReferenceIsTimezoneImmune(t *testing.T) {
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	lateNight := time.Date(2024, 5, 16, 23, 50, 0, 0, saoPaulo)

	period, err := ResolvePeriod(domain.DateRangeToday, lateNight, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, day(2024, 5, 16), period.StartDate)
	assert.Equal(t, day(2024, 5, 16), period.EndDate)
}
