package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

func TestFilterAds(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 10), EndDate: day(2024, 5, 12)}
	ads := []*domain.AdEntry{
		{ID: "antes", Date: day(2024, 5, 9), OfferID: "o1"},
		{ID: "inicio", Date: day(2024, 5, 10), OfferID: "o1"},
		{ID: "meio", Date: day(2024, 5, 11), OfferID: "o2"},
		{ID: "fim", Date: day(2024, 5, 12), OfferID: "o1"},
		{ID: "depois", Date: day(2024, 5, 13), OfferID: "o1"},
	}

	tests := []struct {
		name    string
		scope   string
		wantIDs []string
	}{
		{
			name:    "visão geral mantém limites inclusivos",
			scope:   domain.OfferScopeAll,
			wantIDs: []string{"inicio", "meio", "fim"},
		},
		{
			name:    "escopo de oferta restringe aos anúncios dela",
			scope:   "o1",
			wantIDs: []string{"inicio", "fim"},
		},
		{
			name:    "oferta sem anúncios no período",
			scope:   "o3",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relevant := FilterAds(ads, period, tt.scope)

			ids := make([]string, 0, len(relevant))
			for _, ad := range relevant {
				ids = append(ids, ad.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// O horário e o fuso do registro não podem mudar o dia de calendário em
// que ele é contado.
func TestFilterAds_ComparesCalendarDaysOnly(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 10), EndDate: day(2024, 5, 10)}
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	ads := []*domain.AdEntry{
		{ID: "a1", Date: time.Date(2024, 5, 10, 23, 59, 0, 0, saoPaulo), OfferID: "o1"},
	}

	relevant := FilterAds(ads, period, domain.OfferScopeAll)

	assert.Len(t, relevant, 1)
}

func TestFilterExpenses(t *testing.T) {
	period := domain.Period{StartDate: day(2024, 5, 10), EndDate: day(2024, 5, 12)}
	expenses := []*domain.ExtraExpense{
		{ID: "antes", Date: day(2024, 5, 9), Amount: 10},
		{ID: "dentro", Date: day(2024, 5, 11), Amount: 20},
		{ID: "depois", Date: day(2024, 5, 13), Amount: 30},
	}

	relevant := FilterExpenses(expenses, period)

	assert.Len(t, relevant, 1)
	assert.Equal(t, "dentro", relevant[0].ID)
}

func TestFilterExpenses_DegeneratePeriod(t *testing.T) {
	period := domain.Period{StartDate: day(2020, 1, 1), EndDate: day(2019, 12, 31)}
	expenses := []*domain.ExtraExpense{
		{ID: "e1", Date: day(2024, 5, 11), Amount: 20},
	}

	assert.Empty(t, FilterExpenses(expenses, period))
}
