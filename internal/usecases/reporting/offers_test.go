package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeOfferStats(t *testing.T) {
	offers := []*domain.Offer{
		{ID: "o1", Name: "Oferta A", Status: domain.OfferStatusRunning, ProductPrice: floatPtr(100), ProductCost: floatPtr(40)},
		{ID: "o2", Name: "Oferta B", Status: domain.OfferStatusTesting},
	}
	ads := []*domain.AdEntry{
		{ID: "a1", Date: day(2024, 5, 1), OfferID: "o1", Spend: 200, Revenue: 700},
		{ID: "a2", Date: day(2024, 5, 2), OfferID: "o1", Spend: 100, Revenue: 200},
		{ID: "orfao", Date: day(2024, 5, 3), OfferID: "excluida", Spend: 50, Revenue: 10},
	}

	stats := ComputeOfferStats(offers, ads)

	require.Len(t, stats, 2)

	assert.Equal(t, "o1", stats[0].ID)
	assert.Equal(t, 300.0, stats[0].TotalSpend)
	assert.Equal(t, 900.0, stats[0].TotalRevenue)
	assert.Equal(t, 600.0, stats[0].Profit)
	assert.Equal(t, 200.0, stats[0].ROI)
	assert.InDelta(t, 100.0/60.0, stats[0].BreakEvenROAS, 1e-9)
	assert.Equal(t, 60.0, stats[0].MaxCPA)

	// Oferta sem anúncios e sem preço: tudo zerado, ROI não divide.
	assert.Equal(t, "o2", stats[1].ID)
	assert.Equal(t, 0.0, stats[1].TotalSpend)
	assert.Equal(t, 0.0, stats[1].ROI)
	assert.Equal(t, 0.0, stats[1].BreakEvenROAS)
	assert.Equal(t, 0.0, stats[1].MaxCPA)
}

func TestBreakEven(t *testing.T) {
	tests := []struct {
		name     string
		offer    *domain.Offer
		wantROAS float64
		wantCPA  float64
	}{
		{
			name:     "margem positiva",
			offer:    &domain.Offer{ProductPrice: floatPtr(100), ProductCost: floatPtr(40)},
			wantROAS: 100.0 / 60.0,
			wantCPA:  60,
		},
		{
			name:     "margem zero não é calculável",
			offer:    &domain.Offer{ProductPrice: floatPtr(100), ProductCost: floatPtr(100)},
			wantROAS: 0,
			wantCPA:  0,
		},
		{
			name:     "custo acima do preço não é calculável",
			offer:    &domain.Offer{ProductPrice: floatPtr(100), ProductCost: floatPtr(130)},
			wantROAS: 0,
			wantCPA:  0,
		},
		{
			name:     "sem preço não é calculável",
			offer:    &domain.Offer{ProductCost: floatPtr(40)},
			wantROAS: 0,
			wantCPA:  0,
		},
		{
			name:     "sem custo a margem é o preço inteiro",
			offer:    &domain.Offer{ProductPrice: floatPtr(100)},
			wantROAS: 1,
			wantCPA:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roas, cpa := breakEven(tt.offer)

			assert.InDelta(t, tt.wantROAS, roas, 1e-9)
			assert.Equal(t, tt.wantCPA, cpa)
		})
	}
}
