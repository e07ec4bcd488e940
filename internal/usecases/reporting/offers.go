package reporting

import "github.com/vfg2006/adtracker-api/internal/domain"

// ComputeOfferStats calcula, por oferta, a economia de todos os seus
// anúncios (sem recorte de período) mais os limites de viabilidade
// derivados do preço e custo do produto.
//
// Anúncios apontando para ofertas excluídas simplesmente não são
// atribuídos a nenhuma linha; os totais do dashboard não são afetados.
// Margem não positiva ou preço ausente sinalizam "não calculável" com
// BreakEvenROAS e MaxCPA zerados.
func ComputeOfferStats(offers []*domain.Offer, ads []*domain.AdEntry) []*domain.OfferStats {
	stats := make([]*domain.OfferStats, 0, len(offers))

	for _, offer := range offers {
		stat := &domain.OfferStats{Offer: *offer}

		for _, ad := range ads {
			if ad.OfferID != offer.ID {
				continue
			}

			stat.TotalSpend += ad.Spend
			stat.TotalRevenue += ad.Revenue
		}

		stat.Profit = stat.TotalRevenue - stat.TotalSpend

		if stat.TotalSpend > 0 {
			stat.ROI = stat.Profit / stat.TotalSpend * 100
		}

		stat.BreakEvenROAS, stat.MaxCPA = breakEven(offer)

		stats = append(stats, stat)
	}

	return stats
}

// breakEven deriva o ROAS de equilíbrio e o CPA máximo da unidade vendida
func breakEven(offer *domain.Offer) (breakEvenROAS, maxCPA float64) {
	if offer.ProductPrice == nil || *offer.ProductPrice <= 0 {
		return 0, 0
	}

	price := *offer.ProductPrice

	cost := 0.0
	if offer.ProductCost != nil {
		cost = *offer.ProductCost
	}

	margin := price - cost
	if margin <= 0 {
		return 0, 0
	}

	return price / margin, margin
}
