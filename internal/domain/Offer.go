package domain

import "time"

// OfferStatus representa o estágio de vida de uma oferta na operação
type OfferStatus string

const (
	OfferStatusRunning   OfferStatus = "Rodando / Escala"
	OfferStatusValidated OfferStatus = "Validada"
	OfferStatusProducing OfferStatus = "Em Produção"
	OfferStatusTesting   OfferStatus = "Em Teste"
	OfferStatusPaused    OfferStatus = "Pausada"
)

// Valid indica se o status é um dos valores conhecidos
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusRunning, OfferStatusValidated, OfferStatusProducing,
		OfferStatusTesting, OfferStatusPaused:
		return true
	}
	return false
}

// Offer representa um produto/oferta rastreado pela operação.
// ProductPrice e ProductCost são opcionais: sem eles não há ponto de
// equilíbrio calculável.
type Offer struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Status       OfferStatus `json:"status"`
	ProductPrice *float64    `json:"product_price,omitempty"`
	ProductCost  *float64    `json:"product_cost,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// UpdateOfferRequest carrega alterações parciais de uma oferta
type UpdateOfferRequest struct {
	ID           string       `json:"id"`
	Name         *string      `json:"name"`
	Status       *OfferStatus `json:"status"`
	ProductPrice *float64     `json:"product_price"`
	ProductCost  *float64     `json:"product_cost"`
}

// OfferStats agrega a economia de uma oferta sobre todos os seus anúncios
// (sem recorte de período) mais os pontos de equilíbrio derivados do preço
// e custo do produto.
type OfferStats struct {
	Offer
	TotalSpend    float64 `json:"total_spend"`
	TotalRevenue  float64 `json:"total_revenue"`
	Profit        float64 `json:"profit"`
	ROI           float64 `json:"roi"`
	BreakEvenROAS float64 `json:"break_even_roas"`
	MaxCPA        float64 `json:"max_cpa"`
}
