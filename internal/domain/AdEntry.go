package domain

import "time"

// AdEntry representa o resultado de tráfego de um dia para uma oferta.
// OfferID é uma referência fraca: a oferta pode ter sido excluída e a
// entrada continua válida para os agregados.
type AdEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	OfferID   string    `json:"offer_id"`
	Spend     float64   `json:"spend"`
	Revenue   float64   `json:"revenue"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
