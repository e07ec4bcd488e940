package tracking

import "errors"

// Erros do contexto de lançamentos e ofertas
var (
	ErrOfferNotFound        = errors.New("oferta não encontrada")
	ErrOfferNameRequired    = errors.New("nome da oferta é obrigatório")
	ErrInvalidOfferStatus   = errors.New("status de oferta inválido")
	ErrOfferRequired        = errors.New("oferta do anúncio é obrigatória")
	ErrNegativeAmount       = errors.New("valor não pode ser negativo")
	ErrInvalidCategory      = errors.New("categoria de gasto inválida")
	ErrRecurringNameMissing = errors.New("nome do gasto recorrente é obrigatório")
)
