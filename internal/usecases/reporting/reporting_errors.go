package reporting

import "errors"

// Erros de contrato do motor de agregação. Todos indicam entrada inválida
// na fronteira; o cálculo em si nunca falha.
var (
	ErrInvalidDateRange     = errors.New("seletor de período inválido")
	ErrInvalidOffset        = errors.New("offset de comparação não pode ser negativo")
	ErrCustomBoundsRequired = errors.New("período custom exige datas de início e fim")
	ErrInvalidCustomBounds  = errors.New("data de início não pode ser posterior à data de fim")
)
