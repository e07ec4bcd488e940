package domain

import (
	"fmt"
	"time"
)

// RecurringExpense é uma regra de gasto mensal fixo, disparada pelo dia do
// mês. Não é uma transação: não tem estado de "pago".
type RecurringExpense struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     float64         `json:"amount"`
	DayOfMonth int             `json:"day_of_month"`
	Category   ExpenseCategory `json:"category"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Validate garante a invariante de DayOfMonth na fronteira, antes que o
// valor chegue ao cálculo de acúmulo.
func (r *RecurringExpense) Validate() error {
	if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
		return fmt.Errorf("dia do mês inválido: %d (esperado entre 1 e 31)", r.DayOfMonth)
	}

	if r.Amount < 0 {
		return fmt.Errorf("valor do gasto recorrente não pode ser negativo: %.2f", r.Amount)
	}

	if !r.Category.Valid() {
		return fmt.Errorf("categoria inválida: %s", r.Category)
	}

	return nil
}
