package domain

import "time"

// ExpenseCategory classifica gastos extras e recorrentes da operação
type ExpenseCategory string

const (
	ExpenseCategoryBM         ExpenseCategory = "BM / Contingência"
	ExpenseCategoryDomain     ExpenseCategory = "Domínio / Hospedagem"
	ExpenseCategoryChargeback ExpenseCategory = "Chargeback / Reembolso"
	ExpenseCategoryTools      ExpenseCategory = "Ferramentas / SaaS"
	ExpenseCategoryOther      ExpenseCategory = "Outros"
)

// Valid indica se a categoria é um dos valores conhecidos
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryBM, ExpenseCategoryDomain, ExpenseCategoryChargeback,
		ExpenseCategoryTools, ExpenseCategoryOther:
		return true
	}
	return false
}

// ExtraExpense representa um gasto operacional manual, não atribuível a
// uma oferta específica.
type ExtraExpense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
