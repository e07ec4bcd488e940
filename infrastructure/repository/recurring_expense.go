package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const (
	recurringExpensesTable = "recurring_expenses re"
)

type RecurringExpenseRepository interface {
	ListRecurringExpenses() ([]*domain.RecurringExpense, error)
	CreateRecurringExpense(def *domain.RecurringExpense) error
	DeleteRecurringExpense(id string) error
}

type recurringExpenseRepository struct {
	conn *postgres.Connection
}

func NewRecurringExpenseRepository(conn *postgres.Connection) RecurringExpenseRepository {
	return &recurringExpenseRepository{
		conn: conn,
	}
}

func (r *recurringExpenseRepository) ListRecurringExpenses() ([]*domain.RecurringExpense, error) {
	query, args, err := squirrel.
		Select("re.id, re.name, re.amount, re.day_of_month, re.category, re.created_at, re.updated_at").
		From(recurringExpensesTable).
		OrderBy("re.day_of_month ASC", "re.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	defs := make([]*domain.RecurringExpense, 0)
	for rows.Next() {
		def := &domain.RecurringExpense{}
		if err := rows.Scan(
			&def.ID,
			&def.Name,
			&def.Amount,
			&def.DayOfMonth,
			&def.Category,
			&def.CreatedAt,
			&def.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto recorrente: %w", err)
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return defs, nil
}

func (r *recurringExpenseRepository) CreateRecurringExpense(def *domain.RecurringExpense) error {
	query, args, err := squirrel.
		Insert("recurring_expenses").
		Columns("id", "name", "amount", "day_of_month", "category").
		Values(def.ID, def.Name, def.Amount, def.DayOfMonth, def.Category).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir gasto recorrente: %w", err)
	}

	return nil
}

func (r *recurringExpenseRepository) DeleteRecurringExpense(id string) error {
	query, args, err := squirrel.
		Delete("recurring_expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir gasto recorrente: %w", err)
	}

	return nil
}
