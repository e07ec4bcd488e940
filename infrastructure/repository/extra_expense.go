package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const (
	expensesTable = "expenses e"
)

type ExtraExpenseRepository interface {
	ListExpenses() ([]*domain.ExtraExpense, error)
	ListRecentExpenses(limit uint64) ([]*domain.ExtraExpense, error)
	CreateExpense(expense *domain.ExtraExpense) error
	DeleteExpense(id string) error
}

type extraExpenseRepository struct {
	conn *postgres.Connection
}

func NewExtraExpenseRepository(conn *postgres.Connection) ExtraExpenseRepository {
	return &extraExpenseRepository{
		conn: conn,
	}
}

func (r *extraExpenseRepository) ListExpenses() ([]*domain.ExtraExpense, error) {
	return r.list(0)
}

func (r *extraExpenseRepository) ListRecentExpenses(limit uint64) ([]*domain.ExtraExpense, error) {
	return r.list(limit)
}

func (r *extraExpenseRepository) list(limit uint64) ([]*domain.ExtraExpense, error) {
	builder := squirrel.
		Select("e.id, e.date, e.category, e.amount, e.description, e.created_at, e.updated_at").
		From(expensesTable).
		OrderBy("e.date DESC", "e.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.ExtraExpense, 0)
	for rows.Next() {
		expense := &domain.ExtraExpense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.Date,
			&expense.Category,
			&expense.Amount,
			&expense.Description,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto extra: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *extraExpenseRepository) CreateExpense(expense *domain.ExtraExpense) error {
	query, args, err := squirrel.
		Insert("expenses").
		Columns("id", "date", "category", "amount", "description").
		Values(
			expense.ID,
			expense.Date.Format(time.DateOnly),
			expense.Category,
			expense.Amount,
			expense.Description,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir gasto extra: %w", err)
	}

	return nil
}

func (r *extraExpenseRepository) DeleteExpense(id string) error {
	query, args, err := squirrel.
		Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir gasto extra: %w", err)
	}

	return nil
}
