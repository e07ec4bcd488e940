package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const (
	adsTable = "ads a"
)

type AdEntryRepository interface {
	ListAdEntries() ([]*domain.AdEntry, error)
	ListRecentAdEntries(limit uint64) ([]*domain.AdEntry, error)
	CreateAdEntry(ad *domain.AdEntry) error
	DeleteAdEntry(id string) error
}

type adEntryRepository struct {
	conn *postgres.Connection
}

func NewAdEntryRepository(conn *postgres.Connection) AdEntryRepository {
	return &adEntryRepository{
		conn: conn,
	}
}

func (r *adEntryRepository) ListAdEntries() ([]*domain.AdEntry, error) {
	return r.list(0)
}

// ListRecentAdEntries retorna os lançamentos mais recentes por data, para
// a listagem da página de registros
func (r *adEntryRepository) ListRecentAdEntries(limit uint64) ([]*domain.AdEntry, error) {
	return r.list(limit)
}

func (r *adEntryRepository) list(limit uint64) ([]*domain.AdEntry, error) {
	builder := squirrel.
		Select("a.id, a.date, a.offer_id, a.spend, a.revenue, a.created_at, a.updated_at").
		From(adsTable).
		OrderBy("a.date DESC", "a.created_at DESC").
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

	ads := make([]*domain.AdEntry, 0)
	for rows.Next() {
		ad := &domain.AdEntry{}
		if err := rows.Scan(
			&ad.ID,
			&ad.Date,
			&ad.OfferID,
			&ad.Spend,
			&ad.Revenue,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento de anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *adEntryRepository) CreateAdEntry(ad *domain.AdEntry) error {
	query, args, err := squirrel.
		Insert("ads").
		Columns("id", "date", "offer_id", "spend", "revenue").
		Values(
			ad.ID,
			ad.Date.Format(time.DateOnly),
			ad.OfferID,
			ad.Spend,
			ad.Revenue,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir lançamento de anúncio: %w", err)
	}

	return nil
}

func (r *adEntryRepository) DeleteAdEntry(id string) error {
	query, args, err := squirrel.
		Delete("ads").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir lançamento de anúncio: %w", err)
	}

	return nil
}
