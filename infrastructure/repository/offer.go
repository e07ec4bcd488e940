package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const (
	offersTable = "offers o"
)

type OfferRepository interface {
	ListOffers() ([]*domain.Offer, error)
	GetOfferByID(id string) (*domain.Offer, error)
	CreateOffer(offer *domain.Offer) error
	UpdateOffer(offer *domain.Offer) error
	DeleteOffer(id string) error
}

type offerRepository struct {
	conn *postgres.Connection
}

func NewOfferRepository(conn *postgres.Connection) OfferRepository {
	return &offerRepository{
		conn: conn,
	}
}

func (r *offerRepository) ListOffers() ([]*domain.Offer, error) {
	query, args, err := squirrel.
		Select("o.id, o.name, o.status, o.product_price, o.product_cost, o.created_at, o.updated_at").
		From(offersTable).
		OrderBy("o.name ASC").
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

	offers := make([]*domain.Offer, 0)
	for rows.Next() {
		offer := &domain.Offer{}
		if err := rows.Scan(
			&offer.ID,
			&offer.Name,
			&offer.Status,
			&offer.ProductPrice,
			&offer.ProductCost,
			&offer.CreatedAt,
			&offer.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear oferta: %w", err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return offers, nil
}

func (r *offerRepository) GetOfferByID(id string) (*domain.Offer, error) {
	query, args, err := squirrel.
		Select("o.id, o.name, o.status, o.product_price, o.product_cost, o.created_at, o.updated_at").
		From(offersTable).
		Where(squirrel.Eq{"o.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	offer := &domain.Offer{}
	err = r.conn.QueryRow(query, args...).Scan(
		&offer.ID,
		&offer.Name,
		&offer.Status,
		&offer.ProductPrice,
		&offer.ProductCost,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear oferta: %w", err)
	}

	return offer, nil
}

func (r *offerRepository) CreateOffer(offer *domain.Offer) error {
	query, args, err := squirrel.
		Insert("offers").
		Columns("id", "name", "status", "product_price", "product_cost").
		Values(offer.ID, offer.Name, offer.Status, offer.ProductPrice, offer.ProductCost).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir oferta: %w", err)
	}

	return nil
}

func (r *offerRepository) UpdateOffer(offer *domain.Offer) error {
	query, args, err := squirrel.
		Update("offers").
		Set("name", offer.Name).
		Set("status", offer.Status).
		Set("product_price", offer.ProductPrice).
		Set("product_cost", offer.ProductCost).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": offer.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar oferta: %w", err)
	}

	return nil
}

// DeleteOffer remove apenas a oferta. Os anúncios que a referenciam são
// preservados: a referência é fraca e os agregados toleram a ausência.
func (r *offerRepository) DeleteOffer(id string) error {
	query, args, err := squirrel.
		Delete("offers").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir oferta: %w", err)
	}

	return nil
}
