package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const (
	referencesTable = "creative_references cr"
)

type ReferenceRepository interface {
	ListReferences() ([]*domain.Reference, error)
	CreateReference(reference *domain.Reference) error
	DeleteReference(id string) error
}

type referenceRepository struct {
	conn *postgres.Connection
}

func NewReferenceRepository(conn *postgres.Connection) ReferenceRepository {
	return &referenceRepository{
		conn: conn,
	}
}

func (r *referenceRepository) ListReferences() ([]*domain.Reference, error) {
	query, args, err := squirrel.
		Select("cr.id, cr.title, cr.niche, cr.source, cr.image_url, cr.link, cr.created_at").
		From(referencesTable).
		OrderBy("cr.created_at DESC").
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

	references := make([]*domain.Reference, 0)
	for rows.Next() {
		reference := &domain.Reference{}
		if err := rows.Scan(
			&reference.ID,
			&reference.Title,
			&reference.Niche,
			&reference.Source,
			&reference.ImageURL,
			&reference.Link,
			&reference.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear referência: %w", err)
		}
		references = append(references, reference)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return references, nil
}

func (r *referenceRepository) CreateReference(reference *domain.Reference) error {
	query, args, err := squirrel.
		Insert("creative_references").
		Columns("id", "title", "niche", "source", "image_url", "link").
		Values(reference.ID, reference.Title, reference.Niche, reference.Source, reference.ImageURL, reference.Link).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir referência: %w", err)
	}

	return nil
}

func (r *referenceRepository) DeleteReference(id string) error {
	query, args, err := squirrel.
		Delete("creative_references").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir referência: %w", err)
	}

	return nil
}
