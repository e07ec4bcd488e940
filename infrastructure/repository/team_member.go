package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adtracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

const (
	teamMembersTable = "team_members tm"
)

type TeamMemberRepository interface {
	GetMemberByEmail(email string) (*domain.TeamMember, error)
	GetMemberByID(id string) (*domain.TeamMember, error)
	ListMembers() ([]*domain.TeamMember, error)
}

type teamMemberRepository struct {
	conn *postgres.Connection
}

func NewTeamMemberRepository(conn *postgres.Connection) TeamMemberRepository {
	return &teamMemberRepository{
		conn: conn,
	}
}

const teamMemberColumns = "tm.id, tm.name, tm.email, tm.password_hash, tm.role, tm.avatar_url, tm.active, tm.created_at, tm.deleted_at"

func (r *teamMemberRepository) getMember(where squirrel.Eq) (*domain.TeamMember, error) {
	query, args, err := squirrel.
		Select(teamMemberColumns).
		From(teamMembersTable).
		Where(where).
		Where("tm.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	member := &domain.TeamMember{}
	err = r.conn.QueryRow(query, args...).Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.PasswordHash,
		&member.Role,
		&member.AvatarURL,
		&member.Active,
		&member.CreatedAt,
		&member.DeletedAt,
	)
	if err != nil {
		if errIsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear membro: %w", err)
	}

	return member, nil
}

func (r *teamMemberRepository) GetMemberByEmail(email string) (*domain.TeamMember, error) {
	return r.getMember(squirrel.Eq{"tm.email": email})
}

func (r *teamMemberRepository) GetMemberByID(id string) (*domain.TeamMember, error) {
	return r.getMember(squirrel.Eq{"tm.id": id})
}

func (r *teamMemberRepository) ListMembers() ([]*domain.TeamMember, error) {
	query, args, err := squirrel.
		Select(teamMemberColumns).
		From(teamMembersTable).
		Where("tm.deleted_at IS NULL").
		OrderBy("tm.name ASC").
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

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member := &domain.TeamMember{}
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Email,
			&member.PasswordHash,
			&member.Role,
			&member.AvatarURL,
			&member.Active,
			&member.CreatedAt,
			&member.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear membro: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return members, nil
}
