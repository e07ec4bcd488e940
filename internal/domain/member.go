package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de membro reconhecidos pelo painel
const (
	RoleManager = "gestor"
	RoleEditor  = "editor"
)

// TeamMember é um integrante da operação com acesso ao painel
type TeamMember struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Claims são os dados do membro embutidos no token JWT
type Claims struct {
	MemberID    string
	MemberName  string
	MemberEmail string
	MemberRole  string
	jwt.RegisteredClaims
}
