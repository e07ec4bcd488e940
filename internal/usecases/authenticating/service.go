package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/adtracker-api/infrastructure/repository"
	"github.com/vfg2006/adtracker-api/internal/config"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetProfile(memberID string) (*domain.TeamMember, error)
	ListMembers() ([]*domain.TeamMember, error)
}

type Service struct {
	memberRepo repository.TeamMemberRepository
	cfg        *config.Config
}

func NewService(memberRepo repository.TeamMemberRepository, cfg *config.Config) Authenticator {
	return &Service{
		memberRepo: memberRepo,
		cfg:        cfg,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	member, err := s.memberRepo.GetMemberByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar membro no banco de dados")
	}

	if member == nil {
		return "", NewAuthError(ErrMemberNotFound, apiErrors.ErrMemberNotFound, "Membro não encontrado")
	}

	if !member.Active {
		return "", NewAuthError(ErrMemberDisabled, apiErrors.ErrMemberDisabled, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	token, err := s.generateJWT(member)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(member *domain.TeamMember) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := domain.Claims{
		MemberID:    member.ID,
		MemberName:  member.Name,
		MemberEmail: member.Email,
		MemberRole:  member.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetProfile(memberID string) (*domain.TeamMember, error) {
	member, err := s.memberRepo.GetMemberByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	member.PasswordHash = ""
	return member, nil
}

func (s *Service) ListMembers() ([]*domain.TeamMember, error) {
	members, err := s.memberRepo.ListMembers()
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		member.PasswordHash = ""
	}

	return members, nil
}
