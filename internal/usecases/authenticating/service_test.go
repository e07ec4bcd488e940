package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adtracker-api/internal/config"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:        "segredo-de-teste",
			TokenTTLHours: 24,
		},
	}
}

func activeMember(t *testing.T, password string) *domain.TeamMember {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.TeamMember{
		ID:           "m1",
		Name:         "Vinícius",
		Email:        "vinicius@operacao.com",
		PasswordHash: string(hash),
		Role:         "gestor",
		Active:       true,
	}
}

func TestService_LoginAndValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := mocks.NewMockTeamMemberRepository(ctrl)
	service := NewService(memberRepo, testConfig())

	member := activeMember(t, "senha-forte")
	memberRepo.EXPECT().GetMemberByEmail("vinicius@operacao.com").Return(member, nil)

	token, err := service.Login(" Vinicius@Operacao.com ", "senha-forte")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "m1", claims.MemberID)
	assert.Equal(t, "Vinícius", claims.MemberName)
	assert.Equal(t, "gestor", claims.MemberRole)
}

func TestService_Login_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := mocks.NewMockTeamMemberRepository(ctrl)
	service := NewService(memberRepo, testConfig())

	t.Run("dados ausentes", func(t *testing.T) {
		_, err := service.Login("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("membro inexistente", func(t *testing.T) {
		memberRepo.EXPECT().GetMemberByEmail("x@y.com").Return(nil, nil)

		_, err := service.Login("x@y.com", "whatever")
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("conta desativada", func(t *testing.T) {
		member := activeMember(t, "senha-forte")
		member.Active = false
		memberRepo.EXPECT().GetMemberByEmail(member.Email).Return(member, nil)

		_, err := service.Login(member.Email, "senha-forte")
		assert.ErrorIs(t, err, ErrMemberDisabled)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		member := activeMember(t, "senha-forte")
		memberRepo.EXPECT().GetMemberByEmail(member.Email).Return(member, nil)

		_, err := service.Login(member.Email, "senha-errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := mocks.NewMockTeamMemberRepository(ctrl)

	issuer := NewService(memberRepo, testConfig())
	member := activeMember(t, "senha-forte")
	memberRepo.EXPECT().GetMemberByEmail(member.Email).Return(member, nil)

	token, err := issuer.Login(member.Email, "senha-forte")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.Auth.Secret = "outro-segredo"
	validator := NewService(memberRepo, otherCfg)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_GetProfile_StripsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := mocks.NewMockTeamMemberRepository(ctrl)
	service := NewService(memberRepo, testConfig())

	member := activeMember(t, "senha-forte")
	memberRepo.EXPECT().GetMemberByID("m1").Return(member, nil)

	profile, err := service.GetProfile("m1")

	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
}
