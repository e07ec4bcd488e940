package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(ctrl *gomock.Controller) (Tracker, *mocks.MockOfferRepository, *mocks.MockAdEntryRepository, *mocks.MockExtraExpenseRepository, *mocks.MockRecurringExpenseRepository) {
	offerRepo := mocks.NewMockOfferRepository(ctrl)
	adRepo := mocks.NewMockAdEntryRepository(ctrl)
	expenseRepo := mocks.NewMockExtraExpenseRepository(ctrl)
	recurringRepo := mocks.NewMockRecurringExpenseRepository(ctrl)

	return NewService(offerRepo, adRepo, expenseRepo, recurringRepo), offerRepo, adRepo, expenseRepo, recurringRepo
}

func TestService_CreateOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, offerRepo, _, _, _ := newServiceWithMocks(ctrl)

	offerRepo.EXPECT().CreateOffer(gomock.Any()).Return(nil)

	offer, err := service.CreateOffer(&domain.Offer{Name: "Oferta Drop"})

	require.NoError(t, err)
	assert.Len(t, offer.ID, 6)
	assert.Equal(t, domain.OfferStatusTesting, offer.Status)
}

func TestService_CreateOffer_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)

	tests := []struct {
		name    string
		offer   *domain.Offer
		wantErr error
	}{
		{
			name:    "nome obrigatório",
			offer:   &domain.Offer{},
			wantErr: ErrOfferNameRequired,
		},
		{
			name:    "status desconhecido",
			offer:   &domain.Offer{Name: "X", Status: domain.OfferStatus("Lançando")},
			wantErr: ErrInvalidOfferStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateOffer(tt.offer)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpdateOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, offerRepo, _, _, _ := newServiceWithMocks(ctrl)

	existing := &domain.Offer{ID: "abc123", Name: "Antiga", Status: domain.OfferStatusTesting}
	offerRepo.EXPECT().GetOfferByID("abc123").Return(existing, nil)

	newName := "Renomeada"
	newStatus := domain.OfferStatusRunning
	price := 97.0

	offerRepo.EXPECT().UpdateOffer(gomock.Any()).DoAndReturn(func(offer *domain.Offer) error {
		assert.Equal(t, "Renomeada", offer.Name)
		assert.Equal(t, domain.OfferStatusRunning, offer.Status)
		require.NotNil(t, offer.ProductPrice)
		assert.Equal(t, 97.0, *offer.ProductPrice)
		return nil
	})

	err := service.UpdateOffer(&domain.UpdateOfferRequest{
		ID:           "abc123",
		Name:         &newName,
		Status:       &newStatus,
		ProductPrice: &price,
	})

	require.NoError(t, err)
}

func TestService_UpdateOffer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, offerRepo, _, _, _ := newServiceWithMocks(ctrl)

	offerRepo.EXPECT().GetOfferByID("nope").Return(nil, nil)

	err := service.UpdateOffer(&domain.UpdateOfferRequest{ID: "nope"})

	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestService_CreateAdEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, adRepo, _, _ := newServiceWithMocks(ctrl)

	adRepo.EXPECT().CreateAdEntry(gomock.Any()).Return(nil)

	entry, err := service.CreateAdEntry(&domain.AdEntry{OfferID: "o1", Spend: 100, Revenue: 250})

	require.NoError(t, err)
	assert.Len(t, entry.ID, 6)
	assert.False(t, entry.Date.IsZero())
}

func TestService_CreateAdEntry_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)

	tests := []struct {
		name    string
		entry   *domain.AdEntry
		wantErr error
	}{
		{
			name:    "oferta obrigatória",
			entry:   &domain.AdEntry{Spend: 10},
			wantErr: ErrOfferRequired,
		},
		{
			name:    "gasto negativo",
			entry:   &domain.AdEntry{OfferID: "o1", Spend: -1},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "faturamento negativo",
			entry:   &domain.AdEntry{OfferID: "o1", Revenue: -1},
			wantErr: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateAdEntry(tt.entry)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, expenseRepo, _ := newServiceWithMocks(ctrl)

	expenseRepo.EXPECT().CreateExpense(gomock.Any()).Return(nil)

	expense, err := service.CreateExpense(&domain.ExtraExpense{
		Category: domain.ExpenseCategoryBM,
		Amount:   120,
	})

	require.NoError(t, err)
	assert.Len(t, expense.ID, 6)
}

func TestService_CreateExpense_InvalidCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)

	_, err := service.CreateExpense(&domain.ExtraExpense{
		Category: domain.ExpenseCategory("Marketing"),
		Amount:   120,
	})

	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestService_CreateRecurringExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, recurringRepo := newServiceWithMocks(ctrl)

	recurringRepo.EXPECT().CreateRecurringExpense(gomock.Any()).Return(nil)

	def, err := service.CreateRecurringExpense(&domain.RecurringExpense{
		Name:       "Servidor",
		Amount:     100,
		DayOfMonth: 15,
		Category:   domain.ExpenseCategoryDomain,
	})

	require.NoError(t, err)
	assert.Len(t, def.ID, 6)
}

func TestService_CreateRecurringExpense_InvalidDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)

	tests := []struct {
		name string
		day  int
	}{
		{name: "dia zero", day: 0},
		{name: "dia 32", day: 32},
		{name: "dia negativo", day: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateRecurringExpense(&domain.RecurringExpense{
				Name:       "Servidor",
				Amount:     100,
				DayOfMonth: tt.day,
				Category:   domain.ExpenseCategoryDomain,
			})

			assert.Error(t, err)
		})
	}
}
