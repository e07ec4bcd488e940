package tracking

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/infrastructure/repository"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/pkg/utils"
)

// Tracker expõe o CRUD de ofertas e lançamentos da operação
type Tracker interface {
	ListOffers() ([]*domain.Offer, error)
	CreateOffer(offer *domain.Offer) (*domain.Offer, error)
	UpdateOffer(req *domain.UpdateOfferRequest) error
	DeleteOffer(id string) error

	ListAdEntries() ([]*domain.AdEntry, error)
	CreateAdEntry(entry *domain.AdEntry) (*domain.AdEntry, error)
	DeleteAdEntry(id string) error

	ListExpenses() ([]*domain.ExtraExpense, error)
	CreateExpense(expense *domain.ExtraExpense) (*domain.ExtraExpense, error)
	DeleteExpense(id string) error

	ListRecurringExpenses() ([]*domain.RecurringExpense, error)
	CreateRecurringExpense(def *domain.RecurringExpense) (*domain.RecurringExpense, error)
	DeleteRecurringExpense(id string) error
}

type Service struct {
	offerRepo     repository.OfferRepository
	adEntryRepo   repository.AdEntryRepository
	expenseRepo   repository.ExtraExpenseRepository
	recurringRepo repository.RecurringExpenseRepository
}

func NewService(
	offerRepo repository.OfferRepository,
	adEntryRepo repository.AdEntryRepository,
	expenseRepo repository.ExtraExpenseRepository,
	recurringRepo repository.RecurringExpenseRepository,
) Tracker {
	return &Service{
		offerRepo:     offerRepo,
		adEntryRepo:   adEntryRepo,
		expenseRepo:   expenseRepo,
		recurringRepo: recurringRepo,
	}
}

func (s *Service) ListOffers() ([]*domain.Offer, error) {
	return s.offerRepo.ListOffers()
}

func (s *Service) CreateOffer(offer *domain.Offer) (*domain.Offer, error) {
	if offer.Name == "" {
		return nil, ErrOfferNameRequired
	}

	if offer.Status == "" {
		offer.Status = domain.OfferStatusTesting
	}

	if !offer.Status.Valid() {
		return nil, ErrInvalidOfferStatus
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID da oferta")
		return nil, err
	}
	offer.ID = id

	if err := s.offerRepo.CreateOffer(offer); err != nil {
		return nil, err
	}

	return offer, nil
}

// UpdateOffer aplica alterações parciais sobre o estado atual da oferta
func (s *Service) UpdateOffer(req *domain.UpdateOfferRequest) error {
	offer, err := s.offerRepo.GetOfferByID(req.ID)
	if err != nil {
		return err
	}
	if offer == nil {
		return ErrOfferNotFound
	}

	if req.Name != nil {
		offer.Name = *req.Name
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return ErrInvalidOfferStatus
		}
		offer.Status = *req.Status
	}

	if req.ProductPrice != nil {
		offer.ProductPrice = req.ProductPrice
	}

	if req.ProductCost != nil {
		offer.ProductCost = req.ProductCost
	}

	return s.offerRepo.UpdateOffer(offer)
}

// DeleteOffer remove a oferta sem tocar nos anúncios que a referenciam;
// eles continuam contando nos agregados gerais.
func (s *Service) DeleteOffer(id string) error {
	return s.offerRepo.DeleteOffer(id)
}

func (s *Service) ListAdEntries() ([]*domain.AdEntry, error) {
	return s.adEntryRepo.ListAdEntries()
}

func (s *Service) CreateAdEntry(entry *domain.AdEntry) (*domain.AdEntry, error) {
	if entry.OfferID == "" {
		return nil, ErrOfferRequired
	}

	if entry.Spend < 0 || entry.Revenue < 0 {
		return nil, ErrNegativeAmount
	}

	if entry.Date.IsZero() {
		entry.Date = domain.Day(time.Now())
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID do anúncio")
		return nil, err
	}
	entry.ID = id

	if err := s.adEntryRepo.CreateAdEntry(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) DeleteAdEntry(id string) error {
	return s.adEntryRepo.DeleteAdEntry(id)
}

func (s *Service) ListExpenses() ([]*domain.ExtraExpense, error) {
	return s.expenseRepo.ListExpenses()
}

func (s *Service) CreateExpense(expense *domain.ExtraExpense) (*domain.ExtraExpense, error) {
	if !expense.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	if expense.Amount < 0 {
		return nil, ErrNegativeAmount
	}

	if expense.Date.IsZero() {
		expense.Date = domain.Day(time.Now())
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID do gasto")
		return nil, err
	}
	expense.ID = id

	if err := s.expenseRepo.CreateExpense(expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *Service) DeleteExpense(id string) error {
	return s.expenseRepo.DeleteExpense(id)
}

func (s *Service) ListRecurringExpenses() ([]*domain.RecurringExpense, error) {
	return s.recurringRepo.ListRecurringExpenses()
}

func (s *Service) CreateRecurringExpense(def *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	if def.Name == "" {
		return nil, ErrRecurringNameMissing
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID do gasto recorrente")
		return nil, err
	}
	def.ID = id

	if err := s.recurringRepo.CreateRecurringExpense(def); err != nil {
		return nil, err
	}

	return def, nil
}

func (s *Service) DeleteRecurringExpense(id string) error {
	return s.recurringRepo.DeleteRecurringExpense(id)
}
