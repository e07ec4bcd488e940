package spying

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adtracker-api/infrastructure/repository"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/pkg/utils"
)

var (
	ErrTitleRequired = errors.New("título da referência é obrigatório")
	ErrInvalidSource = errors.New("origem de referência inválida")
)

// ReferenceFilter restringe a listagem do cofre de referências
type ReferenceFilter struct {
	Niche  string
	Search string
}

// Spy é o cofre de referências de criativos da concorrência
type Spy interface {
	ListReferences(filter ReferenceFilter) ([]*domain.Reference, error)
	CreateReference(reference *domain.Reference) (*domain.Reference, error)
	DeleteReference(id string) error
}

type Service struct {
	referenceRepo repository.ReferenceRepository
}

func NewService(referenceRepo repository.ReferenceRepository) Spy {
	return &Service{
		referenceRepo: referenceRepo,
	}
}

// ListReferences filtra em memória por nicho exato e busca livre no título.
// O cofre é pequeno; o repositório devolve tudo ordenado por data.
func (s *Service) ListReferences(filter ReferenceFilter) ([]*domain.Reference, error) {
	references, err := s.referenceRepo.ListReferences()
	if err != nil {
		return nil, err
	}

	if filter.Niche == "" && filter.Search == "" {
		return references, nil
	}

	search := strings.ToLower(filter.Search)

	filtered := make([]*domain.Reference, 0, len(references))
	for _, reference := range references {
		if filter.Niche != "" && !strings.EqualFold(reference.Niche, filter.Niche) {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(reference.Title), search) {
			continue
		}

		filtered = append(filtered, reference)
	}

	return filtered, nil
}

func (s *Service) CreateReference(reference *domain.Reference) (*domain.Reference, error) {
	if reference.Title == "" {
		return nil, ErrTitleRequired
	}

	if !reference.Source.Valid() {
		return nil, ErrInvalidSource
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar ID da referência")
		return nil, err
	}
	reference.ID = id

	if err := s.referenceRepo.CreateReference(reference); err != nil {
		return nil, err
	}

	return reference, nil
}

func (s *Service) DeleteReference(id string) error {
	return s.referenceRepo.DeleteReference(id)
}
