package spying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adtracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func vault() []*domain.Reference {
	return []*domain.Reference{
		{ID: "r1", Title: "VSL emagrecimento agressiva", Niche: "Saúde", Source: domain.ReferenceSourceInstagram},
		{ID: "r2", Title: "Página de captura finanças", Niche: "Finanças", Source: domain.ReferenceSourceTikTok},
		{ID: "r3", Title: "Criativo UGC emagrecimento", Niche: "Saúde", Source: domain.ReferenceSourceTikTok},
	}
}

func TestService_ListReferences(t *testing.T) {
	tests := []struct {
		name    string
		filter  ReferenceFilter
		wantIDs []string
	}{
		{
			name:    "sem filtro devolve tudo",
			filter:  ReferenceFilter{},
			wantIDs: []string{"r1", "r2", "r3"},
		},
		{
			name:    "filtro por nicho",
			filter:  ReferenceFilter{Niche: "saúde"},
			wantIDs: []string{"r1", "r3"},
		},
		{
			name:    "busca no título",
			filter:  ReferenceFilter{Search: "captura"},
			wantIDs: []string{"r2"},
		},
		{
			name:    "nicho e busca combinados",
			filter:  ReferenceFilter{Niche: "Saúde", Search: "ugc"},
			wantIDs: []string{"r3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			referenceRepo := mocks.NewMockReferenceRepository(ctrl)
			referenceRepo.EXPECT().ListReferences().Return(vault(), nil)

			service := NewService(referenceRepo)

			references, err := service.ListReferences(tt.filter)

			require.NoError(t, err)
			ids := make([]string, 0, len(references))
			for _, reference := range references {
				ids = append(ids, reference.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_CreateReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	referenceRepo := mocks.NewMockReferenceRepository(ctrl)
	referenceRepo.EXPECT().CreateReference(gomock.Any()).Return(nil)

	service := NewService(referenceRepo)

	reference, err := service.CreateReference(&domain.Reference{
		Title:  "Anúncio dropshipping pet",
		Niche:  "Pet",
		Source: domain.ReferenceSourceInstagram,
		Link:   "https://instagram.com/p/abc",
	})

	require.NoError(t, err)
	assert.Len(t, reference.ID, 6)
}

func TestService_CreateReference_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockReferenceRepository(ctrl))

	_, err := service.CreateReference(&domain.Reference{Source: domain.ReferenceSourceTikTok})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = service.CreateReference(&domain.Reference{Title: "x", Source: domain.ReferenceSource("YouTube")})
	assert.ErrorIs(t, err, ErrInvalidSource)
}
