package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetGiftDetailsImpl_Query(t *testing.T) {
	giftID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	gift := domain.Gift{
		ID:                     giftID,
		Name:                   "Pour-over kit",
		BriefDescription:       "Ceramic pour-over brewer",
		FullDescription:        "A ceramic pour-over brewer with a matching carafe.",
		PriceRange:             domain.PriceRange_MODERATE,
		Categories:             []string{"coffee"},
		Occasions:              []string{"birthday"},
		RecipientTypes:         []string{"friend"},
		Embedding:              []float64{0.1, 0.2, 0.3},
		PopularityScore:        0.8,
		PurchaseURL:            "https://example.com/pour-over",
		HasAffiliateCommission: true,
	}

	tests := map[string]struct {
		id              string
		setExpectations func(catalog *domain.MockGiftCatalog)
		expectedDetails domain.GiftDetails
		expectedErr     error
	}{
		"success": {
			id: giftID.String(),
			setExpectations: func(catalog *domain.MockGiftCatalog) {
				catalog.EXPECT().GetGift(mock.Anything, giftID).Return(gift, true, nil)
			},
			expectedDetails: gift.Details(),
		},
		"malformed-id": {
			id:          "not-a-uuid",
			expectedErr: domain.NewValidationErr("gift_id must be a valid UUID"),
		},
		"not-found": {
			id: giftID.String(),
			setExpectations: func(catalog *domain.MockGiftCatalog) {
				catalog.EXPECT().GetGift(mock.Anything, giftID).Return(domain.Gift{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("gift not found"),
		},
		"catalog-error": {
			id: giftID.String(),
			setExpectations: func(catalog *domain.MockGiftCatalog) {
				catalog.EXPECT().GetGift(mock.Anything, giftID).Return(domain.Gift{}, false, errors.New("connection reset"))
			},
			expectedErr: domain.NewUpstreamErr("gift catalog", errors.New("connection reset")),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain.NewMockGiftCatalog(t)
			if tt.setExpectations != nil {
				tt.setExpectations(catalog)
			}

			ggd := NewGetGiftDetailsImpl(catalog)

			got, gotErr := ggd.Query(context.Background(), tt.id)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedDetails, got)
		})
	}
}

func TestInitGetGiftDetails_Initialize(t *testing.T) {
	iggd := &InitGetGiftDetails{
		Catalog: domain.NewMockGiftCatalog(t),
	}

	ctx, err := iggd.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}
