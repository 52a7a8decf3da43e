package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/ribslabs/giftwise/internal/telemetry"
)

// GetGiftDetails defines the interface for the GetGiftDetails use case.
type GetGiftDetails interface {
	Query(ctx context.Context, id string) (domain.GiftDetails, error)
}

// GetGiftDetailsImpl is the implementation of the GetGiftDetails use case.
type GetGiftDetailsImpl struct {
	catalog domain.GiftCatalog
}

// NewGetGiftDetailsImpl creates a new instance of GetGiftDetailsImpl.
func NewGetGiftDetailsImpl(catalog domain.GiftCatalog) GetGiftDetailsImpl {
	return GetGiftDetailsImpl{
		catalog: catalog,
	}
}

// Query returns the detail view of one gift. The affiliate flag and the raw
// embedding are never part of the view.
func (ggd GetGiftDetailsImpl) Query(ctx context.Context, id string) (domain.GiftDetails, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	giftID, err := uuid.Parse(id)
	if err != nil {
		err = domain.NewValidationErr("gift_id must be a valid UUID")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.GiftDetails{}, err
	}

	gift, found, err := ggd.catalog.GetGift(spanCtx, giftID)
	if err != nil {
		err = domain.NewUpstreamErr("gift catalog", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.GiftDetails{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("gift not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.GiftDetails{}, err
	}

	return gift.Details(), nil
}

// InitGetGiftDetails initializes the GetGiftDetails use case and registers it
// in the dependency container.
type InitGetGiftDetails struct {
	Catalog domain.GiftCatalog `resolve:""`
}

func (iggd InitGetGiftDetails) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetGiftDetails](NewGetGiftDetailsImpl(iggd.Catalog))
	return ctx, nil
}
