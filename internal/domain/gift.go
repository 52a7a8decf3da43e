package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PriceRange represents the price bracket of a gift.
type PriceRange string

const (
	// PriceRange_BUDGET covers gifts under $25.
	PriceRange_BUDGET PriceRange = "budget"
	// PriceRange_MODERATE covers gifts between $25 and $75.
	PriceRange_MODERATE PriceRange = "moderate"
	// PriceRange_PREMIUM covers gifts between $75 and $200.
	PriceRange_PREMIUM PriceRange = "premium"
	// PriceRange_LUXURY covers gifts over $200.
	PriceRange_LUXURY PriceRange = "luxury"
)

// DisplayRange returns the human-readable dollar range for the bracket.
func (pr PriceRange) DisplayRange() string {
	switch pr {
	case PriceRange_BUDGET:
		return "Under $25"
	case PriceRange_MODERATE:
		return "$25 - $75"
	case PriceRange_PREMIUM:
		return "$75 - $200"
	case PriceRange_LUXURY:
		return "Over $200"
	}
	return string(pr)
}

// IsValid reports whether the value is one of the known brackets.
func (pr PriceRange) IsValid() bool {
	switch pr {
	case PriceRange_BUDGET, PriceRange_MODERATE, PriceRange_PREMIUM, PriceRange_LUXURY:
		return true
	}
	return false
}

// Gift is a catalog item stored in the vector catalog with its embedding.
// Gifts are created by ingestion tooling and read-only to the engine.
type Gift struct {
	ID                     uuid.UUID
	Name                   string
	BriefDescription       string
	FullDescription        string
	PriceRange             PriceRange
	Categories             []string
	Occasions              []string
	RecipientTypes         []string
	Embedding              []float64
	PopularityScore        float64
	PurchaseURL            string
	HasAffiliateCommission bool
}

// Validate checks the gift against the catalog invariants. The dimensions
// argument is the embedding provider's declared dimensionality.
func (g Gift) Validate(dimensions int) error {
	if g.ID == uuid.Nil {
		return NewValidationErr("id cannot be empty")
	}
	if g.Name == "" || len(g.Name) > 100 {
		return NewValidationErr("name must be between 1 and 100 characters")
	}
	if g.BriefDescription == "" || len(g.BriefDescription) > 200 {
		return NewValidationErr("brief_description must be between 1 and 200 characters")
	}
	if g.FullDescription == "" || len(g.FullDescription) > 2000 {
		return NewValidationErr("full_description must be between 1 and 2000 characters")
	}
	if !g.PriceRange.IsValid() {
		return NewValidationErr(fmt.Sprintf("price_range %q must be one of budget, moderate, premium, luxury", g.PriceRange))
	}
	if len(g.Categories) == 0 {
		return NewValidationErr("at least one category is required")
	}
	if len(g.Embedding) != dimensions {
		return NewValidationErr(fmt.Sprintf("embedding must have %d dimensions, got %d", dimensions, len(g.Embedding)))
	}
	if g.PopularityScore < 0.0 || g.PopularityScore > 1.0 {
		return NewValidationErr("popularity_score must be between 0.0 and 1.0")
	}
	return nil
}

// EmbeddingText returns the concatenated text the gift's embedding is generated from.
func (g Gift) EmbeddingText() string {
	return fmt.Sprintf("%s. %s. Categories: %s", g.Name, g.BriefDescription, strings.Join(g.Categories, ", "))
}

// Details projects the gift into its external-facing detail view. The
// affiliate flag and raw embedding are intentionally absent.
func (g Gift) Details() GiftDetails {
	return GiftDetails{
		ID:               g.ID.String(),
		Name:             g.Name,
		BriefDescription: g.BriefDescription,
		FullDescription:  g.FullDescription,
		PriceRange:       g.PriceRange,
		Categories:       g.Categories,
		Occasions:        g.Occasions,
		RecipientTypes:   g.RecipientTypes,
		PurchaseURL:      g.PurchaseURL,
	}
}

// GiftDetails is the external-facing detail view of a gift.
type GiftDetails struct {
	ID               string
	Name             string
	BriefDescription string
	FullDescription  string
	PriceRange       PriceRange
	Categories       []string
	Occasions        []string
	RecipientTypes   []string
	PurchaseURL      string
}

// ScoredGift pairs a gift with the similarity (or popularity) score a catalog
// search assigned to it.
type ScoredGift struct {
	Gift  Gift
	Score float64
}

// GiftCatalog defines the interface for the vector-backed gift catalog.
type GiftCatalog interface {
	// SearchSimilar returns gifts whose embeddings are similar to the query
	// vector, ordered by descending score. Scores below threshold are omitted.
	SearchSimilar(ctx context.Context, embedding []float64, limit int, threshold float64) ([]ScoredGift, error)

	// GetGift retrieves a gift by its unique identifier.
	GetGift(ctx context.Context, id uuid.UUID) (Gift, bool, error)

	// GetGifts retrieves multiple gifts by id. Unresolvable ids are silently
	// omitted; no particular order is guaranteed.
	GetGifts(ctx context.Context, ids []uuid.UUID) ([]Gift, error)

	// GetPopular returns gifts ordered by popularity score, for fallback
	// recommendations.
	GetPopular(ctx context.Context, limit int) ([]ScoredGift, error)

	// TotalCount returns the number of gifts in the catalog.
	TotalCount(ctx context.Context) (int, error)

	// UpsertGift inserts or updates a gift. Used by ingestion tooling only;
	// the recommendation engine never writes.
	UpsertGift(ctx context.Context, gift Gift) error

	// FindGiftByName retrieves a gift by its exact name.
	FindGiftByName(ctx context.Context, name string) (Gift, bool, error)

	// HealthCheck verifies catalog connectivity.
	HealthCheck(ctx context.Context) error
}
