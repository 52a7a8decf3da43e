// Package memory provides an in-memory GiftCatalog used as a fixture backend
// for development and tests. Gifts can be seeded from a YAML file.
package memory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/ribslabs/giftwise/internal/common"
	"github.com/ribslabs/giftwise/internal/domain"
	"go.yaml.in/yaml/v3"
)

// GiftCatalog implements domain.GiftCatalog backed by a map. Safe for
// concurrent use.
type GiftCatalog struct {
	mu    sync.RWMutex
	gifts map[uuid.UUID]domain.Gift
	order []uuid.UUID
}

// NewGiftCatalog creates an empty in-memory catalog.
func NewGiftCatalog() *GiftCatalog {
	return &GiftCatalog{
		gifts: make(map[uuid.UUID]domain.Gift),
	}
}

// SearchSimilar scores every gift against the query vector with cosine
// similarity and returns the top matches at or above the threshold.
func (gc *GiftCatalog) SearchSimilar(_ context.Context, embedding []float64, limit int, threshold float64) ([]domain.ScoredGift, error) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	var scored []domain.ScoredGift
	for _, id := range gc.order {
		gift := gc.gifts[id]
		score, ok := common.CosineSimilarity(embedding, gift.Embedding)
		if !ok || score < threshold {
			continue
		}
		scored = append(scored, domain.ScoredGift{Gift: gift, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// GetGift retrieves a gift by its ID.
func (gc *GiftCatalog) GetGift(_ context.Context, id uuid.UUID) (domain.Gift, bool, error) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	gift, found := gc.gifts[id]
	return gift, found, nil
}

// GetGifts retrieves multiple gifts by id. Unknown ids are silently omitted.
func (gc *GiftCatalog) GetGifts(_ context.Context, ids []uuid.UUID) ([]domain.Gift, error) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	var gifts []domain.Gift
	for _, id := range ids {
		if gift, found := gc.gifts[id]; found {
			gifts = append(gifts, gift)
		}
	}
	return gifts, nil
}

// GetPopular returns gifts ordered by popularity score.
func (gc *GiftCatalog) GetPopular(_ context.Context, limit int) ([]domain.ScoredGift, error) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	scored := make([]domain.ScoredGift, 0, len(gc.order))
	for _, id := range gc.order {
		gift := gc.gifts[id]
		scored = append(scored, domain.ScoredGift{Gift: gift, Score: gift.PopularityScore})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// TotalCount returns the number of gifts in the catalog.
func (gc *GiftCatalog) TotalCount(_ context.Context) (int, error) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	return len(gc.order), nil
}

// UpsertGift inserts or updates a gift.
func (gc *GiftCatalog) UpsertGift(_ context.Context, gift domain.Gift) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if _, exists := gc.gifts[gift.ID]; !exists {
		gc.order = append(gc.order, gift.ID)
	}
	gc.gifts[gift.ID] = gift
	return nil
}

// FindGiftByName retrieves a gift by its exact name.
func (gc *GiftCatalog) FindGiftByName(_ context.Context, name string) (domain.Gift, bool, error) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	for _, id := range gc.order {
		if gc.gifts[id].Name == name {
			return gc.gifts[id], true, nil
		}
	}
	return domain.Gift{}, false, nil
}

// HealthCheck always succeeds.
func (gc *GiftCatalog) HealthCheck(_ context.Context) error {
	return nil
}

// seedGift is the YAML shape of one seeded gift.
type seedGift struct {
	ID                     string    `yaml:"id"`
	Name                   string    `yaml:"name"`
	BriefDescription       string    `yaml:"brief_description"`
	FullDescription        string    `yaml:"full_description"`
	PriceRange             string    `yaml:"price_range"`
	Categories             []string  `yaml:"categories"`
	Occasions              []string  `yaml:"occasions"`
	RecipientTypes         []string  `yaml:"recipient_types"`
	Embedding              []float64 `yaml:"embedding"`
	PopularityScore        float64   `yaml:"popularity_score"`
	PurchaseURL            string    `yaml:"purchase_url"`
	HasAffiliateCommission bool      `yaml:"has_affiliate_commission"`
}

// LoadSeed loads gifts from a YAML file into the catalog.
func (gc *GiftCatalog) LoadSeed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seeds []seedGift
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for i, s := range seeds {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return fmt.Errorf("seed entry %d: invalid id %q: %w", i, s.ID, err)
		}
		if err := gc.UpsertGift(context.Background(), domain.Gift{
			ID:                     id,
			Name:                   s.Name,
			BriefDescription:       s.BriefDescription,
			FullDescription:        s.FullDescription,
			PriceRange:             domain.PriceRange(s.PriceRange),
			Categories:             s.Categories,
			Occasions:              s.Occasions,
			RecipientTypes:         s.RecipientTypes,
			Embedding:              s.Embedding,
			PopularityScore:        s.PopularityScore,
			PurchaseURL:            s.PurchaseURL,
			HasAffiliateCommission: s.HasAffiliateCommission,
		}); err != nil {
			return err
		}
	}
	return nil
}

// InitGiftCatalog registers the in-memory catalog in the dependency
// container, optionally seeded from a YAML file.
type InitGiftCatalog struct {
	SeedPath string `config:"CATALOG_SEED_PATH" default:"-"`
}

func (igc InitGiftCatalog) Initialize(ctx context.Context) (context.Context, error) {
	catalog := NewGiftCatalog()
	if igc.SeedPath != "-" {
		if err := catalog.LoadSeed(igc.SeedPath); err != nil {
			return ctx, err
		}
	}
	depend.Register[domain.GiftCatalog](catalog)
	return ctx, nil
}
