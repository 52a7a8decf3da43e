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

func scoredGift(id, name string, score float64) domain.ScoredGift {
	return domain.ScoredGift{
		Gift: domain.Gift{
			ID:               uuid.MustParse(id),
			Name:             name,
			BriefDescription: name + " brief",
			PriceRange:       domain.PriceRange_MODERATE,
			Categories:       []string{"hobby"},
		},
		Score: score,
	}
}

func TestGetRecommendationsImpl_Execute_Keywords(t *testing.T) {
	giftA := scoredGift("11111111-1111-1111-1111-111111111111", "Pour-over kit", 0.9)
	giftB := scoredGift("22222222-2222-2222-2222-222222222222", "Coffee grinder", 0.8)
	giftC := scoredGift("33333333-3333-3333-3333-333333333333", "Bean sampler", 0.7)

	tests := map[string]struct {
		request         func() domain.RecommendationRequest
		setExpectations func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog)
		expectedNames   []string
		expectedCtx     domain.QueryContext
		expectedErr     error
	}{
		"single-embed-call-without-negative-keywords": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("coffee lover", "", 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "coffee lover",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0, 0}, TotalTokens: 3}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0, 0}, 10, 0.3,
				).Return([]domain.ScoredGift{giftA, giftB, giftC}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Pour-over kit", "Coffee grinder", "Bean sampler"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 3,
			},
		},
		"two-embed-calls-with-negative-keywords-subtracted": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("coffee lover", "espresso machine", 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "coffee lover",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 1, 1}, TotalTokens: 3}, nil).Once()
				embedder.EXPECT().EmbedText(
					mock.Anything, "espresso machine",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 1, 1}, TotalTokens: 2}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{0.7, 0.7, 0.7}, 10, 0.3,
				).Return([]domain.ScoredGift{giftA}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Pour-over kit"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 1,
			},
		},
		"empty-search-falls-back-to-popular": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("underwater basket weaving", "", 3)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "underwater basket weaving",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0, 0}}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0, 0}, 6, 0.3,
				).Return(nil, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(100, nil)
				catalog.EXPECT().GetPopular(mock.Anything, 3).Return(
					[]domain.ScoredGift{
						scoredGift("44444444-4444-4444-4444-444444444444", "Gift card", 0.95),
						scoredGift("55555555-5555-5555-5555-555555555555", "Scented candle", 0.2),
					}, nil)
			},
			expectedNames: []string{"Gift card", "Scented candle"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  100,
				AboveThreshold: 1,
				FallbackUsed:   true,
			},
		},
		"stable-sort-preserves-retrieval-order-on-ties": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("hiking", "", 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "hiking",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0, 0}}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0, 0}, 10, 0.3,
				).Return([]domain.ScoredGift{
					scoredGift("11111111-1111-1111-1111-111111111111", "Trekking poles", 0.8),
					scoredGift("22222222-2222-2222-2222-222222222222", "Water filter", 0.9),
					scoredGift("33333333-3333-3333-3333-333333333333", "Trail mix box", 0.8),
					scoredGift("44444444-4444-4444-4444-444444444444", "Headlamp", 0.8),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Water filter", "Trekking poles", "Trail mix box", "Headlamp"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 4,
			},
		},
		"result-list-truncated-to-limit": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("cooking", "", 3)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "cooking",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0, 0}}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0, 0}, 6, 0.3,
				).Return([]domain.ScoredGift{
					scoredGift("11111111-1111-1111-1111-111111111111", "Chef knife", 0.9),
					scoredGift("22222222-2222-2222-2222-222222222222", "Cast iron pan", 0.85),
					scoredGift("33333333-3333-3333-3333-333333333333", "Spice set", 0.8),
					scoredGift("44444444-4444-4444-4444-444444444444", "Apron", 0.75),
					scoredGift("55555555-5555-5555-5555-555555555555", "Cookbook", 0.7),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Chef knife", "Cast iron pan", "Spice set"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 3,
			},
		},
		"embedding-provider-error-propagates-as-upstream": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("coffee", "", 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "coffee",
				).Return(domain.EmbeddingResult{}, errors.New("rate limited")).Once()
			},
			expectedErr: domain.NewUpstreamErr("embedding provider", errors.New("rate limited")),
		},
		"catalog-search-error-propagates-as-upstream": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("coffee", "", 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "coffee",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0, 0}}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0, 0}, 10, 0.3,
				).Return(nil, errors.New("connection reset"))
			},
			expectedErr: domain.NewUpstreamErr("gift catalog", errors.New("connection reset")),
		},
		"total-count-error-propagates-as-upstream": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewKeywordRequest("coffee", "", 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "coffee",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0, 0}}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0, 0}, 10, 0.3,
				).Return([]domain.ScoredGift{giftA}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(0, errors.New("timeout"))
			},
			expectedErr: domain.NewUpstreamErr("gift catalog", errors.New("timeout")),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			embedder := domain.NewMockEmbeddingProvider(t)
			catalog := domain.NewMockGiftCatalog(t)
			tt.setExpectations(embedder, catalog)

			gr := NewGetRecommendationsImpl(embedder, catalog)

			got, gotErr := gr.Execute(context.Background(), tt.request())
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, gotErr)
				return
			}
			assert.NoError(t, gotErr)
			names := make([]string, len(got.Gifts))
			for i, g := range got.Gifts {
				names[i] = g.Name
			}
			assert.Equal(t, tt.expectedNames, names)
			assert.Equal(t, tt.expectedCtx, got.QueryContext)
		})
	}
}

func TestGetRecommendationsImpl_Execute_Description(t *testing.T) {
	starredID1 := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	starredID2 := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")

	starredGift := func(id uuid.UUID, embedding []float64) domain.Gift {
		return domain.Gift{
			ID:        id,
			Name:      "Starred " + id.String()[:8],
			Embedding: embedding,
		}
	}

	tests := map[string]struct {
		request         func() domain.RecommendationRequest
		setExpectations func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog)
		expectedNames   []string
		expectedCtx     domain.QueryContext
	}{
		"plain-description-uses-stricter-threshold": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewDescriptionRequest("My dad who loves woodworking", nil, nil, 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "My dad who loves woodworking",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0}, TotalTokens: 6}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0}, 5, 0.5,
				).Return([]domain.ScoredGift{
					scoredGift("11111111-1111-1111-1111-111111111111", "Chisel set", 0.9),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Chisel set"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 1,
			},
		},
		"past-gifts-are-accepted-but-never-embedded": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewDescriptionRequest(
					"An avid gardener", []string{"seed kit", "watering can"}, nil, 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "An avid gardener",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0}}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0}, 5, 0.5,
				).Return([]domain.ScoredGift{
					scoredGift("11111111-1111-1111-1111-111111111111", "Pruning shears", 0.8),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Pruning shears"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 1,
			},
		},
		"starred-gifts-blend-query-at-half-weight": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewDescriptionRequest(
					"An avid gardener", nil,
					[]string{starredID1.String(), starredID2.String()}, 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "An avid gardener",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0}}, nil).Once()
				catalog.EXPECT().GetGifts(
					mock.Anything, []uuid.UUID{starredID1, starredID2},
				).Return([]domain.Gift{
					starredGift(starredID1, []float64{0, 1}),
					starredGift(starredID2, []float64{0, 1}),
				}, nil)
				// 0.5*query + 0.25*starred1 + 0.25*starred2, headroom limit+2
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{0.5, 0.5}, 7, 0.5,
				).Return([]domain.ScoredGift{
					scoredGift("11111111-1111-1111-1111-111111111111", "Herb planter", 0.85),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Herb planter"},
			expectedCtx: domain.QueryContext{
				TotalSearched:       42,
				AboveThreshold:      1,
				StarredBoostApplied: true,
			},
		},
		"starred-gifts-never-reappear-in-results": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewDescriptionRequest(
					"An avid gardener", nil, []string{starredID1.String()}, 3)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "An avid gardener",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0}}, nil).Once()
				catalog.EXPECT().GetGifts(
					mock.Anything, []uuid.UUID{starredID1},
				).Return([]domain.Gift{starredGift(starredID1, []float64{0, 1})}, nil)
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{0.5, 0.5}, 4, 0.5,
				).Return([]domain.ScoredGift{
					{Gift: domain.Gift{ID: starredID1, Name: "Already starred"}, Score: 0.99},
					scoredGift("11111111-1111-1111-1111-111111111111", "Herb planter", 0.85),
					scoredGift("22222222-2222-2222-2222-222222222222", "Garden gloves", 0.8),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Herb planter", "Garden gloves"},
			expectedCtx: domain.QueryContext{
				TotalSearched:       42,
				AboveThreshold:      2,
				StarredBoostApplied: true,
			},
		},
		"unresolvable-starred-ids-are-dropped-without-boost": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewDescriptionRequest(
					"An avid gardener", nil, []string{starredID1.String()}, 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "An avid gardener",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0}}, nil).Once()
				catalog.EXPECT().GetGifts(
					mock.Anything, []uuid.UUID{starredID1},
				).Return(nil, nil)
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0}, 5, 0.5,
				).Return([]domain.ScoredGift{
					scoredGift("11111111-1111-1111-1111-111111111111", "Herb planter", 0.85),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Herb planter"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 1,
			},
		},
		"malformed-starred-ids-skip-the-catalog-lookup": {
			request: func() domain.RecommendationRequest {
				req, err := domain.NewDescriptionRequest(
					"An avid gardener", nil, []string{"not-a-uuid"}, 5)
				assert.NoError(t, err)
				return req
			},
			setExpectations: func(embedder *domain.MockEmbeddingProvider, catalog *domain.MockGiftCatalog) {
				embedder.EXPECT().EmbedText(
					mock.Anything, "An avid gardener",
				).Return(domain.EmbeddingResult{Vector: []float64{1, 0}}, nil).Once()
				catalog.EXPECT().SearchSimilar(
					mock.Anything, []float64{1, 0}, 5, 0.5,
				).Return([]domain.ScoredGift{
					scoredGift("11111111-1111-1111-1111-111111111111", "Herb planter", 0.85),
				}, nil)
				catalog.EXPECT().TotalCount(mock.Anything).Return(42, nil)
			},
			expectedNames: []string{"Herb planter"},
			expectedCtx: domain.QueryContext{
				TotalSearched:  42,
				AboveThreshold: 1,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			embedder := domain.NewMockEmbeddingProvider(t)
			catalog := domain.NewMockGiftCatalog(t)
			tt.setExpectations(embedder, catalog)

			gr := NewGetRecommendationsImpl(embedder, catalog)

			got, gotErr := gr.Execute(context.Background(), tt.request())
			assert.NoError(t, gotErr)
			names := make([]string, len(got.Gifts))
			for i, g := range got.Gifts {
				names[i] = g.Name
			}
			assert.Equal(t, tt.expectedNames, names)
			assert.Equal(t, tt.expectedCtx, got.QueryContext)
		})
	}
}

func TestInitGetRecommendations_Initialize(t *testing.T) {
	igr := &InitGetRecommendations{
		Embedder: domain.NewMockEmbeddingProvider(t),
		Catalog:  domain.NewMockGiftCatalog(t),
	}

	ctx, err := igr.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}
