package usecases

import (
	"context"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/ribslabs/giftwise/internal/common"
	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/ribslabs/giftwise/internal/telemetry"
)

const (
	// Short keyword phrases produce noisier similarity scores than full
	// descriptions, so the keyword flow uses a lower relevance bar.
	keywordRelevanceThreshold     = 0.3
	descriptionRelevanceThreshold = 0.5

	// The original query always retains half the influence of the blended
	// vector; resolved starred gifts split the remaining half evenly.
	queryVectorWeight = 0.5
)

// GetRecommendations defines the interface for the GetRecommendations use case.
type GetRecommendations interface {
	Execute(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error)
}

// GetRecommendationsImpl is the implementation of the GetRecommendations use case.
type GetRecommendationsImpl struct {
	embedder domain.EmbeddingProvider
	catalog  domain.GiftCatalog
}

// NewGetRecommendationsImpl creates a new instance of GetRecommendationsImpl.
func NewGetRecommendationsImpl(embedder domain.EmbeddingProvider, catalog domain.GiftCatalog) GetRecommendationsImpl {
	return GetRecommendationsImpl{
		embedder: embedder,
		catalog:  catalog,
	}
}

// Execute turns a validated request into a ranked recommendation list with
// query diagnostics. Both request shapes share this pipeline; they differ in
// how the query vector is composed, the relevance threshold, and the search
// headroom.
func (gr GetRecommendationsImpl) Execute(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var (
		queryVector []float64
		excluded    map[uuid.UUID]bool
		boosted     bool
		threshold   float64
		headroom    int
		err         error
	)
	switch req.Mode {
	case domain.RequestMode_Description:
		queryVector, excluded, boosted, err = gr.composeDescriptionQuery(spanCtx, req)
		threshold = descriptionRelevanceThreshold
		// Headroom so the post-exclusion result can still reach the limit.
		headroom = req.Limit + len(excluded)
	default:
		queryVector, err = gr.composeKeywordQuery(spanCtx, req)
		threshold = keywordRelevanceThreshold
		headroom = 2 * req.Limit
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RecommendationResponse{}, err
	}

	candidates, err := gr.catalog.SearchSimilar(spanCtx, queryVector, headroom, threshold)
	if err != nil {
		err = domain.NewUpstreamErr("gift catalog", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.RecommendationResponse{}, err
	}

	totalSearched, err := gr.catalog.TotalCount(spanCtx)
	if err != nil {
		err = domain.NewUpstreamErr("gift catalog", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.RecommendationResponse{}, err
	}

	fallbackUsed := false
	if len(candidates) == 0 {
		fallbackUsed = true
		candidates, err = gr.catalog.GetPopular(spanCtx, req.Limit)
		if err != nil {
			err = domain.NewUpstreamErr("gift catalog", err)
			telemetry.RecordErrorAndStatus(span, err)
			return domain.RecommendationResponse{}, err
		}
	}

	gifts := make([]domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if excluded[c.Gift.ID] {
			continue
		}
		gifts = append(gifts, domain.Recommendation{
			ID:               c.Gift.ID.String(),
			Name:             c.Gift.Name,
			BriefDescription: c.Gift.BriefDescription,
			RelevanceScore:   c.Score,
			PriceRange:       c.Gift.PriceRange,
			Categories:       c.Gift.Categories,
		})
	}

	// Ties keep retrieval order.
	sort.SliceStable(gifts, func(i, j int) bool {
		return gifts[i].RelevanceScore > gifts[j].RelevanceScore
	})
	if len(gifts) > req.Limit {
		gifts = gifts[:req.Limit]
	}

	aboveThreshold := 0
	for _, g := range gifts {
		if g.RelevanceScore >= threshold {
			aboveThreshold++
		}
	}

	RecordRecommendationServed(spanCtx, string(req.Mode), fallbackUsed)

	return domain.RecommendationResponse{
		Gifts: gifts,
		QueryContext: domain.QueryContext{
			TotalSearched:       totalSearched,
			AboveThreshold:      aboveThreshold,
			StarredBoostApplied: boosted,
			FallbackUsed:        fallbackUsed,
		},
	}, nil
}

// composeKeywordQuery embeds the keywords and, when negative keywords are
// present, embeds those too and subtracts them from the query vector. The
// provider is called exactly once without negative keywords, exactly twice
// with them.
func (gr GetRecommendationsImpl) composeKeywordQuery(ctx context.Context, req domain.RecommendationRequest) ([]float64, error) {
	primary, err := gr.embedder.EmbedText(ctx, req.Keywords)
	if err != nil {
		return nil, domain.NewUpstreamErr("embedding provider", err)
	}
	RecordEmbeddingTokens(ctx, primary.TotalTokens)

	if req.NegativeKeywords == "" {
		return primary.Vector, nil
	}

	negative, err := gr.embedder.EmbedText(ctx, req.NegativeKeywords)
	if err != nil {
		return nil, domain.NewUpstreamErr("embedding provider", err)
	}
	RecordEmbeddingTokens(ctx, negative.TotalTokens)

	return common.SubtractVector(primary.Vector, negative.Vector, common.DefaultAvoidanceWeight)
}

// composeDescriptionQuery embeds the recipient description and, when starred
// gifts resolve, blends their embeddings into the query vector. It returns the
// query vector, the resolved starred ids to exclude from the results, and
// whether the starred boost was applied. Unresolvable starred ids are silently
// dropped. The past-gifts signal is accepted but takes no part in the query.
func (gr GetRecommendationsImpl) composeDescriptionQuery(ctx context.Context, req domain.RecommendationRequest) ([]float64, map[uuid.UUID]bool, bool, error) {
	primary, err := gr.embedder.EmbedText(ctx, req.RecipientDescription)
	if err != nil {
		return nil, nil, false, domain.NewUpstreamErr("embedding provider", err)
	}
	RecordEmbeddingTokens(ctx, primary.TotalTokens)
	queryVector := primary.Vector

	starredIDs := parseStarredIDs(req.StarredGiftIDs)
	if len(starredIDs) == 0 {
		return queryVector, nil, false, nil
	}

	starred, err := gr.catalog.GetGifts(ctx, starredIDs)
	if err != nil {
		return nil, nil, false, domain.NewUpstreamErr("gift catalog", err)
	}
	if len(starred) == 0 {
		return queryVector, nil, false, nil
	}

	excluded := make(map[uuid.UUID]bool, len(starred))
	embeddings := make([][]float64, 0, len(starred))
	for _, g := range starred {
		excluded[g.ID] = true
		if len(g.Embedding) > 0 {
			embeddings = append(embeddings, g.Embedding)
		}
	}
	if len(embeddings) > 0 {
		vectors := append([][]float64{queryVector}, embeddings...)
		weights := make([]float64, len(vectors))
		weights[0] = queryVectorWeight
		starredShare := queryVectorWeight / float64(len(embeddings))
		for i := 1; i < len(weights); i++ {
			weights[i] = starredShare
		}
		queryVector, err = common.BlendVectors(vectors, weights)
		if err != nil {
			return nil, nil, false, err
		}
	}

	return queryVector, excluded, true, nil
}

func parseStarredIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// InitGetRecommendations initializes the GetRecommendations use case and
// registers it in the dependency container.
type InitGetRecommendations struct {
	Embedder domain.EmbeddingProvider `resolve:""`
	Catalog  domain.GiftCatalog       `resolve:""`
}

// Initialize initializes the GetRecommendationsImpl use case and registers it in the dependency container.
func (igr InitGetRecommendations) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetRecommendations](NewGetRecommendationsImpl(igr.Embedder, igr.Catalog))
	return ctx, nil
}
