package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/toon-format/toon-go"
)

type recommendationsInput struct {
	RecipientDescription string   `json:"recipient_description" jsonschema:"Description of the gift recipient (3-2000 chars)"`
	PastGifts            []string `json:"past_gifts,omitempty" jsonschema:"Previously given gifts, to avoid repeating them"`
	StarredGiftIDs       []string `json:"starred_gift_ids,omitempty" jsonschema:"IDs of starred gifts from a previous result, used to refine the search"`
	Limit                int      `json:"limit,omitempty" jsonschema:"Number of recommendations to return (3-10, default 5)"`
}

type keywordRecommendationsInput struct {
	Keywords         string `json:"keywords" jsonschema:"Search keywords describing the gift to find (3-500 chars)"`
	NegativeKeywords string `json:"negative_keywords,omitempty" jsonschema:"Keywords describing what to avoid in results"`
	Limit            int    `json:"limit,omitempty" jsonschema:"Number of recommendations to return (3-10, default 5)"`
}

type giftDetailsInput struct {
	GiftID string `json:"gift_id" jsonschema:"The unique ID of the gift to get details for"`
}

type recommendationItem struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BriefDescription string   `json:"brief_description"`
	RelevanceScore   float64  `json:"relevance_score"`
	PriceRange       string   `json:"price_range"`
	Categories       []string `json:"categories"`
}

type queryContextOutput struct {
	TotalSearched       int  `json:"total_searched"`
	AboveThreshold      int  `json:"above_threshold"`
	StarredBoostApplied bool `json:"starred_boost_applied"`
	FallbackUsed        bool `json:"fallback_used"`
}

type recommendationsOutput struct {
	Gifts        []recommendationItem `json:"gifts"`
	QueryContext queryContextOutput   `json:"query_context"`
}

type giftDetailsOutput struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BriefDescription string   `json:"brief_description"`
	FullDescription  string   `json:"full_description"`
	PriceRange       string   `json:"price_range"`
	PriceDisplay     string   `json:"price_display"`
	Categories       []string `json:"categories"`
	Occasions        []string `json:"occasions,omitempty"`
	RecipientTypes   []string `json:"recipient_types,omitempty"`
	PurchaseURL      string   `json:"purchase_url,omitempty"`
}

func (s *GiftwiseMCPServer) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "get_recommendations",
		Description: "Get personalized gift recommendations based on a recipient description. " +
			"Analyzes the description and returns relevant gift suggestions using semantic " +
			"similarity search. Optionally refine results by starring gifts from previous results.",
	}, s.getRecommendations)

	mcp.AddTool(server, &mcp.Tool{
		Name: "get_recommendations_by_keywords",
		Description: "Get gift recommendations matching search keywords. Supports negative " +
			"keywords to steer results away from unwanted themes.",
	}, s.getRecommendationsByKeywords)

	mcp.AddTool(server, &mcp.Tool{
		Name: "get_gift_details",
		Description: "Get detailed information about a specific gift. Returns the full " +
			"description, occasions, recipient types, and purchase link.",
	}, s.getGiftDetails)
}

func (s *GiftwiseMCPServer) getRecommendations(ctx context.Context, _ *mcp.CallToolRequest, in recommendationsInput) (*mcp.CallToolResult, recommendationsOutput, error) {
	req, err := domain.NewDescriptionRequest(in.RecipientDescription, in.PastGifts, in.StarredGiftIDs, in.Limit)
	if err != nil {
		return nil, recommendationsOutput{}, err
	}

	resp, err := s.GetRecommendationsUseCase.Execute(ctx, req)
	if err != nil {
		return nil, recommendationsOutput{}, err
	}

	return buildRecommendationsResult(resp)
}

func (s *GiftwiseMCPServer) getRecommendationsByKeywords(ctx context.Context, _ *mcp.CallToolRequest, in keywordRecommendationsInput) (*mcp.CallToolResult, recommendationsOutput, error) {
	req, err := domain.NewKeywordRequest(in.Keywords, in.NegativeKeywords, in.Limit)
	if err != nil {
		return nil, recommendationsOutput{}, err
	}

	resp, err := s.GetRecommendationsUseCase.Execute(ctx, req)
	if err != nil {
		return nil, recommendationsOutput{}, err
	}

	return buildRecommendationsResult(resp)
}

func (s *GiftwiseMCPServer) getGiftDetails(ctx context.Context, _ *mcp.CallToolRequest, in giftDetailsInput) (*mcp.CallToolResult, giftDetailsOutput, error) {
	details, err := s.GetGiftDetailsUseCase.Query(ctx, in.GiftID)
	if err != nil {
		return nil, giftDetailsOutput{}, err
	}

	out := giftDetailsOutput{
		ID:               details.ID,
		Name:             details.Name,
		BriefDescription: details.BriefDescription,
		FullDescription:  details.FullDescription,
		PriceRange:       string(details.PriceRange),
		PriceDisplay:     details.PriceRange.DisplayRange(),
		Categories:       details.Categories,
		Occasions:        details.Occasions,
		RecipientTypes:   details.RecipientTypes,
		PurchaseURL:      details.PurchaseURL,
	}

	text, err := toon.MarshalString(out, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, giftDetailsOutput{}, fmt.Errorf("failed to marshal gift details: %w", err)
	}

	return textResult(text), out, nil
}

func buildRecommendationsResult(resp domain.RecommendationResponse) (*mcp.CallToolResult, recommendationsOutput, error) {
	out := recommendationsOutput{
		Gifts: make([]recommendationItem, len(resp.Gifts)),
		QueryContext: queryContextOutput{
			TotalSearched:       resp.QueryContext.TotalSearched,
			AboveThreshold:      resp.QueryContext.AboveThreshold,
			StarredBoostApplied: resp.QueryContext.StarredBoostApplied,
			FallbackUsed:        resp.QueryContext.FallbackUsed,
		},
	}
	for i, g := range resp.Gifts {
		out.Gifts[i] = recommendationItem{
			ID:               g.ID,
			Name:             g.Name,
			BriefDescription: g.BriefDescription,
			RelevanceScore:   g.RelevanceScore,
			PriceRange:       string(g.PriceRange),
			Categories:       g.Categories,
		}
	}

	if len(out.Gifts) == 0 {
		return textResult("No gift recommendations found matching the request."), out, nil
	}

	text, err := toon.MarshalString(out, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, recommendationsOutput{}, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	return textResult(text), out, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
