package http

import "github.com/ribslabs/giftwise/internal/domain"

func toRecommendationsResp(resp domain.RecommendationResponse) RecommendationsResp {
	out := RecommendationsResp{
		Gifts: make([]RecommendationItem, len(resp.Gifts)),
		QueryContext: QueryContextResp{
			TotalSearched:       resp.QueryContext.TotalSearched,
			AboveThreshold:      resp.QueryContext.AboveThreshold,
			StarredBoostApplied: resp.QueryContext.StarredBoostApplied,
			FallbackUsed:        resp.QueryContext.FallbackUsed,
		},
	}
	for i, g := range resp.Gifts {
		out.Gifts[i] = RecommendationItem{
			ID:               g.ID,
			Name:             g.Name,
			BriefDescription: g.BriefDescription,
			RelevanceScore:   g.RelevanceScore,
			PriceRange:       string(g.PriceRange),
			PriceDisplay:     g.PriceRange.DisplayRange(),
			Categories:       g.Categories,
		}
	}
	return out
}

func toGiftDetailsResp(details domain.GiftDetails) GiftDetailsResp {
	return GiftDetailsResp{
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
}
