package http

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// DescriptionRequest is the body of POST /v1/recommendations.
type DescriptionRequest struct {
	RecipientDescription string   `json:"recipient_description" validate:"required"`
	PastGifts            []string `json:"past_gifts"`
	StarredGiftIDs       []string `json:"starred_gift_ids"`
	Limit                int      `json:"limit" validate:"omitempty,min=3,max=10"`
}

// KeywordRequest is the body of POST /v1/recommendations/keywords.
type KeywordRequest struct {
	Keywords         string `json:"keywords" validate:"required"`
	NegativeKeywords string `json:"negative_keywords"`
	Limit            int    `json:"limit" validate:"omitempty,min=3,max=10"`
}

// RecommendationItem is one recommended gift in a response.
type RecommendationItem struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BriefDescription string   `json:"brief_description"`
	RelevanceScore   float64  `json:"relevance_score"`
	PriceRange       string   `json:"price_range"`
	PriceDisplay     string   `json:"price_display"`
	Categories       []string `json:"categories"`
}

// QueryContextResp carries the query diagnostics of a recommendation response.
type QueryContextResp struct {
	TotalSearched       int  `json:"total_searched"`
	AboveThreshold      int  `json:"above_threshold"`
	StarredBoostApplied bool `json:"starred_boost_applied"`
	FallbackUsed        bool `json:"fallback_used"`
}

// RecommendationsResp is the response of both recommendation endpoints.
type RecommendationsResp struct {
	Gifts        []RecommendationItem `json:"gifts"`
	QueryContext QueryContextResp     `json:"query_context"`
}

// GiftDetailsResp is the response of GET /v1/gifts/{id}.
type GiftDetailsResp struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BriefDescription string   `json:"brief_description"`
	FullDescription  string   `json:"full_description"`
	PriceRange       string   `json:"price_range"`
	PriceDisplay     string   `json:"price_display"`
	Categories       []string `json:"categories"`
	Occasions        []string `json:"occasions"`
	RecipientTypes   []string `json:"recipient_types"`
	PurchaseURL      string   `json:"purchase_url,omitempty"`
}

// HealthResp is the response of GET /healthz.
type HealthResp struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// ErrorResp is the error envelope for all endpoints.
type ErrorResp struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes one error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	errCodeBadRequest = "BAD_REQUEST"
	errCodeNotFound   = "NOT_FOUND"
	errCodeUpstream   = "UPSTREAM_FAILURE"
	errCodeInternal   = "INTERNAL"
)
