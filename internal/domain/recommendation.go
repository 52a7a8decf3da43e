package domain

import "fmt"

const (
	// DefaultRecommendationLimit is used when a request does not specify a limit.
	DefaultRecommendationLimit = 5
	// MinRecommendationLimit is the smallest accepted result count.
	MinRecommendationLimit = 3
	// MaxRecommendationLimit is the largest accepted result count.
	MaxRecommendationLimit = 10

	maxSignalListEntries  = 20
	maxPastGiftLength     = 200
	maxKeywordsLength     = 500
	maxDescriptionLength  = 2000
	minFreeTextLength     = 3
	maxNegativeKeywordLen = 500
)

// RequestMode discriminates the two front-end shapes of a recommendation request.
type RequestMode string

const (
	// RequestMode_Keywords is the keyword search shape: keywords plus optional
	// negative keywords.
	RequestMode_Keywords RequestMode = "keywords"
	// RequestMode_Description is the recipient-description shape: free-text
	// description plus optional past gifts and starred gift ids.
	RequestMode_Description RequestMode = "description"
)

// RecommendationRequest is the validated input to the recommendation engine.
// Build it through NewKeywordRequest or NewDescriptionRequest; the two shapes
// share one engine but must not be conflated.
type RecommendationRequest struct {
	Mode RequestMode

	// Keyword mode.
	Keywords         string
	NegativeKeywords string

	// Description mode.
	RecipientDescription string
	PastGifts            []string
	StarredGiftIDs       []string

	Limit int
}

// NewKeywordRequest builds a keyword-mode request.
func NewKeywordRequest(keywords, negativeKeywords string, limit int) (RecommendationRequest, error) {
	if len(keywords) < minFreeTextLength || len(keywords) > maxKeywordsLength {
		return RecommendationRequest{}, NewValidationErr(
			fmt.Sprintf("keywords must be between %d and %d characters", minFreeTextLength, maxKeywordsLength))
	}
	if len(negativeKeywords) > maxNegativeKeywordLen {
		return RecommendationRequest{}, NewValidationErr(
			fmt.Sprintf("negative_keywords must be at most %d characters", maxNegativeKeywordLen))
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return RecommendationRequest{}, err
	}

	return RecommendationRequest{
		Mode:             RequestMode_Keywords,
		Keywords:         keywords,
		NegativeKeywords: negativeKeywords,
		Limit:            limit,
	}, nil
}

// NewDescriptionRequest builds a description-mode request. Oversized signal
// lists are silently truncated, never rejected.
func NewDescriptionRequest(recipientDescription string, pastGifts, starredGiftIDs []string, limit int) (RecommendationRequest, error) {
	if len(recipientDescription) < minFreeTextLength || len(recipientDescription) > maxDescriptionLength {
		return RecommendationRequest{}, NewValidationErr(
			fmt.Sprintf("recipient_description must be between %d and %d characters", minFreeTextLength, maxDescriptionLength))
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return RecommendationRequest{}, err
	}

	if len(pastGifts) > maxSignalListEntries {
		pastGifts = pastGifts[:maxSignalListEntries]
	}
	truncated := make([]string, len(pastGifts))
	for i, pg := range pastGifts {
		if len(pg) > maxPastGiftLength {
			pg = pg[:maxPastGiftLength]
		}
		truncated[i] = pg
	}
	if len(starredGiftIDs) > maxSignalListEntries {
		starredGiftIDs = starredGiftIDs[:maxSignalListEntries]
	}

	return RecommendationRequest{
		Mode:                 RequestMode_Description,
		RecipientDescription: recipientDescription,
		PastGifts:            truncated,
		StarredGiftIDs:       starredGiftIDs,
		Limit:                limit,
	}, nil
}

func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultRecommendationLimit, nil
	}
	if limit < MinRecommendationLimit || limit > MaxRecommendationLimit {
		return 0, NewValidationErr(
			fmt.Sprintf("limit must be between %d and %d", MinRecommendationLimit, MaxRecommendationLimit))
	}
	return limit, nil
}

// Recommendation is a single gift in the recommendation response.
type Recommendation struct {
	ID               string
	Name             string
	BriefDescription string
	RelevanceScore   float64
	PriceRange       PriceRange
	Categories       []string
}

// QueryContext carries diagnostic metadata about one recommendation query.
type QueryContext struct {
	TotalSearched       int
	AboveThreshold      int
	StarredBoostApplied bool
	FallbackUsed        bool
}

// RecommendationResponse is the ordered recommendation list plus diagnostics.
type RecommendationResponse struct {
	Gifts        []Recommendation
	QueryContext QueryContext
}
