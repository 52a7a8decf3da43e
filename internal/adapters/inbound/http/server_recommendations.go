package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ribslabs/giftwise/internal/domain"
)

// PostRecommendations handles description-mode recommendation requests.
func (api GiftwiseServer) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	var req DescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request: %v", err)))
		return
	}

	domainReq, err := domain.NewDescriptionRequest(req.RecipientDescription, req.PastGifts, req.StarredGiftIDs, req.Limit)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp, err := api.GetRecommendationsUseCase.Execute(r.Context(), domainReq)
	if err != nil {
		api.Logger.Printf("Error getting recommendations: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendationsResp(resp))
}

// PostKeywordRecommendations handles keyword-mode recommendation requests.
func (api GiftwiseServer) PostKeywordRecommendations(w http.ResponseWriter, r *http.Request) {
	var req KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request: %v", err)))
		return
	}

	domainReq, err := domain.NewKeywordRequest(req.Keywords, req.NegativeKeywords, req.Limit)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp, err := api.GetRecommendationsUseCase.Execute(r.Context(), domainReq)
	if err != nil {
		api.Logger.Printf("Error getting keyword recommendations: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendationsResp(resp))
}
