package http

import "net/http"

// GetGift handles gift detail lookups.
func (api GiftwiseServer) GetGift(w http.ResponseWriter, r *http.Request) {
	details, err := api.GetGiftDetailsUseCase.Query(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toGiftDetailsResp(details))
}
