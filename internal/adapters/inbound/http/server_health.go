package http

import "net/http"

// GetHealth reports the health of the catalog and the embedding provider.
func (api GiftwiseServer) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResp{
		Status:     "ok",
		Components: map[string]string{},
	}
	statusCode := http.StatusOK

	if err := api.Catalog.HealthCheck(r.Context()); err != nil {
		resp.Components["gift_catalog"] = err.Error()
		resp.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		resp.Components["gift_catalog"] = "ok"
	}

	if err := api.Embedder.HealthCheck(r.Context()); err != nil {
		resp.Components["embedding_provider"] = err.Error()
		resp.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		resp.Components["embedding_provider"] = "ok"
	}

	respondJSON(w, statusCode, resp)
}
