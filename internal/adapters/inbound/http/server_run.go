package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/ribslabs/giftwise/internal/telemetry"
	"github.com/ribslabs/giftwise/internal/usecases"
	"github.com/rs/cors"
)

// GiftwiseServer is the REST API HTTP server for the recommendation engine.
type GiftwiseServer struct {
	Port                      int                        `config:"HTTP_PORT" default:"8080"`
	Logger                    *log.Logger                `resolve:""`
	GetRecommendationsUseCase usecases.GetRecommendations `resolve:""`
	GetGiftDetailsUseCase     usecases.GetGiftDetails    `resolve:""`
	Catalog                   domain.GiftCatalog         `resolve:""`
	Embedder                  domain.EmbeddingProvider   `resolve:""`
}

// Run starts the HTTP server.
func (api GiftwiseServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/recommendations", api.PostRecommendations)
	mux.HandleFunc("POST /v1/recommendations/keywords", api.PostKeywordRecommendations)
	mux.HandleFunc("GET /v1/gifts/{id}", api.GetGift)
	mux.HandleFunc("GET /healthz", api.GetHealth)

	// Introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	var h http.Handler = telemetry.Middleware("giftwise-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GiftwiseServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GiftwiseServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GiftwiseServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the GiftwiseServer is ready by performing a health check.
func (api GiftwiseServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
