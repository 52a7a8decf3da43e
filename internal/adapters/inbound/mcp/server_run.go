package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ribslabs/giftwise/internal/telemetry"
	"github.com/ribslabs/giftwise/internal/usecases"
)

// GiftwiseMCPServer exposes the recommendation engine as MCP tools over the
// streamable HTTP transport, so LLM agents can call it directly.
type GiftwiseMCPServer struct {
	Logger                    *log.Logger                 `resolve:""`
	GetRecommendationsUseCase usecases.GetRecommendations `resolve:""`
	GetGiftDetailsUseCase     usecases.GetGiftDetails     `resolve:""`
	Port                      int                         `config:"MCP_PORT" default:"8081"`
}

// Run starts the MCP server.
func (s *GiftwiseMCPServer) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "giftwise",
		Version: "0.1.0",
	}, nil)
	s.registerTools(server)

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", telemetry.HttpHandler(handler, "giftwise-mcp"))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	svr := &http.Server{
		Handler: mux,
		Addr:    fmt.Sprintf(":%d", s.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("GiftwiseMCPServer: Listening on port %d", s.Port)
		errCh <- svr.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Logger.Print("GiftwiseMCPServer: Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svr.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the GiftwiseMCPServer is accepting connections.
func (s *GiftwiseMCPServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", s.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
