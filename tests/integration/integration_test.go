//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/openai"
	"github.com/ribslabs/giftwise/internal/app"
	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/stretchr/testify/require"
)

const embeddingDimensions = 1536

var seededGiftID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

func TestMain(m *testing.M) {
	embeddings := httptest.NewServer(http.HandlerFunc(serveEmbeddings))
	defer embeddings.Close()

	giftwiseApp := app.NewGiftwiseApp(
		&initEnvVars{
			envVars: map[string]string{
				"DB_USER":         "giftwise",
				"DB_PASS":         "giftwise",
				"DB_HOST":         "localhost",
				"DB_PORT":         "5432",
				"DB_NAME":         "giftwisedb",
				"OPENAI_BASE_URL": embeddings.URL,
				"OPENAI_API_KEY":  "test-key",
			},
		},
		&InitDockerCompose{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := giftwiseApp.RunAsync(cancelCtx)

	err := giftwiseApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("Giftwise app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("Giftwise app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("Giftwise app shutdown with error: %v", err)
		} else {
			log.Printf("Giftwise app shut down gracefully")
		}
	}

	os.Exit(code)
}

// serveEmbeddings emulates the OpenAI embeddings endpoint with a constant unit
// vector, so any query matches any seeded gift with similarity 1.
func serveEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req openai.EmbeddingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	count := 1
	if inputs, ok := req.Input.([]any); ok {
		count = len(inputs)
	}

	resp := openai.EmbeddingsResponse{
		Model:  req.Model,
		Object: "list",
		Usage:  openai.EmbeddingsUsage{PromptTokens: count, TotalTokens: count},
	}
	for i := 0; i < count; i++ {
		resp.Data = append(resp.Data, openai.EmbeddingData{
			Embedding: unitVector(),
			Index:     i,
			Object:    "embedding",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func unitVector() []float64 {
	v := make([]float64, embeddingDimensions)
	v[0] = 1
	return v
}

func seedCatalog(t *testing.T) {
	t.Helper()

	catalog, err := depend.Resolve[domain.GiftCatalog]()
	require.NoError(t, err, "failed to resolve gift catalog")

	err = catalog.UpsertGift(context.Background(), domain.Gift{
		ID:               seededGiftID,
		Name:             "Pour-over kit",
		BriefDescription: "Ceramic pour-over brewer",
		FullDescription:  "A ceramic pour-over brewer with a matching carafe.",
		PriceRange:       domain.PriceRange_MODERATE,
		Categories:       []string{"coffee"},
		Embedding:        unitVector(),
		PopularityScore:  0.9,
		PurchaseURL:      "https://example.com/pour-over",
	})
	require.NoError(t, err, "failed to seed gift catalog")
}

func TestGiftwise_RestAPI(t *testing.T) {
	seedCatalog(t)

	t.Run("keyword-recommendations", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"keywords": "coffee lover",
		})
		resp, err := http.Post("http://localhost:8080/v1/recommendations/keywords",
			"application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Gifts []struct {
				ID             string  `json:"id"`
				Name           string  `json:"name"`
				RelevanceScore float64 `json:"relevance_score"`
			} `json:"gifts"`
			QueryContext struct {
				TotalSearched  int  `json:"total_searched"`
				AboveThreshold int  `json:"above_threshold"`
				FallbackUsed   bool `json:"fallback_used"`
			} `json:"query_context"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Len(t, out.Gifts, 1)
		require.Equal(t, "Pour-over kit", out.Gifts[0].Name)
		require.InDelta(t, 1.0, out.Gifts[0].RelevanceScore, 1e-6)
		require.Equal(t, 1, out.QueryContext.AboveThreshold)
		require.False(t, out.QueryContext.FallbackUsed)
	})

	t.Run("description-recommendations", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{
			"recipient_description": "My dad who loves coffee",
			"past_gifts":            []string{"mug"},
		})
		resp, err := http.Post("http://localhost:8080/v1/recommendations",
			"application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("gift-details", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("http://localhost:8080/v1/gifts/%s", seededGiftID))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Name        string `json:"name"`
			PurchaseURL string `json:"purchase_url"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, "Pour-over kit", out.Name)
		require.Equal(t, "https://example.com/pour-over", out.PurchaseURL)
	})

	t.Run("gift-details-not-found", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("http://localhost:8080/v1/gifts/%s", uuid.New()))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGiftwise_MCP(t *testing.T) {
	seedCatalog(t)

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "giftwise-test", Version: "0.1.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8081/mcp",
	}, nil)
	require.NoError(t, err, "failed to connect to MCP server")
	defer session.Close() //nolint:errcheck

	t.Run("get-recommendations", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "get_recommendations",
			Arguments: map[string]any{
				"recipient_description": "My dad who loves coffee",
			},
		})
		require.NoError(t, err)
		require.False(t, res.IsError)
		require.NotEmpty(t, res.Content)
	})

	t.Run("get-gift-details", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "get_gift_details",
			Arguments: map[string]any{
				"gift_id": seededGiftID.String(),
			},
		})
		require.NoError(t, err)
		require.False(t, res.IsError)
	})

	t.Run("validation-error-is-in-band", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "get_recommendations",
			Arguments: map[string]any{
				"recipient_description": "ab",
			},
		})
		require.NoError(t, err)
		require.True(t, res.IsError)
	})
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
