package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/ribslabs/giftwise/internal/telemetry"
)

// EmbeddingProvider adapts APIClient to the domain.EmbeddingProvider interface.
type EmbeddingProvider struct {
	client     APIClient
	model      string
	dimensions int
}

// NewEmbeddingProviderAdapter creates a new adapter
func NewEmbeddingProviderAdapter(client APIClient, model string, dimensions int) EmbeddingProvider {
	return EmbeddingProvider{
		client:     client,
		model:      model,
		dimensions: dimensions,
	}
}

// EmbedText implements domain.EmbeddingProvider.EmbedText
func (p EmbeddingProvider) EmbedText(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := p.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model:      p.model,
		Input:      text,
		Dimensions: p.dimensions,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingResult{}, err
	}
	if len(resp.Data) == 0 {
		err := errors.New("no embedding in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingResult{}, err
	}

	return domain.EmbeddingResult{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// EmbedTexts implements domain.EmbeddingProvider.EmbedTexts. Results are
// aligned to input order even when the API returns them out of order.
func (p EmbeddingProvider) EmbedTexts(ctx context.Context, texts []string) ([]domain.EmbeddingResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := p.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model:      p.model,
		Input:      texts,
		Dimensions: p.dimensions,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		err := fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	data := make([]EmbeddingData, len(resp.Data))
	copy(data, resp.Data)
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	results := make([]domain.EmbeddingResult, len(data))
	for i, d := range data {
		results[i] = domain.EmbeddingResult{Vector: d.Embedding}
	}
	// Usage is reported per request; attribute it to the first result.
	results[0].TotalTokens = resp.Usage.TotalTokens

	return results, nil
}

// Dimensions implements domain.EmbeddingProvider.Dimensions
func (p EmbeddingProvider) Dimensions() int {
	return p.dimensions
}

// HealthCheck implements domain.EmbeddingProvider.HealthCheck
func (p EmbeddingProvider) HealthCheck(ctx context.Context) error {
	_, err := p.EmbedText(ctx, "ping")
	return err
}

// InitEmbeddingProvider initializes the EmbeddingProvider dependency
type InitEmbeddingProvider struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	ApiKey     string       `config:"OPENAI_API_KEY"`
	Model      string       `config:"EMBEDDING_MODEL" default:"text-embedding-3-small"`
	Dimensions int          `config:"EMBEDDING_DIMENSIONS" default:"1536"`
}

// Initialize registers the EmbeddingProvider
func (i InitEmbeddingProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EmbeddingProvider](NewEmbeddingProviderAdapter(
		NewAPIClient(i.BaseURL, i.ApiKey, i.HttpClient),
		i.Model,
		i.Dimensions,
	))
	return ctx, nil
}
