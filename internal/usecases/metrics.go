package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	RecommendationsServed metric.Int64Counter
	EmbeddingTokensUsed   metric.Int64Counter
)

func init() {
	var err error
	RecommendationsServed, err = meter.Int64Counter(
		"recommendations_served_total",
		metric.WithDescription("Total recommendation responses served"),
	)
	if err != nil {
		panic(err)
	}

	// Tokens consumed by the embedding provider
	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total embedding tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordRecommendationServed records one served recommendation response.
func RecordRecommendationServed(ctx context.Context, mode string, fallbackUsed bool) {
	RecommendationsServed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("fallback_used", fallbackUsed),
	))
}

// RecordEmbeddingTokens records the number of tokens used in an embedding operation.
func RecordEmbeddingTokens(ctx context.Context, totalTokens int) {
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens))
}
