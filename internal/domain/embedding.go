package domain

import "context"

// EmbeddingResult is a semantic vector plus token accounting.
type EmbeddingResult struct {
	Vector      []float64
	TotalTokens int
}

// EmbeddingProvider defines text vectorization behavior in domain terms.
type EmbeddingProvider interface {
	// EmbedText generates a semantic vector for one text.
	EmbedText(ctx context.Context, text string) (EmbeddingResult, error)

	// EmbedTexts generates semantic vectors for multiple texts. Results are
	// aligned to input order even if the underlying provider reorders them.
	EmbedTexts(ctx context.Context, texts []string) ([]EmbeddingResult, error)

	// Dimensions returns the dimensionality of the vectors this provider produces.
	Dimensions() int

	// HealthCheck verifies provider connectivity.
	HealthCheck(ctx context.Context) error
}
