package common

import (
	"errors"
	"fmt"
	"math"
)

// DefaultAvoidanceWeight is the weight applied when steering a query vector
// away from a negative-signal vector and no explicit weight is configured.
const DefaultAvoidanceWeight = 0.3

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was successful.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// BlendVectors combines equal-length vectors into one, weighting each vector's
// contribution: result[i] = sum(vectors[k][i] * weights[k]).
//
// A single vector is returned as-is, untouched by any arithmetic. When weights
// is nil every vector contributes 1/N. Weights are not required to sum to 1;
// normalization semantics belong to the caller.
func BlendVectors(vectors [][]float64, weights []float64) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, errors.New("blend requires at least one vector")
	}
	if len(vectors) == 1 {
		return vectors[0], nil
	}
	if weights != nil && len(weights) != len(vectors) {
		return nil, fmt.Errorf("blend weight count %d does not match vector count %d", len(weights), len(vectors))
	}

	dimension := len(vectors[0])
	if weights == nil {
		weights = make([]float64, len(vectors))
		for i := range weights {
			weights[i] = 1.0 / float64(len(vectors))
		}
	}

	blended := make([]float64, dimension)
	for k, vector := range vectors {
		if len(vector) != dimension {
			return nil, fmt.Errorf("blend vector %d has dimension %d, expected %d", k, len(vector), dimension)
		}
		for i := range vector {
			blended[i] += vector[i] * weights[k]
		}
	}

	return blended, nil
}

// SubtractVector steers the positive vector away from the negative one:
// result[i] = positive[i] - negative[i] * weight.
//
// A weight of 0 returns positive unchanged, with no per-element arithmetic.
// Components may leave any normalized range; no clamping is applied.
func SubtractVector(positive, negative []float64, weight float64) ([]float64, error) {
	if len(positive) != len(negative) {
		return nil, fmt.Errorf("subtract dimension mismatch: positive %d, negative %d", len(positive), len(negative))
	}
	if weight == 0 {
		return positive, nil
	}

	result := make([]float64, len(positive))
	for i := range positive {
		result[i] = positive[i] - negative[i]*weight
	}

	return result, nil
}
