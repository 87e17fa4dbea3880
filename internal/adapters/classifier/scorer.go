package classifier

import (
	"fmt"
	"math"
	"sync"

	"github.com/farhan/phish-triage/internal/core"
)

// LogisticScorer scores an assembled vector with the artifact's logistic
// regression weights. Stateless, safe for concurrent use.
type LogisticScorer struct {
	weights []float64
	bias    float64
}

// NewLogisticScorer builds a scorer from trained weights and bias.
func NewLogisticScorer(weights []float64, bias float64) *LogisticScorer {
	return &LogisticScorer{weights: weights, bias: bias}
}

// Score returns the (safe, phishing) probability pair for the vector.
// A vector of the wrong width is a contract violation, not a zero result.
func (s *LogisticScorer) Score(vector []float64) (float64, float64, error) {
	if len(vector) != len(s.weights) {
		return 0, 0, fmt.Errorf("vector has %d elements, model expects %d", len(vector), len(s.weights))
	}

	z := s.bias
	for i, x := range vector {
		z += s.weights[i] * x
	}

	probPhishing := 1 / (1 + math.Exp(-z))
	return 1 - probPhishing, probPhishing, nil
}

// SerializedScorer wraps a scorer that is not safe for concurrent invocation,
// allowing one inference at a time. LogisticScorer does not need it; it exists
// for artifact backends that keep mutable inference state.
type SerializedScorer struct {
	mu    sync.Mutex
	inner core.Scorer
}

// Serialize wraps the scorer in a mutex.
func Serialize(inner core.Scorer) *SerializedScorer {
	return &SerializedScorer{inner: inner}
}

func (s *SerializedScorer) Score(vector []float64) (float64, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Score(vector)
}
