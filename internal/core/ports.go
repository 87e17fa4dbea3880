package core

import "context"

// TextVectorizer maps normalized text onto a fixed-width numeric vector.
// Implementations must be safe for concurrent use and must never fail:
// text with no known tokens vectorizes to zeros.
type TextVectorizer interface {
	Vectorize(normalizedText string) []float64

	// Dimensions is the width of every vector Vectorize returns, fixed at
	// artifact load time.
	Dimensions() int
}

// Scorer is the trained classifier boundary. Score consumes the assembled
// vector (text vector followed by the schema-ordered numeric features) and
// returns the two class probabilities, which sum to 1.
type Scorer interface {
	Score(vector []float64) (probSafe, probPhishing float64, err error)
}

// Artifact is the process-wide, read-only handle to the loaded model:
// scorer, vectorizer, declared numeric schema and descriptive metadata.
// Loaded once at startup and never mutated afterwards.
type Artifact interface {
	Schema() []string
	Vectorizer() TextVectorizer
	Scorer() Scorer
	Info() ModelInfo
}

// CacheRepository stores probability pairs for previously seen requests.
type CacheRepository interface {
	// Get retrieves the entry for a content hash, or an error when absent
	// or expired.
	Get(ctx context.Context, contentHash string) (*CacheEntry, error)

	// Set stores an entry.
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes an entry.
	Delete(ctx context.Context, contentHash string) error

	// Cleanup removes expired entries.
	Cleanup(ctx context.Context) error
}
