package core

import (
	"time"

	"github.com/farhan/phish-triage/internal/decision"
)

// EmailDocument is the raw inbound request: the full email text and an
// optional caller-supplied sender address. Immutable once received.
type EmailDocument struct {
	Text       string
	SenderHint string
}

// FeatureSummary is the short digest of the strongest signals, returned to
// callers alongside the verdict.
type FeatureSummary struct {
	SuspiciousKeywords int `json:"suspicious_keywords"`
	UrgencyWords       int `json:"urgency_words"`
	URLs               int `json:"urls"`
	Exclamations       int `json:"exclamations"`
}

// ClassificationResult is the complete answer for one email. It is a pure
// function of the input document and the loaded artifact: no timestamps or
// per-request identifiers, so identical inputs produce identical results.
type ClassificationResult struct {
	Verdict             decision.Verdict    `json:"prediction_status"`
	PhishingProbability float64             `json:"phishing_probability"`
	SafeProbability     float64             `json:"safe_probability"`
	Explanation         []string            `json:"explanation"`
	ExtractedSender     string              `json:"extracted_sender"`
	ExtractedDate       string              `json:"extracted_date"`
	Thresholds          decision.Thresholds `json:"thresholds"`
	FeatureSummary      FeatureSummary      `json:"feature_summary"`
	ModelUsed           string              `json:"model_used"`
}

// ModelInfo describes the loaded classifier artifact, exposed through the
// introspection accessor.
type ModelInfo struct {
	ModelType    string `json:"model_type"`
	Version      string `json:"version"`
	CreationDate string `json:"creation_date"`
}

// CacheEntry stores a previously computed probability pair keyed by a hash of
// the request content. Only the probabilities are cached; verdict and
// explanation are regenerated on every request.
type CacheEntry struct {
	ContentHash         string
	SafeProbability     float64
	PhishingProbability float64
	LastSeen            time.Time
	ExpiresAt           time.Time
}
