// Package decision maps a phishing probability onto the three-way verdict.
// The thresholds are configuration, not code, so the policy can be tested and
// tuned without touching the pipeline.
package decision

import "fmt"

// Verdict is the terminal classification of one email.
type Verdict string

const (
	VerdictPhishing   Verdict = "phishing"
	VerdictSuspicious Verdict = "suspicious"
	VerdictSafe       Verdict = "safe"
)

// Thresholds carries the two probability cut-offs. Phishing wins at or above
// the upper threshold, safe wins strictly below the lower one, everything in
// between is suspicious.
type Thresholds struct {
	Phishing float64 `json:"phishing_threshold"`
	Safe     float64 `json:"safe_threshold"`
}

// Engine is a stateless classifier of a single probability value.
type Engine struct {
	thresholds Thresholds
}

// NewEngine validates the thresholds and returns an engine. Serving with a
// broken decision policy is worse than refusing to start, so violations are
// errors rather than defaults.
func NewEngine(t Thresholds) (*Engine, error) {
	if t.Safe <= 0 || t.Phishing > 1 || t.Safe >= t.Phishing {
		return nil, fmt.Errorf("invalid decision thresholds: safe=%v phishing=%v (need 0 < safe < phishing <= 1)", t.Safe, t.Phishing)
	}
	return &Engine{thresholds: t}, nil
}

// Decide classifies the phishing-class probability. Boundary values belong to
// the branch whose comparison they satisfy: exactly Phishing is phishing,
// exactly Safe is suspicious.
func (e *Engine) Decide(probPhishing float64) Verdict {
	switch {
	case probPhishing >= e.thresholds.Phishing:
		return VerdictPhishing
	case probPhishing < e.thresholds.Safe:
		return VerdictSafe
	default:
		return VerdictSuspicious
	}
}

// Thresholds returns the engine's configured cut-offs.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}
