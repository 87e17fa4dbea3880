package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farhan/phish-triage/internal/decision"
	"github.com/farhan/phish-triage/internal/explain"
	"github.com/farhan/phish-triage/internal/features"
	"github.com/farhan/phish-triage/internal/textnorm"
	"github.com/farhan/phish-triage/internal/trust"
	"github.com/farhan/phish-triage/internal/utils"
)

// probabilitySumTolerance bounds how far the scorer's two probabilities may
// drift from summing to one before the result is treated as malformed.
const probabilitySumTolerance = 1e-6

// TriageService runs the full pipeline for one email: normalization, feature
// extraction, aggregation, scoring, decision and explanation. The service is
// stateless per request; the artifact is shared read-only state.
type TriageService struct {
	artifact      Artifact
	registry      *features.Registry
	engine        *decision.Engine
	cache         CacheRepository
	trusted       *trust.Checker
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	cacheEnabled  bool
	cacheTTL      time.Duration
	maxTextSize   int
}

// NewTriageService creates the pipeline service around a loaded artifact.
func NewTriageService(
	artifact Artifact,
	registry *features.Registry,
	engine *decision.Engine,
	cache CacheRepository,
	trusted *trust.Checker,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	maxTextSize int,
) *TriageService {
	return &TriageService{
		artifact:      artifact,
		registry:      registry,
		engine:        engine,
		cache:         cache,
		trusted:       trusted,
		textProcessor: textProcessor,
		logger:        logger,
		cacheEnabled:  cacheEnabled,
		cacheTTL:      cacheTTL,
		maxTextSize:   maxTextSize,
	}
}

// ModelInfo exposes the loaded artifact's metadata.
func (s *TriageService) ModelInfo() ModelInfo {
	return s.artifact.Info()
}

// Thresholds exposes the decision engine's configured cut-offs.
func (s *TriageService) Thresholds() decision.Thresholds {
	return s.engine.Thresholds()
}

// Classify runs the pipeline on one email document.
//
// The sender used for analysis is the caller's hint when given, otherwise the
// address extracted from the text. ExtractedSender in the result always
// reports what was found in the text.
func (s *TriageService) Classify(ctx context.Context, doc EmailDocument) (*ClassificationResult, error) {
	if doc.Text == "" {
		return nil, ErrEmptyEmail
	}

	requestID := uuid.NewString()
	text := s.textProcessor.ProcessText(doc.Text, s.maxTextSize)

	norm := textnorm.Normalize(text)
	sender := doc.SenderHint
	if sender == "" {
		sender = norm.Sender
	}

	if s.trusted.IsTrusted(sender) {
		s.logger.Info("Skipping classification for trusted sender domain",
			zap.String("request_id", requestID),
			zap.String("sender", sender))
		return s.trustedResult(norm), nil
	}

	in := features.NewInput(text, sender)
	feats, collisions := s.registry.Extract(in)
	if len(collisions) > 0 {
		s.logger.Debug("Extractor key collisions",
			zap.String("request_id", requestID),
			zap.Strings("keys", collisions))
	}
	features.Finalize(feats, norm.Cleaned, in.Lower, norm.Date)

	probSafe, probPhishing, err := s.probabilities(ctx, doc, norm.Cleaned, feats, requestID)
	if err != nil {
		return nil, err
	}

	verdict := s.engine.Decide(probPhishing)
	explanation := explain.Generate(feats, features.SenderDomain(sender), verdict, probPhishing, probSafe)

	s.logger.Info("Email classified",
		zap.String("request_id", requestID),
		zap.String("verdict", string(verdict)),
		zap.Float64("phishing_probability", probPhishing))

	return &ClassificationResult{
		Verdict:             verdict,
		PhishingProbability: round4(probPhishing),
		SafeProbability:     round4(probSafe),
		Explanation:         explanation,
		ExtractedSender:     norm.Sender,
		ExtractedDate:       norm.Date,
		Thresholds:          s.engine.Thresholds(),
		FeatureSummary: FeatureSummary{
			SuspiciousKeywords: int(feats["suspicious_keyword_count"]),
			UrgencyWords:       int(feats["urgency_word_count"]),
			URLs:               int(feats["url_count"]),
			Exclamations:       int(feats["exclamation_count"]),
		},
		ModelUsed: s.artifact.Info().ModelType,
	}, nil
}

// probabilities returns the class probability pair, consulting the cache
// before paying for vectorization and scoring.
func (s *TriageService) probabilities(ctx context.Context, doc EmailDocument, cleaned string, feats map[string]float64, requestID string) (float64, float64, error) {
	hash := contentHash(doc)

	if s.cacheEnabled {
		if entry, err := s.cache.Get(ctx, hash); err == nil {
			s.logger.Debug("Cache hit",
				zap.String("request_id", requestID),
				zap.String("content_hash", hash))
			return entry.SafeProbability, entry.PhishingProbability, nil
		}
	}

	vector := s.assembleVector(cleaned, feats)
	probSafe, probPhishing, err := s.artifact.Scorer().Score(vector)
	if err != nil {
		s.logger.Error("Scorer invocation failed",
			zap.String("request_id", requestID),
			zap.Int("vector_len", len(vector)),
			zap.Error(err))
		return 0, 0, ErrClassifier
	}
	if math.Abs(probSafe+probPhishing-1) > probabilitySumTolerance {
		s.logger.Error("Scorer returned malformed probability pair",
			zap.String("request_id", requestID),
			zap.Float64("prob_safe", probSafe),
			zap.Float64("prob_phishing", probPhishing))
		return 0, 0, ErrClassifier
	}

	if s.cacheEnabled {
		now := time.Now()
		entry := &CacheEntry{
			ContentHash:         hash,
			SafeProbability:     probSafe,
			PhishingProbability: probPhishing,
			LastSeen:            now,
			ExpiresAt:           now.Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}

	return probSafe, probPhishing, nil
}

// assembleVector concatenates the text vector with the numeric features in
// schema order. Schema keys no extractor produced stay zero.
func (s *TriageService) assembleVector(cleaned string, feats map[string]float64) []float64 {
	schema := s.artifact.Schema()
	aligned := features.AlignToSchema(schema, feats)

	vector := s.artifact.Vectorizer().Vectorize(cleaned)
	for _, name := range schema {
		vector = append(vector, aligned[name])
	}
	return vector
}

// trustedResult is the fixed safe answer for operator-trusted senders.
func (s *TriageService) trustedResult(norm textnorm.Result) *ClassificationResult {
	return &ClassificationResult{
		Verdict:             decision.VerdictSafe,
		PhishingProbability: 0,
		SafeProbability:     1,
		Explanation: []string{
			"This email was classified as safe with 100% confidence.",
			"Safety indicators:",
			"- Sender domain is on the trusted list; content analysis was skipped",
			"Recommendation: this email looks safe, but stay cautious with links you do not recognise.",
		},
		ExtractedSender: norm.Sender,
		ExtractedDate:   norm.Date,
		Thresholds:      s.engine.Thresholds(),
		ModelUsed:       "trusted-domains",
	}
}

func contentHash(doc EmailDocument) string {
	h := sha256.New()
	h.Write([]byte(doc.Text))
	h.Write([]byte{0})
	h.Write([]byte(doc.SenderHint))
	return hex.EncodeToString(h.Sum(nil))
}

func round4(p float64) float64 {
	return math.Round(p*10000) / 10000
}
