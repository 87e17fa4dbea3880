package factory

import (
	"github.com/farhan/phish-triage/internal/adapters/classifier"
	"github.com/farhan/phish-triage/internal/config"
	"github.com/farhan/phish-triage/internal/core"
	"github.com/farhan/phish-triage/internal/decision"
	"go.uber.org/zap"
)

// ArtifactFactory loads the model artifact and builds the decision engine
type ArtifactFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewArtifactFactory creates a new artifact factory
func NewArtifactFactory(cfg *config.Config, logger *zap.Logger) *ArtifactFactory {
	return &ArtifactFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateArtifact loads the model artifact from the configured path
func (f *ArtifactFactory) CreateArtifact() (core.Artifact, error) {
	artifactCfg := f.cfg.GetArtifact()
	return classifier.Load(artifactCfg.Path, f.logger)
}

// CreateDecisionEngine builds a decision engine from the configured thresholds
func (f *ArtifactFactory) CreateDecisionEngine() (*decision.Engine, error) {
	decisionCfg := f.cfg.GetDecision()
	return decision.NewEngine(decision.Thresholds{
		Phishing: decisionCfg.PhishingThreshold,
		Safe:     decisionCfg.SafeThreshold,
	})
}
