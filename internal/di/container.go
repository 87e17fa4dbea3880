package di

import (
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/farhan/phish-triage/internal/config"
	"github.com/farhan/phish-triage/internal/core"
	"github.com/farhan/phish-triage/internal/decision"
	"github.com/farhan/phish-triage/internal/factory"
	"github.com/farhan/phish-triage/internal/features"
	"github.com/farhan/phish-triage/internal/logging"
	"github.com/farhan/phish-triage/internal/trust"
	"github.com/farhan/phish-triage/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	return buildCommon(container)
}

// BuildContainerFromViper creates a container around an already populated
// Viper instance, for entry points that assemble configuration from flags.
func BuildContainerFromViper(cfg *config.Config, logger *zap.Logger) (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() *zap.Logger { return logger }); err != nil {
		return nil, err
	}

	return buildCommon(container)
}

// buildCommon registers everything downstream of config and logger.
func buildCommon(container *dig.Container) (*dig.Container, error) {
	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewArtifactFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}

	// Register model artifact
	if err := container.Provide(func(f *factory.ArtifactFactory) (core.Artifact, error) {
		return f.CreateArtifact()
	}); err != nil {
		return nil, err
	}

	// Register decision engine
	if err := container.Provide(func(f *factory.ArtifactFactory) (*decision.Engine, error) {
		return f.CreateDecisionEngine()
	}); err != nil {
		return nil, err
	}

	// Register feature extractor registry
	if err := container.Provide(features.NewRegistry); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register cache TTL and enabled flag
	if err := container.Provide(func(f *factory.CacheFactory) (time.Duration, error) {
		return f.GetCacheTTL()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) bool {
		return f.IsCacheEnabled()
	}); err != nil {
		return nil, err
	}

	// Register trusted domains
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) []string {
		trustedDomains := cfg.GetTriage().TrustedDomains
		if len(trustedDomains) > 0 {
			logger.Info("Loaded trusted domains", zap.Strings("domains", trustedDomains))
		}
		return trustedDomains
	}); err != nil {
		return nil, err
	}

	// Register trust checker
	if err := container.Provide(trust.NewChecker); err != nil {
		return nil, err
	}

	// Register max text size
	if err := container.Provide(func(cfg *config.Config) int {
		return cfg.GetTriage().MaxTextSize
	}); err != nil {
		return nil, err
	}

	// Register triage service
	if err := container.Provide(core.NewTriageService); err != nil {
		return nil, err
	}

	return container, nil
}
