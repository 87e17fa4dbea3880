package config

// ArtifactConfig represents the configuration for the model artifact
type ArtifactConfig struct {
	Path string
}

// DecisionConfig represents the verdict threshold configuration
type DecisionConfig struct {
	PhishingThreshold float64
	SafeThreshold     float64
}

// TriageConfig represents the configuration for the triage service
type TriageConfig struct {
	MaxTextSize    int
	TrustedDomains []string
}

// GetArtifact returns the model artifact configuration
func (c *Config) GetArtifact() ArtifactConfig {
	return ArtifactConfig{
		Path: c.GetString("artifact.path"),
	}
}

// GetDecision returns the verdict threshold configuration
func (c *Config) GetDecision() DecisionConfig {
	return DecisionConfig{
		PhishingThreshold: c.GetFloat64("decision.phishing_threshold"),
		SafeThreshold:     c.GetFloat64("decision.safe_threshold"),
	}
}

// GetTriage returns the triage service configuration
func (c *Config) GetTriage() TriageConfig {
	return TriageConfig{
		MaxTextSize:    c.GetInt("triage.max_text_size"),
		TrustedDomains: c.GetStringSlice("triage.trusted_domains"),
	}
}
