// Package features turns raw email text and sender metadata into the numeric
// signals the classifier consumes. Every extractor is a pure function over its
// input; empty or whitespace-only text yields all-zero counts and ratios.
package features

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Input is the shared view of one email handed to every extractor. Lower is
// precomputed once because nearly all rules match against lowercased text.
type Input struct {
	Text   string
	Lower  string
	Sender string
}

// NewInput builds an extractor input from raw text and the sender address the
// normalizer (or the caller) supplied. Sender may be empty.
func NewInput(text, sender string) Input {
	return Input{
		Text:   text,
		Lower:  strings.ToLower(text),
		Sender: sender,
	}
}

// Extractor produces a partial feature mapping from one email.
type Extractor interface {
	// Name identifies the extractor in logs and collision reports.
	Name() string

	// Extract returns the extractor's features. Implementations never fail;
	// unmatchable input produces zero values.
	Extract(in Input) map[string]float64
}

// Registry runs the extractors in a fixed order and merges their output.
//
// Merge policy: later extractors win on key collisions. The extractors are
// written to produce disjoint key sets, so any reported collision indicates a
// rule was added under an already-claimed name.
type Registry struct {
	extractors []Extractor
	logger     *zap.Logger
}

// NewRegistry creates a registry with the standard extractor set in its
// canonical order.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		extractors: []Extractor{
			NewLexicalExtractor(),
			NewStructuralExtractor(),
			NewURLExtractor(),
			NewBrandExtractor(),
			NewSenderExtractor(),
			NewExtensionExtractor(),
			NewSenderContentExtractor(),
			NewSecurityClaimExtractor(),
		},
		logger: logger,
	}
}

// Extract runs every extractor and merges the partial records in order.
// The second return value lists keys that were written more than once.
func (r *Registry) Extract(in Input) (map[string]float64, []string) {
	merged := make(map[string]float64, 96)
	var collisions []string

	for _, ex := range r.extractors {
		for k, v := range ex.Extract(in) {
			if _, seen := merged[k]; seen {
				collisions = append(collisions, k)
			}
			merged[k] = v
		}
	}

	sort.Strings(collisions)
	if len(collisions) > 0 && r.logger != nil {
		r.logger.Warn("feature key collisions during merge",
			zap.Strings("keys", collisions))
	}
	return merged, collisions
}

// sentDateLayout matches the date tokens the normalizer extracts,
// e.g. "Mon Oct 6 2025".
const sentDateLayout = "Mon Jan 2 2006"

// Finalize adds the derived features that depend on the normalizer's output
// rather than on any single extractor: cleaned-text token length, the
// attachment phrase indicator, and the weekend/hour flags parsed from the
// extracted date. Unparseable dates default to a weekday at noon.
func Finalize(feats map[string]float64, cleanedText, rawLower, extractedDate string) {
	feats["text_length"] = float64(len(strings.Fields(cleanedText)))

	feats["has_attachment"] = indicator(strings.Contains(rawLower, "attached file"))

	isWeekend := 0.0
	hourSent := 12.0
	if t, err := time.Parse(sentDateLayout, extractedDate); err == nil {
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			isWeekend = 1
		}
		hourSent = float64(t.Hour())
	}
	feats["is_weekend"] = isWeekend
	feats["hour_sent"] = hourSent
}

// AlignToSchema projects a merged feature map onto the classifier's declared
// schema: the result contains exactly the schema's keys, with absent values
// defaulted to zero and unknown keys dropped.
func AlignToSchema(schema []string, feats map[string]float64) map[string]float64 {
	aligned := make(map[string]float64, len(schema))
	for _, name := range schema {
		aligned[name] = feats[name]
	}
	return aligned
}

// Names returns the canonical ordered list of every feature the standard
// extractor set plus Finalize can produce. Training-side tooling uses this as
// the numeric schema.
func Names() []string {
	return []string{
		// lexical
		"suspicious_keyword_count", "urgency_word_count", "has_time_limit",
		"personal_info_request", "has_threat", "has_generic_greeting",
		"has_personalization_placeholder", "brand_mention_count",
		"inconsistent_brand_mention", "multi_brand_mention",
		"spelling_errors_count", "has_html_content", "has_form_submission",
		"has_javascript", "has_tracking_pixel", "has_unsubscribe_link",
		"has_misleading_link", "authority_impersonation", "scarcity_tactic",
		"social_proof", "fear_intensity", "greed_trigger", "curiosity_trigger",
		"action_request_count", "security_claim_count",
		"has_suspicious_attachment", "has_suspicious_contact",
		"mentions_recent_events", "seasonal_reference",
		// structural
		"capital_word_ratio", "all_caps_sentences_ratio",
		"unusual_capital_ratio", "exclamation_count", "exclamation_ratio",
		"excessive_exclamation", "consecutive_exclamation",
		"mid_sentence_exclamation_ratio",
		// url/domain
		"url_count", "has_legitimate_short_domain",
		"has_suspicious_short_domain", "has_typosquatting", "has_ip_url",
		"has_url_masking", "has_homograph", "multiple_redirects",
		"shortened_url_only", "image_only_text",
		// brand
		"has_paypal", "has_amazon", "has_microsoft", "has_apple",
		"has_google", "has_facebook", "has_instagram", "has_brand_spoofing",
		// sender
		"is_free_email", "is_legitimate_domain", "is_new_domain",
		"domain_age_days", "sender_content_mismatch", "sender_impersonation",
		// attachment/extension
		"has_suspicious_extension", "suspicious_extension_count",
		"has_executable_extension", "has_script_extension",
		"has_macro_extension", "has_archive_extension",
		"has_system_extension", "has_other_extension",
		"has_high_risk_extension", "has_multiple_extensions",
		"has_hidden_extension", "has_disguised_extension",
		// security claims
		"excessive_security_claims", "suspicious_verification_request",
		"sensitive_info_request", "account_threat_count",
		// derived
		"text_length", "has_attachment", "is_weekend", "hour_sent",
	}
}

// countPresent counts how many entries of the list occur in the text.
// Presence counting, not occurrence counting: each listed phrase contributes
// at most one, which keeps the count monotonic under text growth.
func countPresent(text string, list []string) float64 {
	n := 0
	for _, item := range list {
		if strings.Contains(text, strings.ToLower(item)) {
			n++
		}
	}
	return float64(n)
}

func hasAny(text string, list []string) float64 {
	for _, item := range list {
		if strings.Contains(text, strings.ToLower(item)) {
			return 1
		}
	}
	return 0
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
