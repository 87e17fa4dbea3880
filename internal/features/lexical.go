package features

import (
	"regexp"
	"strings"
)

var (
	anchorURLPattern = regexp.MustCompile(`https?://\S+`)
	imageExtPattern  = regexp.MustCompile(`\.(jpg|jpeg|png|gif)`)
)

// LexicalExtractor covers keyword- and phrase-based signals: suspicious
// wording, urgency, threats, psychological triggers, brand mention
// consistency, HTML markers and social-engineering phrases.
type LexicalExtractor struct{}

func NewLexicalExtractor() *LexicalExtractor {
	return &LexicalExtractor{}
}

func (e *LexicalExtractor) Name() string { return "lexical" }

func (e *LexicalExtractor) Extract(in Input) map[string]float64 {
	lower := in.Lower
	feats := make(map[string]float64, 32)

	feats["suspicious_keyword_count"] = countPresent(lower, phishingKeywords)
	feats["urgency_word_count"] = countPresent(lower, urgencyWords)
	feats["has_time_limit"] = hasAny(lower, timeLimitPhrases)
	feats["personal_info_request"] = hasAny(lower, personalInfoKeywords)
	feats["has_threat"] = hasAny(lower, threatWords)
	feats["has_generic_greeting"] = hasAny(lower, genericGreetings)
	feats["has_personalization_placeholder"] = hasAny(lower, personalizationPlaceholders)

	mentioned := mentionedBrands(lower)
	feats["brand_mention_count"] = float64(len(mentioned))
	feats["inconsistent_brand_mention"] = inconsistentBrandMention(lower, mentioned)
	// Text-only sibling of the sender-aware mismatch rule: more than one brand
	// named in a single message is itself unusual.
	feats["multi_brand_mention"] = indicator(len(mentioned) > 1)

	feats["spelling_errors_count"] = countPresent(lower, commonMisspellings)

	feats["has_html_content"] = hasAny(lower, htmlTags)
	feats["has_form_submission"] = indicator(
		strings.Contains(lower, "<form") && strings.Contains(lower, "action="))
	feats["has_javascript"] = indicator(
		strings.Contains(lower, "javascript:") || strings.Contains(lower, "<script"))
	feats["has_tracking_pixel"] = hasAny(lower, trackingPhrases)
	feats["has_unsubscribe_link"] = indicator(strings.Contains(lower, "unsubscribe"))

	feats["has_misleading_link"] = misleadingLink(lower)

	feats["authority_impersonation"] = hasAny(lower, authorityTerms)
	feats["scarcity_tactic"] = hasAny(lower, scarcityPhrases)
	feats["social_proof"] = hasAny(lower, socialProofPhrases)

	feats["fear_intensity"] = countPresent(lower, fearWords)
	feats["greed_trigger"] = countPresent(lower, greedWords)
	feats["curiosity_trigger"] = countPresent(lower, curiosityPhrases)

	feats["action_request_count"] = countPresent(lower, actionKeywords)
	feats["security_claim_count"] = countPresent(lower, securityClaimWords)

	feats["has_suspicious_attachment"] = hasAny(lower, suspiciousAttachmentExts)
	feats["has_suspicious_contact"] = hasAny(lower, suspiciousContactPhrases)

	feats["mentions_recent_events"] = hasAny(lower, recentEventTerms)
	feats["seasonal_reference"] = hasAny(lower, seasonalTerms)

	return feats
}

func mentionedBrands(lower string) []string {
	var found []string
	for _, b := range brands {
		if strings.Contains(lower, b) {
			found = append(found, b)
		}
	}
	return found
}

// inconsistentBrandMention fires when a mentioned brand co-occurs with a
// suspicious suffix glued on, e.g. "paypalsecurity" or "amazonalert".
func inconsistentBrandMention(lower string, mentioned []string) float64 {
	for _, brand := range mentioned {
		for _, suffix := range brandSuffixes {
			if strings.Contains(lower, brand+suffix) {
				return 1
			}
		}
	}
	return 0
}

// misleadingLink checks whether a call-to-action anchor phrase is immediately
// followed (within 100 characters) by a URL, the classic mismatch between
// what a link says and where it goes.
func misleadingLink(lower string) float64 {
	for _, anchor := range misleadingAnchors {
		pos := strings.Index(lower, anchor)
		if pos < 0 {
			continue
		}
		start := pos + len(anchor)
		end := start + 100
		if end > len(lower) {
			end = len(lower)
		}
		if anchorURLPattern.MatchString(lower[start:end]) {
			return 1
		}
	}
	return 0
}
