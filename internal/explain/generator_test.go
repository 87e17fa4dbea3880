package explain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhan/phish-triage/internal/decision"
)

func TestGenerate_PhishingBranch(t *testing.T) {
	feats := map[string]float64{
		"suspicious_keyword_count": 3,
		"has_threat":               1,
		"has_ip_url":               1,
	}

	lines := Generate(feats, "unknown", decision.VerdictPhishing, 0.92, 0.08)

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "This email was classified as phishing with 92% confidence.", lines[0])
	assert.Equal(t, "Danger indicators detected:", lines[1])
	assert.Contains(t, lines, "- Contains 3 suspicious keywords (such as 'urgent', 'verify account', 'suspended')")
	assert.Contains(t, lines, "- Uses threatening language (suspend, terminate, close account)")
	assert.Contains(t, lines, "- Uses a raw IP address as a URL instead of a domain name")
	assert.Equal(t, "Recommendation: do not click any links, do not share personal information, and delete this email.", lines[len(lines)-1])
}

func TestGenerate_SafeBranchNamesSenderDomain(t *testing.T) {
	feats := map[string]float64{
		"is_legitimate_domain": 1,
		"has_threat":           1, // suppress the no-threat safety line
		"urgency_word_count":   1,
	}

	lines := Generate(feats, "paypal.com", decision.VerdictSafe, 0.1, 0.9)

	assert.Equal(t, "This email was classified as safe with 90% confidence.", lines[0])
	assert.Contains(t, lines, "- Sender uses a trusted official domain (paypal.com)")
}

func TestGenerate_SuspiciousFallback(t *testing.T) {
	lines := Generate(map[string]float64{}, "unknown", decision.VerdictSuspicious, 0.55, 0.45)

	assert.Equal(t, "This email was classified as suspicious with a 55% phishing score.", lines[0])
	assert.Equal(t, "Factors that make this email suspicious:", lines[1])
	// No individual check fires on an empty record; the generic fallback does.
	assert.Contains(t, lines, "- No single phishing element stands out, but the overall pattern of this email is unusual")
	assert.Contains(t, lines, "- The content is 55% similar to known phishing patterns, below the phishing threshold")
}

func TestGenerate_Deterministic(t *testing.T) {
	feats := map[string]float64{
		"urgency_word_count": 3,
		"greed_trigger":      2,
		"url_count":          4,
	}

	first := Generate(feats, "unknown", decision.VerdictSuspicious, 0.6, 0.4)
	second := Generate(feats, "unknown", decision.VerdictSuspicious, 0.6, 0.4)

	assert.Equal(t, first, second)
}

func TestGenerate_BulletsArePrefixed(t *testing.T) {
	feats := map[string]float64{"urgency_word_count": 2}

	lines := Generate(feats, "unknown", decision.VerdictSuspicious, 0.5, 0.5)

	for _, line := range lines[2 : len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "- "), "expected bullet prefix on %q", line)
	}
}
