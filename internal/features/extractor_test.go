package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistry_ExtractMergesWithoutCollisions(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	in := NewInput("URGENT: verify your paypal account at https://bit.ly/x", "help@random.biz")
	merged, collisions := registry.Extract(in)

	assert.Empty(t, collisions, "standard extractors must produce disjoint key sets")

	// One representative key per extractor.
	for _, key := range []string{
		"suspicious_keyword_count",  // lexical
		"capital_word_ratio",        // structural
		"url_count",                 // url
		"has_paypal",                // brand
		"is_free_email",             // sender
		"has_suspicious_extension",  // extension
		"sender_content_mismatch",   // sender_content
		"excessive_security_claims", // security claims
	} {
		assert.Contains(t, merged, key)
	}
}

func TestRegistry_SecondExtractionIsIdentical(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	in := NewInput("Win a FREE prize now!!!", "promo@lucky-shop.tk")

	first, _ := registry.Extract(in)
	second, _ := registry.Extract(in)

	assert.Equal(t, first, second)
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name          string
		cleaned       string
		rawLower      string
		extractedDate string
		wantLength    float64
		wantAttach    float64
		wantWeekend   float64
		wantHour      float64
	}{
		{
			name:        "weekend date",
			cleaned:     "hello world",
			rawLower:    "hello world",
			wantLength:  2,
			wantWeekend: 1,
			wantHour:    0,

			extractedDate: "Sat Oct 4 2025",
		},
		{
			name:          "weekday date",
			cleaned:       "one",
			rawLower:      "one",
			extractedDate: "Mon Oct 6 2025",
			wantLength:    1,
			wantHour:      0,
		},
		{
			name:       "no date defaults to weekday noon",
			cleaned:    "",
			rawLower:   "please see the attached file",
			wantAttach: 1,
			wantHour:   12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feats := map[string]float64{}
			Finalize(feats, tt.cleaned, tt.rawLower, tt.extractedDate)

			assert.Equal(t, tt.wantLength, feats["text_length"])
			assert.Equal(t, tt.wantAttach, feats["has_attachment"])
			assert.Equal(t, tt.wantWeekend, feats["is_weekend"])
			assert.Equal(t, tt.wantHour, feats["hour_sent"])
		})
	}
}

func TestAlignToSchema(t *testing.T) {
	schema := []string{"a", "b"}
	feats := map[string]float64{"a": 1, "c": 2}

	aligned := AlignToSchema(schema, feats)

	assert.Equal(t, map[string]float64{"a": 1, "b": 0}, aligned)
}

func TestNames_NoDuplicates(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n], "duplicate feature name %s", n)
		seen[n] = true
	}
}

func TestNames_CoverRegistryOutput(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	in := NewInput("URGENT: verify your paypal account at https://bit.ly/x see attached file invoice.exe", "help@random.biz")

	merged, _ := registry.Extract(in)
	Finalize(merged, "verify paypal account", "urgent verify", "")

	declared := make(map[string]bool)
	for _, n := range Names() {
		declared[n] = true
	}
	for key := range merged {
		assert.True(t, declared[key], "extractor produced undeclared feature %s", key)
	}
}
