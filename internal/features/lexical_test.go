package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalExtractor_KeywordCounts(t *testing.T) {
	in := NewInput("URGENT: verify your account immediately! Click here", "")
	feats := NewLexicalExtractor().Extract(in)

	// "urgent", "immediate", "verify your account" and "click here" are each
	// present once; presence counting ignores repeats.
	assert.Equal(t, 4.0, feats["suspicious_keyword_count"])
	assert.Equal(t, 2.0, feats["urgency_word_count"])
}

func TestLexicalExtractor_PresenceNotOccurrences(t *testing.T) {
	in := NewInput("urgent urgent urgent", "")
	feats := NewLexicalExtractor().Extract(in)

	assert.Equal(t, 1.0, feats["suspicious_keyword_count"])
	assert.Equal(t, 1.0, feats["urgency_word_count"])
}

func TestLexicalExtractor_GenericGreeting(t *testing.T) {
	in := NewInput("Dear Customer, your parcel is waiting", "")
	feats := NewLexicalExtractor().Extract(in)

	assert.Equal(t, 1.0, feats["has_generic_greeting"])
}

func TestLexicalExtractor_BrandMentions(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		wantCount        float64
		wantMulti        float64
		wantInconsistent float64
	}{
		{
			name:      "single brand",
			text:      "your paypal balance",
			wantCount: 1,
		},
		{
			name:      "two brands",
			text:      "paypal and amazon order",
			wantCount: 2,
			wantMulti: 1,
		},
		{
			name:             "brand glued to suffix",
			text:             "message from paypalsecurity",
			wantCount:        1,
			wantInconsistent: 1,
		},
		{
			name: "no brands",
			text: "lunch at noon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feats := NewLexicalExtractor().Extract(NewInput(tt.text, ""))

			assert.Equal(t, tt.wantCount, feats["brand_mention_count"])
			assert.Equal(t, tt.wantMulti, feats["multi_brand_mention"])
			assert.Equal(t, tt.wantInconsistent, feats["inconsistent_brand_mention"])
		})
	}
}

func TestLexicalExtractor_MisleadingLink(t *testing.T) {
	withURL := NewLexicalExtractor().Extract(
		NewInput("click here https://evil.example.com/login", ""))
	assert.Equal(t, 1.0, withURL["has_misleading_link"])

	withoutURL := NewLexicalExtractor().Extract(
		NewInput("click here for the full story", ""))
	assert.Equal(t, 0.0, withoutURL["has_misleading_link"])
}

func TestLexicalExtractor_HTMLMarkers(t *testing.T) {
	in := NewInput(`<html><form action="https://x.test"><script>`, "")
	feats := NewLexicalExtractor().Extract(in)

	assert.Equal(t, 1.0, feats["has_html_content"])
	assert.Equal(t, 1.0, feats["has_form_submission"])
	assert.Equal(t, 1.0, feats["has_javascript"])
}

func TestLexicalExtractor_EmptyText(t *testing.T) {
	feats := NewLexicalExtractor().Extract(NewInput("", ""))

	for key, v := range feats {
		assert.Zero(t, v, "feature %s should be zero for empty text", key)
	}
}
