package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuralExtractor_CapitalRatios(t *testing.T) {
	in := NewInput("THIS IS A SCAM", "")
	feats := NewStructuralExtractor().Extract(in)

	// "A" is a single rune and never counts as shouted. "THIS" opens the
	// sentence, "IS" and "SCAM" are unusual mid-sentence capitals.
	assert.InDelta(t, 0.75, feats["capital_word_ratio"], 1e-9)
	assert.InDelta(t, 0.5, feats["unusual_capital_ratio"], 1e-9)
}

func TestStructuralExtractor_AllowedCapitals(t *testing.T) {
	in := NewInput("Your PDF from PAYPAL is ready", "")
	feats := NewStructuralExtractor().Extract(in)

	assert.InDelta(t, 2.0/6.0, feats["capital_word_ratio"], 1e-9)
	assert.Equal(t, 0.0, feats["unusual_capital_ratio"])
}

func TestStructuralExtractor_AllCapsSentences(t *testing.T) {
	in := NewInput("HELLO THERE. nice day.", "")
	feats := NewStructuralExtractor().Extract(in)

	// Splitting on sentence punctuation leaves a trailing empty segment that
	// still counts toward the denominator.
	assert.InDelta(t, 1.0/3.0, feats["all_caps_sentences_ratio"], 1e-9)
}

func TestStructuralExtractor_Exclamations(t *testing.T) {
	in := NewInput("Win now!!! Really!!!", "")
	feats := NewStructuralExtractor().Extract(in)

	assert.Equal(t, 6.0, feats["exclamation_count"])
	assert.Equal(t, 1.0, feats["excessive_exclamation"])
	assert.Equal(t, 2.0, feats["consecutive_exclamation"])
	assert.InDelta(t, 4.0/6.0, feats["mid_sentence_exclamation_ratio"], 1e-9)
}

func TestStructuralExtractor_EmptyText(t *testing.T) {
	feats := NewStructuralExtractor().Extract(NewInput("", ""))

	assert.Equal(t, 0.0, feats["capital_word_ratio"])
	assert.Equal(t, 0.0, feats["all_caps_sentences_ratio"])
	assert.Equal(t, 0.0, feats["unusual_capital_ratio"])
	assert.Equal(t, 0.0, feats["exclamation_count"])
	assert.Equal(t, 0.0, feats["exclamation_ratio"])
	assert.Equal(t, 0.0, feats["mid_sentence_exclamation_ratio"])
}
