package features

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	sentenceSplit     = regexp.MustCompile(`[.!?]+`)
	tripleExclamation = regexp.MustCompile(`!{3,}`)
)

// StructuralExtractor measures how the text is written rather than what it
// says: capitalisation patterns and exclamation mark usage. Ratios are
// computed against floored denominators so empty text never divides by zero.
type StructuralExtractor struct{}

func NewStructuralExtractor() *StructuralExtractor {
	return &StructuralExtractor{}
}

func (e *StructuralExtractor) Name() string { return "structural" }

func (e *StructuralExtractor) Extract(in Input) map[string]float64 {
	feats := make(map[string]float64, 8)

	words := strings.Fields(in.Text)
	if len(words) > 0 {
		capitals := 0
		unusual := 0
		for i, w := range words {
			if !isShoutedWord(w) {
				continue
			}
			capitals++

			// Sentence-initial words and well-known acronyms or brand names
			// in caps are normal; anything else mid-sentence is not.
			if i == 0 || endsSentence(words[i-1]) {
				continue
			}
			if isAllowedCapital(w) {
				continue
			}
			unusual++
		}
		feats["capital_word_ratio"] = float64(capitals) / float64(len(words))
		feats["unusual_capital_ratio"] = float64(unusual) / float64(len(words))

		sentences := sentenceSplit.Split(in.Text, -1)
		allCaps := 0
		for _, s := range sentences {
			trimmed := strings.TrimSpace(s)
			if trimmed != "" && isShouted(trimmed) {
				allCaps++
			}
		}
		denom := len(sentences)
		if denom < 1 {
			denom = 1
		}
		feats["all_caps_sentences_ratio"] = float64(allCaps) / float64(denom)
	} else {
		feats["capital_word_ratio"] = 0
		feats["all_caps_sentences_ratio"] = 0
		feats["unusual_capital_ratio"] = 0
	}

	exclamations := strings.Count(in.Text, "!")
	feats["exclamation_count"] = float64(exclamations)

	textLen := utf8.RuneCountInString(in.Text)
	if textLen < 1 {
		textLen = 1
	}
	feats["exclamation_ratio"] = float64(exclamations) / float64(textLen)
	feats["excessive_exclamation"] = indicator(exclamations > 5)
	feats["consecutive_exclamation"] = float64(len(tripleExclamation.FindAllString(in.Text, -1)))
	feats["mid_sentence_exclamation_ratio"] = midSentenceExclamationRatio(in.Text)

	return feats
}

// isShouted reports whether the string has at least one letter and no
// lowercase letters.
func isShouted(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func isShoutedWord(w string) bool {
	return utf8.RuneCountInString(w) > 1 && isShouted(w)
}

func endsSentence(w string) bool {
	return strings.HasSuffix(w, ".") || strings.HasSuffix(w, "!") ||
		strings.HasSuffix(w, "?")
}

func isAllowedCapital(w string) bool {
	lower := strings.ToLower(w)
	for _, b := range brands {
		if lower == b {
			return true
		}
	}
	for _, a := range acronymAllowlist {
		if w == a {
			return true
		}
	}
	return false
}

// midSentenceExclamationRatio is the share of exclamation marks not followed
// by whitespace or a period, i.e. punctuation jammed into the middle of a
// sentence. Zero when the text has no exclamation marks at all.
func midSentenceExclamationRatio(text string) float64 {
	total := 0
	midSentence := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '!' {
			continue
		}
		total++
		if i+1 < len(text) {
			next := text[i+1]
			if next != '.' && next != ' ' && next != '\n' {
				midSentence++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(midSentence) / float64(total)
}
