// Package textnorm prepares raw email text for feature extraction and
// vectorization. Normalization is total: malformed or empty input degrades to
// empty outputs and never produces an error.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// datePattern matches tokens like "Mon Oct 6 2025" embedded in forwarded
	// headers or signatures.
	datePattern   = regexp.MustCompile(`\w{3}\s\w{3}\s\d{1,2}\s\d{4}`)
	senderPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	attachmentPhrase = regexp.MustCompile(`(?i)see attached file`)
	specialChars     = regexp.MustCompile(`[^\w\s.!?]`)
)

// mojibake covers smart punctuation that arrives double-encoded; phishing
// campaigns use these glyphs to slip past naive keyword filters.
var mojibake = strings.NewReplacer(
	"â€™", "'",
	"â€œ", `"`,
	"â€", `"`,
	"â€˜", "'",
)

// glyphFold maps typographic punctuation onto its ASCII equivalent so the
// downstream keyword tables only need to carry one spelling.
var glyphFold = transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
	switch r {
	case '‘', '’', '‚', '′':
		return '\''
	case '“', '”', '„', '″':
		return '"'
	case '–', '—':
		return '-'
	case ' ':
		return ' '
	}
	return r
}))

// Result holds the cleaned text together with the metadata substrings captured
// before cleaning destroyed them.
type Result struct {
	Cleaned string
	Date    string
	Sender  string
}

// Normalize cleans raw email text and extracts the first date-like token and
// the first email address found in it. Inputs that match neither pattern yield
// empty extracted values.
func Normalize(text string) Result {
	if text == "" {
		return Result{}
	}

	extractedDate := datePattern.FindString(text)
	extractedSender := senderPattern.FindString(text)

	clean := datePattern.ReplaceAllString(text, "")
	clean = senderPattern.ReplaceAllString(clean, "")

	clean = mojibake.Replace(clean)
	if folded, _, err := transform.String(glyphFold, clean); err == nil {
		clean = folded
	}

	clean = attachmentPhrase.ReplaceAllString(clean, "")
	clean = specialChars.ReplaceAllString(clean, "")
	clean = strings.ToLower(clean)
	clean = dropStopwords(clean)

	return Result{Cleaned: clean, Date: extractedDate, Sender: extractedSender}
}

func dropStopwords(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if !IsStopword(f) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
