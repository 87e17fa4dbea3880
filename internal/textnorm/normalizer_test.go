package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	result := Normalize("")

	assert.Equal(t, "", result.Cleaned)
	assert.Equal(t, "", result.Date)
	assert.Equal(t, "", result.Sender)
}

func TestNormalize_ExtractsDate(t *testing.T) {
	result := Normalize("Meeting Mon Oct 6 2025 confirmed")

	assert.Equal(t, "Mon Oct 6 2025", result.Date)
	assert.Equal(t, "meeting confirmed", result.Cleaned)
}

func TestNormalize_ExtractsSender(t *testing.T) {
	result := Normalize("Contact support@example.com today")

	assert.Equal(t, "support@example.com", result.Sender)
	assert.Equal(t, "contact today", result.Cleaned)
}

func TestNormalize_FixesMojibake(t *testing.T) {
	result := Normalize("Donâ€™t panic")

	assert.Equal(t, "dont panic", result.Cleaned)
}

func TestNormalize_FoldsTypographicQuotes(t *testing.T) {
	result := Normalize("it’s easy")

	// The folded apostrophe is stripped with the other punctuation, then
	// "its" falls to the stopword filter.
	assert.Equal(t, "easy", result.Cleaned)
}

func TestNormalize_RemovesAttachmentPhrase(t *testing.T) {
	result := Normalize("Please See Attached File invoice.pdf")

	assert.Equal(t, "please invoice.pdf", result.Cleaned)
}

func TestNormalize_LowercasesAndDropsStopwords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "stopwords removed",
			input: "This is a Secret Message",
			want:  "secret message",
		},
		{
			name:  "special characters stripped",
			input: "Win $1,000,000 #jackpot",
			want:  "win 1000000 jackpot",
		},
		{
			name:  "sentence punctuation kept",
			input: "Act fast! Really fast.",
			want:  "act fast! really fast.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input).Cleaned)
		})
	}
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("now"))
	assert.False(t, IsStopword("urgent"))
	assert.False(t, IsStopword("dont"))
}
