package classifier

import (
	"math"
	"strings"
)

// TFIDFVectorizer maps normalized text onto the fixed-width TF-IDF
// representation the model was trained with. Stateless after construction,
// safe for concurrent use.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewTFIDFVectorizer builds a vectorizer over a term→index vocabulary and the
// matching per-index idf weights.
func NewTFIDFVectorizer(vocabulary map[string]int, idf []float64) *TFIDFVectorizer {
	return &TFIDFVectorizer{vocabulary: vocabulary, idf: idf}
}

// Dimensions is the fixed width of every produced vector.
func (v *TFIDFVectorizer) Dimensions() int {
	return len(v.idf)
}

// Vectorize computes the L2-normalized TF-IDF vector for the text. Unknown
// tokens are ignored; text with no known tokens yields the zero vector.
func (v *TFIDFVectorizer) Vectorize(normalizedText string) []float64 {
	vec := make([]float64, len(v.idf))

	for _, token := range strings.Fields(normalizedText) {
		if idx, ok := v.vocabulary[token]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var sumSquares float64
	for _, x := range vec {
		sumSquares += x * x
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}
