// Package classifier loads the trained model artifact and adapts it to the
// core scoring and vectorization ports. The artifact is read once at startup
// and immutable afterwards.
package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/farhan/phish-triage/internal/core"
)

// artifactFile is the on-disk JSON layout exported by the training pipeline.
type artifactFile struct {
	Metadata struct {
		ModelType    string `json:"model_type"`
		Version      string `json:"version"`
		CreationDate string `json:"creation_date"`
	} `json:"metadata"`
	NumericFeatures []string `json:"numeric_features"`
	Vectorizer      struct {
		Vocabulary map[string]int `json:"vocabulary"`
		IDF        []float64      `json:"idf"`
	} `json:"vectorizer"`
	Model struct {
		Weights []float64 `json:"weights"`
		Bias    float64   `json:"bias"`
	} `json:"model"`
}

// Artifact is the loaded model: metadata, the declared numeric feature
// schema, the TF-IDF vectorizer and the logistic scorer.
type Artifact struct {
	info       core.ModelInfo
	schema     []string
	vectorizer *TFIDFVectorizer
	scorer     *LogisticScorer
}

var _ core.Artifact = (*Artifact)(nil)

// Load reads and validates an artifact from a file.
func Load(path string, logger *zap.Logger) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer f.Close()

	artifact, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact %s: %w", path, err)
	}

	if logger != nil {
		logger.Info("Loaded classifier artifact",
			zap.String("path", path),
			zap.String("model_type", artifact.info.ModelType),
			zap.String("version", artifact.info.Version),
			zap.Int("numeric_features", len(artifact.schema)),
			zap.Int("text_dimensions", artifact.vectorizer.Dimensions()))
	}

	return artifact, nil
}

// Decode parses and validates an artifact from a reader. Validation failures
// are fatal configuration errors: serving with a half-loaded model would
// silently misclassify everything.
func Decode(r io.Reader) (*Artifact, error) {
	var file artifactFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	if len(file.NumericFeatures) == 0 {
		return nil, fmt.Errorf("artifact declares no numeric features")
	}
	if len(file.Vectorizer.Vocabulary) != len(file.Vectorizer.IDF) {
		return nil, fmt.Errorf("vectorizer vocabulary size %d does not match idf size %d",
			len(file.Vectorizer.Vocabulary), len(file.Vectorizer.IDF))
	}
	for term, idx := range file.Vectorizer.Vocabulary {
		if idx < 0 || idx >= len(file.Vectorizer.IDF) {
			return nil, fmt.Errorf("vectorizer term %q has out-of-range index %d", term, idx)
		}
	}
	wantWeights := len(file.Vectorizer.IDF) + len(file.NumericFeatures)
	if len(file.Model.Weights) != wantWeights {
		return nil, fmt.Errorf("model has %d weights, expected %d (text %d + numeric %d)",
			len(file.Model.Weights), wantWeights,
			len(file.Vectorizer.IDF), len(file.NumericFeatures))
	}

	return &Artifact{
		info: core.ModelInfo{
			ModelType:    file.Metadata.ModelType,
			Version:      file.Metadata.Version,
			CreationDate: file.Metadata.CreationDate,
		},
		schema:     file.NumericFeatures,
		vectorizer: NewTFIDFVectorizer(file.Vectorizer.Vocabulary, file.Vectorizer.IDF),
		scorer:     NewLogisticScorer(file.Model.Weights, file.Model.Bias),
	}, nil
}

// Schema returns a copy of the declared numeric feature names in order.
func (a *Artifact) Schema() []string {
	schema := make([]string, len(a.schema))
	copy(schema, a.schema)
	return schema
}

func (a *Artifact) Vectorizer() core.TextVectorizer { return a.vectorizer }

func (a *Artifact) Scorer() core.Scorer { return a.scorer }

func (a *Artifact) Info() core.ModelInfo { return a.info }
