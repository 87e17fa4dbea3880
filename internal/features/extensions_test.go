package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionExtractor_Categories(t *testing.T) {
	in := NewInput("download invoice.exe and run setup.vbs", "")
	feats := NewExtensionExtractor().Extract(in)

	assert.Equal(t, 1.0, feats["has_executable_extension"])
	assert.Equal(t, 1.0, feats["has_script_extension"])
	assert.Equal(t, 0.0, feats["has_macro_extension"])
	assert.Equal(t, 1.0, feats["has_suspicious_extension"])
	assert.Equal(t, 2.0, feats["suspicious_extension_count"])
	assert.Equal(t, 1.0, feats["has_high_risk_extension"])
}

func TestExtensionExtractor_MacroAndExecutableTogether(t *testing.T) {
	in := NewInput("enable macros in report.docm then run update.exe", "")
	feats := NewExtensionExtractor().Extract(in)

	assert.Equal(t, 1.0, feats["has_macro_extension"])
	assert.Equal(t, 1.0, feats["has_executable_extension"])
	assert.Equal(t, 1.0, feats["has_high_risk_extension"])
	assert.Equal(t, 2.0, feats["suspicious_extension_count"])
}

func TestExtensionExtractor_HiddenExtension(t *testing.T) {
	in := NewInput("open photo.jpg.exe right away", "")
	feats := NewExtensionExtractor().Extract(in)

	assert.Equal(t, 1.0, feats["has_hidden_extension"])
	assert.Equal(t, 1.0, feats["has_multiple_extensions"])
}

func TestExtensionExtractor_DisguisedExtension(t *testing.T) {
	in := NewInput("run the file report.ex3 now", "")
	feats := NewExtensionExtractor().Extract(in)

	assert.Equal(t, 1.0, feats["has_disguised_extension"])
}

func TestExtensionExtractor_CleanText(t *testing.T) {
	feats := NewExtensionExtractor().Extract(NewInput("see you at lunch", ""))

	for key, v := range feats {
		assert.Zero(t, v, "feature %s should be zero for clean text", key)
	}
}
