package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_RejectsInvalidThresholds(t *testing.T) {
	tests := []struct {
		name       string
		thresholds Thresholds
	}{
		{"zero safe threshold", Thresholds{Phishing: 0.75, Safe: 0}},
		{"negative safe threshold", Thresholds{Phishing: 0.75, Safe: -0.1}},
		{"phishing above one", Thresholds{Phishing: 1.1, Safe: 0.4}},
		{"safe equals phishing", Thresholds{Phishing: 0.5, Safe: 0.5}},
		{"safe above phishing", Thresholds{Phishing: 0.4, Safe: 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEngine(tt.thresholds)
			assert.Error(t, err)
			assert.Nil(t, engine)
		})
	}
}

func TestEngine_Decide(t *testing.T) {
	engine, err := NewEngine(Thresholds{Phishing: 0.75, Safe: 0.40})
	require.NoError(t, err)

	tests := []struct {
		name string
		prob float64
		want Verdict
	}{
		{"well above phishing threshold", 0.95, VerdictPhishing},
		{"exactly phishing threshold", 0.75, VerdictPhishing},
		{"between thresholds", 0.5, VerdictSuspicious},
		{"exactly safe threshold", 0.40, VerdictSuspicious},
		{"just below safe threshold", 0.39999, VerdictSafe},
		{"zero", 0, VerdictSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Decide(tt.prob))
		})
	}
}

func TestEngine_Thresholds(t *testing.T) {
	want := Thresholds{Phishing: 0.8, Safe: 0.3}
	engine, err := NewEngine(want)
	require.NoError(t, err)

	assert.Equal(t, want, engine.Thresholds())
}
