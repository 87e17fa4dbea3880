package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "short", tp.TruncateText("short", 100))
	assert.Equal(t, "abc", tp.TruncateText("abcdef", 3))
	assert.Equal(t, "abcdef", tp.TruncateText("abcdef", 0), "non-positive max means no limit")
}

func TestTruncateText_RespectsUTF8Boundary(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	// "héllo": the é occupies bytes 1-2; cutting at 2 splits the rune.
	got := tp.TruncateText("héllo", 2)
	assert.Equal(t, "h", got)
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "clean", tp.SanitizeUTF8("clean"))

	dirty := "bad" + string([]byte{0xff, 0xfe}) + "bytes"
	assert.Equal(t, "badbytes", tp.SanitizeUTF8(dirty))
}

func TestProcessText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	long := strings.Repeat("a", 10) + string([]byte{0xff})
	assert.Equal(t, "aaaaa", tp.ProcessText(long, 5))
}
