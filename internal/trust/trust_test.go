package trust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestChecker_IsTrusted(t *testing.T) {
	checker := NewChecker([]string{" Corp.Example ", "partner.test"}, zap.NewNop())

	tests := []struct {
		name   string
		sender string
		want   bool
	}{
		{"exact domain match", "boss@corp.example", true},
		{"case insensitive", "Boss@CORP.EXAMPLE", true},
		{"second configured domain", "it@partner.test", true},
		{"unknown domain", "someone@evil.example", false},
		{"no at sign", "corp.example", false},
		{"two at signs", "a@b@corp.example", false},
		{"empty sender", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.IsTrusted(tt.sender))
		})
	}
}

func TestChecker_EmptyListTrustsNobody(t *testing.T) {
	checker := NewChecker(nil, zap.NewNop())

	assert.False(t, checker.IsTrusted("boss@corp.example"))
}
