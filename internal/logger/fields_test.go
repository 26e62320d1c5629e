package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  openai  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)
	require.Len(t, fields, 1)
	assert.Equal(t, "provider", fields[0].Key)
	assert.Equal(t, "openai", fields[0].String)

	assert.Empty(t, StringFields())
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), RequestFields("ab12cd34", "octo")...).Info("report")
	require.Equal(t, 1, observed.Len())
	ctx := observed.All()[0].ContextMap()
	assert.Equal(t, "ab12cd34", ctx[FieldRequestID])
	assert.Equal(t, "octo", ctx[FieldUser])

	fallback := WithFields(nil, zap.String("baz", "qux"))
	require.NotNil(t, fallback)
	fallback.Info("no panic")
}

func TestProviderFields(t *testing.T) {
	fields := ProviderFields("gemini", "")
	require.Len(t, fields, 1)
	assert.Equal(t, FieldProvider, fields[0].Key)
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"short", " hello ", 10, "hello"},
		{"truncated", "abcdef", 3, "abc..."},
		{"runes", "héllo wörld", 4, "héll..."},
		{"zero limit", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateForLog(tt.input, tt.limit))
		})
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		log, err := New(json, true)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	}
	log, err := New(false, false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
