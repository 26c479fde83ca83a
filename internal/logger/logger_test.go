package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		level zapcore.Level
	}{
		{name: "console info", level: zapcore.InfoLevel},
		{name: "json debug", json: true, debug: true, level: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.level))
			assert.False(t, log.Core().Enabled(tt.level-1))
		})
	}
}

func TestAnalysisFields(t *testing.T) {
	fields := AnalysisFields(" 1234 ", "resume.txt")
	require.Len(t, fields, 2)
	assert.Equal(t, FieldAnalysisID, fields[0].Key)
	assert.Equal(t, "1234", fields[0].String)
	assert.Equal(t, FieldSource, fields[1].Key)

	assert.Empty(t, AnalysisFields("", "  "))
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), AnalysisFields("abc", "cv.md")...).Info("analyzed")

	entries := observed.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx[FieldAnalysisID])
	assert.Equal(t, "cv.md", ctx[FieldSource])

	assert.NotPanics(t, func() { WithFields(nil).Info("no-op") })
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "résu...", TruncateForLog("  résumé text ", 4))
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "", TruncateForLog("anything", 0))
}
