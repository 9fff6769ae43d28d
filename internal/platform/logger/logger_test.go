package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pawpal/internal/config"
)

func TestSetupWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithWriter(config.AppConfig{LogLevel: "info"}, &buf)

	logger.Info("schedule generated", "pet", "Max", "scheduled", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "schedule generated", record["msg"])
	assert.Equal(t, "Max", record["pet"])
	assert.Equal(t, float64(3), record["scheduled"])
}

func TestSetupRespectsConfiguredLevel(t *testing.T) {
	testCases := []struct {
		name        string
		level       string
		wantDebug   bool
		wantWarning bool
	}{
		{name: "debug level keeps debug records", level: "debug", wantDebug: true, wantWarning: true},
		{name: "warn level drops info and debug", level: "warn", wantDebug: false, wantWarning: true},
		{name: "error level drops warnings", level: "error", wantDebug: false, wantWarning: false},
		{name: "unknown level falls back to info", level: "verbose", wantDebug: false, wantWarning: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := SetupWithWriter(config.AppConfig{LogLevel: tc.level}, &buf)

			logger.Debug("debug record")
			logger.Warn("warn record")

			output := buf.String()
			assert.Equal(t, tc.wantDebug, bytes.Contains([]byte(output), []byte("debug record")))
			assert.Equal(t, tc.wantWarning, bytes.Contains([]byte(output), []byte("warn record")))
		})
	}
}
