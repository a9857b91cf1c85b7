package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithLevel(DebugLevel))

	logger.Debug().Str("table", "clubs").Msg("debug message")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "debug message", entry["message"])
	assert.Equal(t, "clubs", entry["table"])

	// 低于级别的日志被丢弃
	buf.Reset()
	logger.SetLevel(WarnLevel)
	logger.Info().Msg("ignored")
	assert.Empty(t, buf.String())
}

func TestNamedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithField("app", "auja")).Named("configurator")

	logger.Warn().Msg("named")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "configurator", entry["component"])
	assert.Equal(t, "auja", entry["app"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("loud"))
}

func TestRotateLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	logger := NewRotateLogger(
		WithFilename(logFile),
		WithMaxSize(1),
		WithMaxAge(1),
		WithMaxBackups(1),
		WithRotateLevel(DebugLevel),
	)
	for i := 0; i < 10; i++ {
		logger.Debug().Int("i", i).Msg("rotate")
	}

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"rotate"`)
}
