package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/httpget/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	log, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestBuilder_DefaultIsSilent(t *testing.T) {
	var console bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.NewDefaultLogConfig()).
		WithConsoleOutput(&console).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Error().Msg("should not appear")
	assert.Empty(t, console.String())
}

func TestBuilder_JSONConsole(t *testing.T) {
	var console bytes.Buffer
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	l, err := NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(&console).Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Str("url", "https://example.com").Msg("Sending GET request")
	assert.Contains(t, console.String(), `"url":"https://example.com"`)
	assert.Contains(t, console.String(), `"message":"Sending GET request"`)
	assert.Equal(t, FormatJSON, l.Config().Format)
}

func TestBuilder_TextConsole(t *testing.T) {
	var console bytes.Buffer
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "info"
	cfg.LogFormat = "text"

	l, err := NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(&console).Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Msg("filtered")
	l.GetZerolog().Info().Msg("kept")
	assert.NotContains(t, console.String(), "filtered")
	assert.Contains(t, console.String(), "kept")
}

func TestBuilder_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "httpget.log")
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "info"
	cfg.LogFormat = "json"
	cfg.LogFile = logFile

	var console bytes.Buffer
	l, err := NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(&console).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("written to file")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestConfigConverter_InvalidLevelFallsBackToDisabled(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "loud"

	converted, err := NewConfigConverter().ConvertConfig(cfg)
	assert.Error(t, err)
	assert.Equal(t, zerolog.Disabled, converted.Level)
	assert.Equal(t, 100, converted.MaxSizeMB)
}

func TestParsers(t *testing.T) {
	level, err := NewLogLevelParser().ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, err = NewLogLevelParser().ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, level)

	assert.Equal(t, FormatJSON, NewLogFormatParser().ParseFormat("JSON"))
	assert.Equal(t, FormatConsole, NewLogFormatParser().ParseFormat("unknown"))
	assert.Equal(t, "text", FormatText.String())
}
