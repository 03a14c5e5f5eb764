package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/angularize/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	// An explicit path that does not exist is an error; an absent implicit
	// config is not. Exercise the implicit path from an empty directory.
	require.Error(t, err)

	t.Chdir(t.TempDir())

	cfg, err = config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultOutputDir, cfg.Output.Dir)
	assert.True(t, cfg.Output.Overwrite)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, config.LogFormatText, cfg.Logging.Format)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".angularize.yaml")

	content := []byte("output:\n  dir: ./generated\nlogging:\n  level: debug\n  format: json\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./generated", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, config.LogFormatJSON, cfg.Logging.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANGULARIZE_LOGGING_LEVEL", "warn")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() config.Config {
		return config.Config{
			Output:  config.OutputConfig{Dir: "./out"},
			Logging: config.LoggingConfig{Level: "info", Format: "text"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty output dir", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Output.Dir = ""
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidOutputDir)
	})

	t.Run("bad level", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Logging.Level = "loud"
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogLevel)
	})

	t.Run("bad format", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		cfg.Logging.Format = "xml"
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogFormat)
	})
}

func TestLogger_FormatSelection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := config.Config{
		Output:  config.OutputConfig{Dir: "./out"},
		Logging: config.LoggingConfig{Level: "info", Format: config.LogFormatJSON},
	}

	cfg.Logger(&buf).Info("hello", "k", "v")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestLogger_LevelGate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := config.Config{
		Output:  config.OutputConfig{Dir: "./out"},
		Logging: config.LoggingConfig{Level: "error", Format: config.LogFormatText},
	}

	logger := cfg.Logger(&buf)
	logger.Info("quiet")
	logger.Error("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
