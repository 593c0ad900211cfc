package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exptwig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unspecified keys keep their default")
	assert.Equal(t, -1, cfg.AllocatorBudget)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exptwig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: loud\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	assert.Error(t, Validate(cfg))
}
