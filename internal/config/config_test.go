package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `reader: cdl
format: json
log_format: json
metrics_textfile: /var/lib/node_exporter/geoms.prom
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "cdl", cfg.Reader)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/var/lib/node_exporter/geoms.prom", cfg.MetricsTextfile)
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("format: yaml\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Reader)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("reader: [unclosed\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvReader:          "yaml",
		EnvLogFormat:       "json",
		EnvMetricsTextfile: "out.prom",
		EnvFormat:          "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)

	assert.Equal(t, "yaml", cfg.Reader)
	assert.Equal(t, "text", cfg.Format, "empty variables do not override")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "out.prom", cfg.MetricsTextfile)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := &Config{Reader: "", Format: "xml", LogFormat: "syslog"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, geoms.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "reader must not be empty")
	assert.Contains(t, err.Error(), `format "xml"`)
	assert.Contains(t, err.Error(), `log_format "syslog"`)
}
