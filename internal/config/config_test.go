package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValid(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
	assert.False(t, Defaults().Yes())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pdfcli.yaml")
	body := "log_level: debug\nassume_yes: true\nrender:\n  width: 800\n  format: jpg\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	file, err := LoadYAML(p)
	require.NoError(t, err)
	cfg := Merge(Defaults(), file)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Yes())
	assert.Equal(t, 800, cfg.Render.Width)
	assert.Equal(t, FormatJPEG, cfg.Render.Format)
	assert.Equal(t, 90, cfg.Render.JPEGQuality)
	require.NoError(t, Validate(cfg))
}

func TestLoadYAMLUnknownField(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("colour: blue\n"), 0o644))
	_, err := LoadYAML(p)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadYAMLEmpty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	cfg, err := LoadYAML(p)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestEnvOverlay(t *testing.T) {
	over, err := EnvOverlay([]string{
		"PDFCLI_LOG_LEVEL=ERROR",
		"PDFCLI_ASSUME_YES=1",
		"PDFCLI_WORKERS=6",
		"PDFCLI_PASSWORD=12345",
		"UNIDOC_LICENSE_API_KEY= key ",
		"HOME=/root",
	})
	require.NoError(t, err)
	cfg := Merge(Defaults(), over)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Yes())
	assert.Equal(t, 6, cfg.Render.Workers)
	assert.Equal(t, "12345", cfg.Password)
	assert.Equal(t, "key", cfg.LicenseKey)
}

func TestEnvOverlayBadNumber(t *testing.T) {
	_, err := EnvOverlay([]string{"PDFCLI_RENDER_WIDTH=wide"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMergeKeepsExplicitFalse(t *testing.T) {
	yes, no := true, false
	cfg := Merge(Config{AssumeYes: &yes}, Config{AssumeYes: &no})
	assert.False(t, cfg.Yes())
	cfg = Merge(Config{AssumeYes: &yes}, Config{})
	assert.True(t, cfg.Yes())
}

func TestValidateErrors(t *testing.T) {
	cases := map[string]func(*Config){
		"level":   func(c *Config) { c.LogLevel = "loud" },
		"format":  func(c *Config) { c.Render.Format = "gif" },
		"width":   func(c *Config) { c.Render.Width = -1 },
		"quality": func(c *Config) { c.Render.JPEGQuality = 101 },
		"workers": func(c *Config) { c.Render.Workers = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			assert.ErrorIs(t, Validate(cfg), ErrInvalid)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("PDFCLI_CONFIG", "")
	assert.Equal(t, "given.yaml", ResolvePath(" given.yaml "))
	t.Setenv("PDFCLI_CONFIG", "from-env.yaml")
	assert.Equal(t, "from-env.yaml", ResolvePath(""))
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
