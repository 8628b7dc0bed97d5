package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is resolved once at startup and passed down to the commands.
// YAML keys are snake_case; unknown keys fail the load.
type Config struct {
	LogLevel   string `yaml:"log_level"`
	LicenseKey string `yaml:"license_key"`
	// AssumeYes skips overwrite confirmations. nil means not set.
	AssumeYes *bool  `yaml:"assume_yes,omitempty"`
	Password  string `yaml:"-"`
	Render    Render `yaml:"render"`
}

// Render holds the pdf2img defaults.
type Render struct {
	Width       int    `yaml:"width"`
	Format      string `yaml:"format"`
	JPEGQuality int    `yaml:"jpeg_quality"`
	Workers     int    `yaml:"workers"`
}

const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

var ErrInvalid = errors.New("invalid config")

// Defaults returns the built-in configuration.
func Defaults() Config {
	no := false
	return Config{
		LogLevel:  "warn",
		AssumeYes: &no,
		Render: Render{
			Width:       1400,
			Format:      FormatPNG,
			JPEGQuality: 90,
			Workers:     3,
		},
	}
}

// Yes reports whether overwrite prompts are skipped.
func (c Config) Yes() bool { return c.AssumeYes != nil && *c.AssumeYes }

// Merge overlays the non-zero fields of over onto base.
func Merge(base, over Config) Config {
	out := base
	if s := strings.TrimSpace(over.LogLevel); s != "" {
		out.LogLevel = strings.ToLower(s)
	}
	if over.LicenseKey != "" {
		out.LicenseKey = over.LicenseKey
	}
	if over.AssumeYes != nil {
		v := *over.AssumeYes
		out.AssumeYes = &v
	}
	if over.Password != "" {
		out.Password = over.Password
	}
	if over.Render.Width != 0 {
		out.Render.Width = over.Render.Width
	}
	if s := strings.TrimSpace(over.Render.Format); s != "" {
		out.Render.Format = normalizeFormat(s)
	}
	if over.Render.JPEGQuality != 0 {
		out.Render.JPEGQuality = over.Render.JPEGQuality
	}
	if over.Render.Workers != 0 {
		out.Render.Workers = over.Render.Workers
	}
	return out
}

func normalizeFormat(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "jpg" {
		return FormatJPEG
	}
	return s
}

// Validate rejects values the commands cannot act on.
func Validate(cfg Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug|info|warn|error)", ErrInvalid, cfg.LogLevel)
	}
	return cfg.Render.Validate()
}

// Validate checks the render settings on their own, for commands that
// override them per invocation.
func (r Render) Validate() error {
	switch r.Format {
	case FormatPNG, FormatJPEG:
	default:
		return fmt.Errorf("%w: render.format %q (want png|jpeg)", ErrInvalid, r.Format)
	}
	if r.Width <= 0 {
		return fmt.Errorf("%w: render.width must be positive, got %d", ErrInvalid, r.Width)
	}
	if r.JPEGQuality < 1 || r.JPEGQuality > 100 {
		return fmt.Errorf("%w: render.jpeg_quality must be 1-100, got %d", ErrInvalid, r.JPEGQuality)
	}
	if r.Workers <= 0 {
		return fmt.Errorf("%w: render.workers must be positive, got %d", ErrInvalid, r.Workers)
	}
	return nil
}
