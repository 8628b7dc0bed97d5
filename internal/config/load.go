package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "pdfcli.yaml"

const envPrefix = "PDFCLI_"

// LoadYAML reads a config file. A missing path returns the zero Config.
func LoadYAML(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// EnvOverlay builds a Config from PDFCLI_* variables and the unipdf license
// variable. Unparseable numbers are reported rather than skipped.
func EnvOverlay(environ []string) (Config, error) {
	var over Config
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key == "UNIDOC_LICENSE_API_KEY" {
			over.LicenseKey = strings.TrimSpace(val)
			continue
		}
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		var err error
		switch strings.TrimPrefix(key, envPrefix) {
		case "LOG_LEVEL":
			over.LogLevel = val
		case "ASSUME_YES":
			var b bool
			if b, err = strconv.ParseBool(strings.TrimSpace(val)); err == nil {
				over.AssumeYes = &b
			}
		case "PASSWORD":
			over.Password = val
		case "RENDER_WIDTH":
			over.Render.Width, err = atoi(val)
		case "IMAGE_FORMAT":
			over.Render.Format = val
		case "JPEG_QUALITY":
			over.Render.JPEGQuality, err = atoi(val)
		case "WORKERS":
			over.Render.Workers, err = atoi(val)
		}
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
		}
	}
	return over, nil
}

// ResolvePath picks the config file: explicit flag, then PDFCLI_CONFIG, then
// DefaultFile when it exists.
func ResolvePath(flagPath string) string {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(envPrefix + "CONFIG")); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load runs the full chain: defaults, file, .env + environment, then over
// (usually built from flags), and validates the result.
func Load(path string, over Config) (Config, error) {
	cfg := Defaults()
	file, err := LoadYAML(path)
	if err != nil {
		return cfg, err
	}
	cfg = Merge(cfg, file)
	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	env, err := EnvOverlay(os.Environ())
	if err != nil {
		return cfg, err
	}
	cfg = Merge(cfg, env)
	cfg = Merge(cfg, over)
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
