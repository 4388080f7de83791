// Package config loads deployment-wide layout settings from YAML, .env and the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/ByLCY/quire/dsl"
	"github.com/ByLCY/quire/layout"
	"github.com/ByLCY/quire/markdown"
)

// Sentinel errors returned by Validate.
var (
	ErrInvalidGeometry = errors.New("invalid page geometry")
	ErrUnknownCleanup  = errors.New("unknown cleanup mode")
	ErrInvalidWorkers  = errors.New("workers must be positive")
)

// Environment variables that override the file.
const (
	EnvPage      = "QUIRE_PAGE"
	EnvOutputDir = "QUIRE_OUTPUT_DIR"
	EnvCleanup   = "QUIRE_CLEANUP"
	EnvWorkers   = "QUIRE_WORKERS"
)

// Config holds the settings shared by every document one deployment produces.
type Config struct {
	Page    string       `yaml:"page"` // e.g. "A4 portrait margin 20mm"
	Title   TitleConfig  `yaml:"title"`
	List    ListConfig   `yaml:"list"`
	Output  OutputConfig `yaml:"output"`
	Cleanup string       `yaml:"cleanup"` // "emphasis" (default) or "full"
	Workers int          `yaml:"workers"`
}

// TitleConfig controls the title block at the top of the first page.
type TitleConfig struct {
	Size   string `yaml:"size"`   // font size, e.g. "18pt"
	Height string `yaml:"height"` // vertical space reserved, e.g. "12mm"
}

// ListConfig controls bullet rendering.
type ListConfig struct {
	Indent string `yaml:"indent"`
}

// OutputConfig controls where PDFs are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Page:    "A4 portrait margin 20mm",
		Title:   TitleConfig{Size: "18pt", Height: "12mm"},
		List:    ListConfig{Indent: "5mm"},
		Output:  OutputConfig{Dir: "."},
		Cleanup: string(markdown.CleanupEmphasis),
		Workers: 4,
	}
}

// Load reads .env (if present), then the YAML file at path (skipped when empty),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPage); v != "" {
		c.Page = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv(EnvCleanup); v != "" {
		c.Cleanup = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(ErrInvalidWorkers, "%s=%q", EnvWorkers, v)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks every field without building anything.
func (c *Config) Validate() error {
	if _, err := c.Geometry(); err != nil {
		return err
	}
	if _, err := markdown.ParseCleanupMode(c.Cleanup); err != nil {
		return errors.Wrap(ErrUnknownCleanup, err.Error())
	}
	if c.Workers <= 0 {
		return errors.Wrapf(ErrInvalidWorkers, "got %d", c.Workers)
	}
	return nil
}

// CleanupMode returns the parsed cleanup mode, falling back to emphasis-only.
func (c *Config) CleanupMode() markdown.CleanupMode {
	mode, err := markdown.ParseCleanupMode(c.Cleanup)
	if err != nil {
		return markdown.CleanupEmphasis
	}
	return mode
}

// Geometry resolves the page spec and the title/list lengths into a layout.Geometry.
func (c *Config) Geometry() (layout.Geometry, error) {
	spec, err := dsl.ParsePage(c.Page)
	if err != nil {
		return layout.Geometry{}, errors.Wrap(ErrInvalidGeometry, err.Error())
	}
	geo, err := layout.ResolveGeometry(spec)
	if err != nil {
		return layout.Geometry{}, errors.Wrap(ErrInvalidGeometry, err.Error())
	}

	if c.Title.Size != "" {
		l, ok := layout.ParseLength(c.Title.Size)
		if !ok || l.ToPT() <= 0 {
			return layout.Geometry{}, errors.Wrapf(ErrInvalidGeometry, "title.size %q", c.Title.Size)
		}
		geo.TitleFontSize = l.ToPT()
	}
	if c.Title.Height != "" {
		l, ok := layout.ParseLength(c.Title.Height)
		if !ok || l.ToMM() < 0 {
			return layout.Geometry{}, errors.Wrapf(ErrInvalidGeometry, "title.height %q", c.Title.Height)
		}
		geo.TitleBlockHeight = l.ToMM()
	}
	if c.List.Indent != "" {
		l, ok := layout.ParseLength(c.List.Indent)
		if !ok || l.ToMM() < 0 {
			return layout.Geometry{}, errors.Wrapf(ErrInvalidGeometry, "list.indent %q", c.List.Indent)
		}
		geo.ListIndent = l.ToMM()
	}

	if geo.ContentWidth()-geo.ListIndent <= 0 || geo.ContentBottom() <= geo.ContentTop() {
		return layout.Geometry{}, errors.Wrapf(ErrInvalidGeometry, "margins leave no room on %gx%gmm", geo.Width, geo.Height)
	}
	return geo, nil
}
