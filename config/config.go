package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/ldtkscene/ldtk"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Project        string          `yaml:"project" toml:"project"`
	AssetRoot      string          `yaml:"asset_root" toml:"asset_root"`
	Selection      SelectionConfig `yaml:"selection" toml:"selection"`
	Window         WindowConfig    `yaml:"window" toml:"window"`
	Logging        LoggingConfig   `yaml:"logging" toml:"logging"`
	Assets         AssetsConfig    `yaml:"assets" toml:"assets"`
	Spawn          SpawnConfig     `yaml:"spawn" toml:"spawn"`
	ValidateSchema bool            `yaml:"validate_schema" toml:"validate_schema"`
}

// SelectionConfig picks the first level shown. A non-empty IID wins over
// the indices.
type SelectionConfig struct {
	World int    `yaml:"world" toml:"world"`
	Level int    `yaml:"level" toml:"level"`
	IID   string `yaml:"iid" toml:"iid"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // console or json
}

type AssetsConfig struct {
	MaxConcurrentLoads int  `yaml:"max_concurrent_loads" toml:"max_concurrent_loads"`
	Watch              bool `yaml:"watch" toml:"watch"`
}

type SpawnConfig struct {
	AbandonOnFailure bool `yaml:"abandon_on_failure" toml:"abandon_on_failure"`
}

// Defaults returns the configuration used for every field a file leaves out.
func Defaults() *Config {
	return &Config{
		AssetRoot: ".",
		Window: WindowConfig{
			Width:  960,
			Height: 540,
			Title:  "ldtkscene",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Assets: AssetsConfig{
			MaxConcurrentLoads: 4,
		},
		Spawn: SpawnConfig{
			AbandonOnFailure: true,
		},
	}
}

// Load reads a YAML or TOML file, chosen by extension, over Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or
// ".toml") over Defaults.
func Parse(ext string, data []byte) (*Config, error) {
	cfg := Defaults()
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// Validate rejects configurations the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Project) == "" {
		errs = append(errs, fmt.Errorf("%w: project path is empty", ErrInvalid))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Assets.MaxConcurrentLoads <= 0 {
		errs = append(errs, fmt.Errorf("%w: assets.max_concurrent_loads must be positive, got %d", ErrInvalid, c.Assets.MaxConcurrentLoads))
	}
	if c.Selection.IID == "" && (c.Selection.World < 0 || c.Selection.Level < 0) {
		errs = append(errs, fmt.Errorf("%w: negative selection indices", ErrInvalid))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format))
	}
	return errors.Join(errs...)
}

// InitialSelection is the level the viewer shows first.
func (c *Config) InitialSelection() ldtk.Selection {
	if c.Selection.IID != "" {
		return ldtk.ByIID(c.Selection.IID)
	}
	return ldtk.ByIndices(c.Selection.World, c.Selection.Level)
}
