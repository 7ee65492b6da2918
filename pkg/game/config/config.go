// Package config holds runtime settings and persisted preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file read when no other path is given.
const DefaultPath = "batteryrush.yaml"

// Renderer backends.
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
	RendererCell   = "cell"
)

// Tile size constraints
const (
	MinTileSize     = 16
	MaxTileSize     = 128
	TileSizeStep    = 8
	DefaultTileSize = 32
)

// Config controls runtime behavior.
type Config struct {
	Campaign  string  `yaml:"campaign"`
	AssetDir  string  `yaml:"asset_dir"`
	Renderer  string  `yaml:"renderer"`
	TileSize  int     `yaml:"tile_size"`
	Volume    float64 `yaml:"volume"`
	Muted     bool    `yaml:"muted"`
	LogPath   string  `yaml:"log_path"`
	LogLevel  string  `yaml:"log_level"`
	Locale    string  `yaml:"locale"`
	LocaleDir string  `yaml:"locale_dir"`

	path string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Campaign:  "levels.yaml",
		AssetDir:  ".",
		Renderer:  RendererEbiten,
		TileSize:  DefaultTileSize,
		Volume:    0.8,
		LogPath:   "batteryrush.log",
		LogLevel:  "info",
		Locale:    "en_GB",
		LocaleDir: "locales",
		path:      DefaultPath,
	}
}

// Load reads preferences from path on top of the defaults, then applies
// BATTERYRUSH_* environment overrides (a .env file is honoured). A missing
// preferences file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		cfg.path = path
	}

	b, err := os.ReadFile(cfg.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", cfg.path).Debug("No preferences file, using defaults")
	case err != nil:
		return cfg, fmt.Errorf("read preferences %s: %w", cfg.path, err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse preferences %s: %w", cfg.path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Could not load .env: %v", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"BATTERYRUSH_CAMPAIGN":  &c.Campaign,
		"BATTERYRUSH_ASSET_DIR": &c.AssetDir,
		"BATTERYRUSH_RENDERER":  &c.Renderer,
		"BATTERYRUSH_LOG_PATH":  &c.LogPath,
		"BATTERYRUSH_LOG_LEVEL": &c.LogLevel,
		"BATTERYRUSH_LOCALE":    &c.Locale,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("BATTERYRUSH_MUTED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BATTERYRUSH_MUTED: %w", err)
		}
		c.Muted = b
	}
	if v, ok := lookup("BATTERYRUSH_VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("BATTERYRUSH_VOLUME: %w", err)
		}
		c.Volume = f
	}
	if v, ok := lookup("BATTERYRUSH_TILE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BATTERYRUSH_TILE_SIZE: %w", err)
		}
		c.TileSize = n
	}
	return nil
}

// Validate checks values and fills in blanks with defaults.
func (c *Config) Validate() error {
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
	switch c.Renderer {
	case "":
		c.Renderer = RendererEbiten
	case RendererEbiten, RendererTUI, RendererCell:
	default:
		return fmt.Errorf("invalid renderer %q", c.Renderer)
	}

	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %v out of range [0, 1]", c.Volume)
	}

	if c.TileSize == 0 {
		c.TileSize = DefaultTileSize
	}
	c.TileSize = ClampTileSize(c.TileSize)

	if c.Campaign == "" {
		c.Campaign = Default().Campaign
	}
	if c.AssetDir == "" {
		c.AssetDir = "."
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Locale == "" {
		c.Locale = Default().Locale
	}
	if c.LocaleDir == "" {
		c.LocaleDir = Default().LocaleDir
	}
	return nil
}

// ClampTileSize limits n to the supported tile sizes.
func ClampTileSize(n int) int {
	if n < MinTileSize {
		return MinTileSize
	}
	if n > MaxTileSize {
		return MaxTileSize
	}
	return n
}

// SetTileSize stores a new tile size and saves the preferences file.
func (c *Config) SetTileSize(n int) error {
	c.TileSize = ClampTileSize(n)
	return c.Save()
}

// Path returns the preferences file this config reads from and saves to.
func (c *Config) Path() string {
	if c.path == "" {
		return DefaultPath
	}
	return c.path
}

// Save writes the preferences file.
func (c *Config) Save() error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Path(), b, 0o644); err != nil {
		return fmt.Errorf("save preferences %s: %w", c.Path(), err)
	}
	return nil
}
