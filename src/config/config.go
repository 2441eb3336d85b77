// Package config loads the optional YAML settings file of the plotting tools.
//
// Every key is optional:
//
//	renderer: gonum        # or gochart
//	width: 640             # chart width in pixels
//	height: 480            # chart height in pixels
//	trial_caption: false   # stamp "trials per point: min-max" on each chart
//	log_level: info        # debug|info|warn|error
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nseay/ns-3-DCTCP-plus/src/logging"
	"github.com/nseay/ns-3-DCTCP-plus/src/render"
)

// Config holds rendering and logging settings. The trace directory and protocol
// filter are command-line only.
type Config struct {
	Renderer     string `yaml:"renderer"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	TrialCaption bool   `yaml:"trial_caption"`
	LogLevel     string `yaml:"log_level"`
}

const (
	DefaultWidth  = 640
	DefaultHeight = 480
	// MaxDimension bounds width and height to keep a typo from allocating a huge image.
	MaxDimension = 10000
)

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Renderer: render.DefaultRenderer,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		LogLevel: "info",
	}
}

// Load reads path on top of Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result. Unknown keys
// are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if !render.Known(c.Renderer) {
		return fmt.Errorf("%w: %q", render.ErrUnknownRenderer, c.Renderer)
	}
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("chart size %dx%d out of range (1..%d)", c.Width, c.Height, MaxDimension)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
