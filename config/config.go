// Package config loads and saves clipdemo configuration as TOML.
//
// Distances in the file are device-independent units (dp). Scaled converts
// them to pixels using Density, the same way a host toolkit resolves
// dimension resources for a screen.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/clipdemo"
)

// ErrDensity is returned when Density is not a positive finite number.
var ErrDensity = errors.New("config: density must be positive")

// Config is the on-disk form of the demo configuration.
type Config struct {
	// Density is pixels per dp. Zero in a file means 1.
	Density float64         `toml:"density"`
	Probe   string          `toml:"probe"`
	Style   clipdemo.Style  `toml:"style"`
	Labels  clipdemo.Labels `toml:"labels"`
}

// Default returns the reference configuration at density 1.
func Default() Config {
	return Config{
		Density: 1,
		Probe:   clipdemo.ProbeInside.String(),
		Style:   clipdemo.DefaultStyle(),
		Labels:  clipdemo.DefaultLabels(),
	}
}

// Load reads a TOML file. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Decode reads TOML from r on top of Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.Density == 0 {
		cfg.Density = 1
	}
	return cfg, cfg.Validate()
}

// Write encodes cfg as TOML to w.
func Write(w io.Writer, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate checks density, probe and style. Style errors wrap
// clipdemo.ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.Density <= 0 || math.IsNaN(c.Density) || math.IsInf(c.Density, 0) {
		return fmt.Errorf("%w: got %g", ErrDensity, c.Density)
	}
	if _, ok := clipdemo.ParseProbe(c.Probe); !ok {
		return fmt.Errorf("%w: unknown probe %q", clipdemo.ErrInvalidConfiguration, c.Probe)
	}
	return c.Style.Validate()
}

// Scaled returns the style in pixels.
func (c Config) Scaled() clipdemo.Style {
	return c.Style.Scale(c.Density)
}

// Options returns the renderer options the configuration selects.
func (c Config) Options() []clipdemo.Option {
	probe, _ := clipdemo.ParseProbe(c.Probe)
	return []clipdemo.Option{clipdemo.WithProbe(probe)}
}

// NewRenderer builds a renderer from the scaled style and labels.
func (c Config) NewRenderer(opts ...clipdemo.Option) (*clipdemo.Renderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return clipdemo.NewRenderer(c.Scaled(), c.Labels, append(c.Options(), opts...)...)
}
