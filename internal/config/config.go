// Package config resolves linkgraph's configuration.
//
// Sources are layered, later ones winning: built-in defaults, the TOML
// config file, LINKGRAPH_* environment variables, then command-line
// flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	koanftoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "linkgraph.toml"

// EnvPrefix prefixes every environment override, e.g.
// LINKGRAPH_NODE_RADIUS=16 or LINKGRAPH_VIEW_TICK_RATE=30.
const EnvPrefix = "LINKGRAPH_"

type Config struct {
	Node    NodeConfig    `koanf:"node" toml:"node"`
	Edge    EdgeConfig    `koanf:"edge" toml:"edge"`
	Canvas  CanvasConfig  `koanf:"canvas" toml:"canvas"`
	Physics PhysicsConfig `koanf:"physics" toml:"physics"`
	View    ViewConfig    `koanf:"view" toml:"view"`
	Log     LogConfig     `koanf:"log" toml:"log"`

	// Watch reloads styles when the config file changes.
	Watch bool `koanf:"watch" toml:"watch"`

	// File is the config file that was read, empty if none.
	File string `koanf:"-" toml:"-"`
}

type NodeConfig struct {
	Radius        float64 `koanf:"radius" toml:"radius"`
	Color         string  `koanf:"color" toml:"color"`
	SelectedColor string  `koanf:"selected_color" toml:"selected_color"`
	MovingColor   string  `koanf:"moving_color" toml:"moving_color"`
}

type EdgeConfig struct {
	Color string  `koanf:"color" toml:"color"`
	Width float64 `koanf:"width" toml:"width"`
}

type CanvasConfig struct {
	Background string `koanf:"background" toml:"background"`
	GridColor  string `koanf:"grid_color" toml:"grid_color"`
	Grid       bool   `koanf:"grid" toml:"grid"`
}

type PhysicsConfig struct {
	Enabled     bool    `koanf:"enabled" toml:"enabled"`
	Damping     float64 `koanf:"damping" toml:"damping"`
	Restitution float64 `koanf:"restitution" toml:"restitution"`
	Iterations  int     `koanf:"iterations" toml:"iterations"`
	Wobble      float64 `koanf:"wobble" toml:"wobble"`
	WobbleScale float64 `koanf:"wobble_scale" toml:"wobble_scale"`
	Seed        int64   `koanf:"seed" toml:"seed"`
}

// ViewConfig maps world units onto terminal cells. A cell is roughly
// twice as tall as it is wide, hence the default 8x16.
type ViewConfig struct {
	CellWidth  float64 `koanf:"cell_width" toml:"cell_width"`
	CellHeight float64 `koanf:"cell_height" toml:"cell_height"`
	TickRate   int     `koanf:"tick_rate" toml:"tick_rate"`
}

type LogConfig struct {
	File        string `koanf:"file" toml:"file"`
	Level       string `koanf:"level" toml:"level"`
	Development bool   `koanf:"development" toml:"development"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"node.radius":          12.0,
		"node.color":           "#F0F8FF",
		"node.selected_color":  "#00FFFF",
		"node.moving_color":    "#FFC0CB",
		"edge.color":           "#F0F8FF",
		"edge.width":           3.5,
		"canvas.background":    "#1A1A1A",
		"canvas.grid_color":    "#2A2A2A",
		"canvas.grid":          true,
		"physics.enabled":      true,
		"physics.damping":      4.0,
		"physics.restitution":  0.5,
		"physics.iterations":   4,
		"physics.wobble":       0.0,
		"physics.wobble_scale": 0.01,
		"physics.seed":         0,
		"view.cell_width":      8.0,
		"view.cell_height":     16.0,
		"view.tick_rate":       60,
		"log.file":             "",
		"log.level":            "info",
		"log.development":      false,
		"watch":                false,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		// Defaults are static; failing here is a bug.
		panic(err)
	}
	return cfg
}

// Load resolves the configuration. path names the config file; when it
// is empty, DefaultFile is read if present. Flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	cfgFile, err := resolveFile(path)
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), koanftoml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = cfgFile
	return &cfg, nil
}

// resolveFile returns the file to read. A missing explicit path is an
// error; a missing default file is not.
func resolveFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return path, nil
	}
	if _, err := os.Stat(DefaultFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config file: %w", err)
	}
	return DefaultFile, nil
}

// envKey maps LINKGRAPH_VIEW_TICK_RATE to view.tick_rate: the first
// underscore separates the section, the rest belong to the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return section
	}
	return section + "." + key
}

// flagKeys maps command-line flag names onto config keys. Flags not
// listed here are not configuration.
var flagKeys = map[string]string{
	"log-file":     "log.file",
	"log-level":    "log.level",
	"dev-log":      "log.development",
	"radius":       "node.radius",
	"tick-rate":    "view.tick_rate",
	"no-physics":   "physics.enabled",
	"watch":        "watch",
	"wobble":       "physics.wobble",
	"physics-seed": "physics.seed",
}

func flagKey(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		val := posflag.FlagVal(fs, f)
		if f.Name == "no-physics" {
			if b, ok := val.(bool); ok {
				val = !b
			}
		}
		return key, val
	}
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Node.Radius <= 0 {
		errs = append(errs, fmt.Errorf("node.radius must be positive, got %v", c.Node.Radius))
	}
	if c.Edge.Width < 0 {
		errs = append(errs, fmt.Errorf("edge.width must not be negative, got %v", c.Edge.Width))
	}
	if c.View.CellWidth <= 0 || c.View.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("view cell size must be positive, got %vx%v", c.View.CellWidth, c.View.CellHeight))
	}
	if c.View.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("view.tick_rate must be positive, got %d", c.View.TickRate))
	}
	if c.Physics.Damping < 0 {
		errs = append(errs, fmt.Errorf("physics.damping must not be negative, got %v", c.Physics.Damping))
	}
	if c.Physics.Restitution < 0 || c.Physics.Restitution > 1 {
		errs = append(errs, fmt.Errorf("physics.restitution must be in [0,1], got %v", c.Physics.Restitution))
	}
	for _, col := range []struct{ key, val string }{
		{"node.color", c.Node.Color},
		{"node.selected_color", c.Node.SelectedColor},
		{"node.moving_color", c.Node.MovingColor},
		{"edge.color", c.Edge.Color},
		{"canvas.background", c.Canvas.Background},
		{"canvas.grid_color", c.Canvas.GridColor},
	} {
		if !isHexColor(col.val) {
			errs = append(errs, fmt.Errorf("%s: %q is not a #RRGGBB color", col.key, col.val))
		}
	}
	return errors.Join(errs...)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// TOML renders the resolved configuration as a config file.
func (c *Config) TOML() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}
