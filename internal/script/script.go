// Package script replays gesture scripts against a headless simulation.
//
// A script is a TOML file:
//
//	name = "connect two nodes"
//	width = 800
//	height = 600
//
//	[[step]]
//	gesture = "spawn"
//	at = [100, 100]
//
//	[[step]]
//	ticks = 30   # run 30 ticks without input
//
//	[expect]
//	nodes = 2
//	edges = 1
//
// Every step queues its gesture (if any) and then runs Ticks ticks,
// one by default.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wesen/linkgraph/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
)

type Script struct {
	Name   string  `toml:"name"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// DT is the tick length in seconds.
	DT      float64 `toml:"dt"`
	Physics bool    `toml:"physics"`
	Steps   []Step  `toml:"step"`
	Expect  *Expect `toml:"expect"`
}

type Step struct {
	Gesture string     `toml:"gesture"`
	At      [2]float64 `toml:"at"`
	Ticks   int        `toml:"ticks"`
}

// Expect lists the checks made after the last step. Unset fields are
// not checked.
type Expect struct {
	Nodes      *int  `toml:"nodes"`
	Edges      *int  `toml:"edges"`
	Components *int  `toml:"components"`
	Moving     *bool `toml:"moving"`
}

// aliases are the short gesture names accepted in scripts.
var aliases = map[string]sim.GestureKind{
	"press":   sim.PrimaryPress,
	"drag":    sim.PrimaryDrag,
	"release": sim.PrimaryRelease,
	"spawn":   sim.PrimaryRelease,
	"delete":  sim.SecondaryRelease,
	"select":  sim.TertiaryRelease,
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Parse decodes a script and fills in defaults. Unknown keys are
// rejected.
func Parse(r io.Reader) (*Script, error) {
	var sc Script
	md, err := toml.NewDecoder(r).Decode(&sc)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if sc.Width == 0 {
		sc.Width = 800
	}
	if sc.Height == 0 {
		sc.Height = 600
	}
	if sc.DT == 0 {
		sc.DT = 1.0 / 60
	}
	if sc.Width < 0 || sc.Height < 0 || sc.DT < 0 {
		return nil, errors.New("width, height and dt must be positive")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		if st.Ticks < 0 {
			return nil, fmt.Errorf("step %d: negative ticks", i+1)
		}
		if st.Ticks == 0 {
			st.Ticks = 1
		}
		if st.Gesture == "" {
			continue
		}
		if _, err := st.Kind(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &sc, nil
}

// Kind resolves the step's gesture name.
func (s Step) Kind() (sim.GestureKind, error) {
	if k, ok := aliases[s.Gesture]; ok {
		return k, nil
	}
	return sim.ParseGestureKind(s.Gesture)
}

// ToGesture returns the gesture the step queues, if any.
func (s Step) ToGesture() (sim.Gesture, bool) {
	if s.Gesture == "" {
		return sim.Gesture{}, false
	}
	k, err := s.Kind()
	if err != nil {
		return sim.Gesture{}, false
	}
	return sim.Gesture{Kind: k, Pos: r2.Vec{X: s.At[0], Y: s.At[1]}}, true
}
