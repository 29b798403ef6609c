package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/wesen/linkgraph/internal/sim"
)

func TestParseDefaults(t *testing.T) {
	sc, err := Parse(strings.NewReader(`
[[step]]
gesture = "spawn"
at = [1, 2]
`))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Width != 800 || sc.Height != 600 || sc.DT != 1.0/60 {
		t.Errorf("defaults = %vx%v dt=%v", sc.Width, sc.Height, sc.DT)
	}
	if len(sc.Steps) != 1 || sc.Steps[0].Ticks != 1 {
		t.Fatalf("steps = %+v", sc.Steps)
	}
	g, ok := sc.Steps[0].ToGesture()
	if !ok || g.Kind != sim.PrimaryRelease || g.Pos.X != 1 || g.Pos.Y != 2 {
		t.Errorf("gesture = %+v, %v", g, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown gesture", "[[step]]\ngesture = \"wiggle\"\n"},
		{"unknown key", "speed = 3\n"},
		{"negative ticks", "[[step]]\nticks = -1\n"},
		{"bad toml", "[[step]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStepKindAcceptsFullNames(t *testing.T) {
	for _, name := range []string{"primary-press", "primary-drag", "primary-release", "secondary-release", "tertiary-release"} {
		if _, err := (Step{Gesture: name}).Kind(); err != nil {
			t.Errorf("Kind(%q): %v", name, err)
		}
	}
}

func TestRunConnectScript(t *testing.T) {
	sc, err := Load("testdata/connect.toml")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(sc, sim.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Passed() {
		t.Errorf("failures: %v", res.Failures)
	}
	if res.Ticks != 18 {
		t.Errorf("Ticks = %d, want 18", res.Ticks)
	}
	if res.Gestures != 8 {
		t.Errorf("Gestures = %d, want 8", res.Gestures)
	}

	var buf bytes.Buffer
	res.Print(&buf)
	if !strings.Contains(buf.String(), "expectations met") {
		t.Errorf("summary = %q", buf.String())
	}
}

func TestRunReportsFailures(t *testing.T) {
	sc, err := Parse(strings.NewReader(`
[[step]]
gesture = "spawn"
at = [0, 0]

[expect]
nodes = 2
edges = 0
`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(sc, sim.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if res.Passed() || len(res.Failures) != 1 || !strings.Contains(res.Failures[0], "nodes") {
		t.Errorf("failures = %v", res.Failures)
	}

	var buf bytes.Buffer
	res.Print(&buf)
	if !strings.Contains(buf.String(), "nodes: want 2, got 1") {
		t.Errorf("summary = %q", buf.String())
	}
}

func TestRunReturnsInvariantErrors(t *testing.T) {
	sc := &Script{Width: 0, Height: 0, DT: 0.016, Steps: []Step{{Ticks: 1}}}
	_, err := Run(sc, sim.DefaultSettings())
	var ie *sim.InvariantError
	if !errors.As(err, &ie) || !errors.Is(err, sim.ErrNoViewport) {
		t.Errorf("err = %v, want invariant error for missing viewport", err)
	}
}
