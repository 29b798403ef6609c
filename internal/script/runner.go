package script

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wesen/linkgraph/internal/sim"
)

var (
	title  = color.New(color.FgHiGreen, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
)

// Result is the outcome of a replay.
type Result struct {
	Name       string
	Doc        string
	Ticks      uint64
	Gestures   int
	Events     int
	Nodes      int
	Edges      int
	Components int
	Moving     bool

	// Failures lists expectations that did not hold.
	Failures []string

	// Sim is the simulation in its final state.
	Sim *sim.Sim
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run replays sc against a fresh simulation. An engine invariant
// violation aborts the replay and is returned as a *sim.InvariantError.
func Run(sc *Script, settings sim.Settings, opts ...sim.Option) (res *Result, err error) {
	s := sim.New(settings, opts...)
	s.Resize(sc.Width, sc.Height)
	res = &Result{Name: sc.Name, Doc: s.ID().String(), Sim: s}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var ie *sim.InvariantError
		if e, ok := r.(error); ok && errors.As(e, &ie) {
			res, err = nil, ie
			return
		}
		panic(r)
	}()

	for _, st := range sc.Steps {
		if g, ok := st.ToGesture(); ok {
			s.Queue(g)
		}
		for i := 0; i < st.Ticks; i++ {
			rep := s.Tick(sc.DT)
			res.Gestures += rep.Gestures
			res.Events += rep.Events
		}
	}

	res.Ticks = s.TickCount()
	res.Nodes = s.Nodes().Len()
	res.Edges = s.Edges().Len()
	res.Components = s.Components()
	res.Moving = s.Moving()
	res.check(sc.Expect)
	return res, nil
}

func (r *Result) check(e *Expect) {
	if e == nil {
		return
	}
	checkInt := func(name string, want *int, got int) {
		if want != nil && *want != got {
			r.Failures = append(r.Failures, fmt.Sprintf("%s: want %d, got %d", name, *want, got))
		}
	}
	checkInt("nodes", e.Nodes, r.Nodes)
	checkInt("edges", e.Edges, r.Edges)
	checkInt("components", e.Components, r.Components)
	if e.Moving != nil && *e.Moving != r.Moving {
		r.Failures = append(r.Failures, fmt.Sprintf("moving: want %v, got %v", *e.Moving, r.Moving))
	}
}

// Print writes a human readable summary.
func (r *Result) Print(w io.Writer) {
	title.Fprintf(w, "%s\n", r.Name)
	subtle.Fprintf(w, "  doc %s\n", r.Doc)
	fmt.Fprintf(w, "  ticks %d  gestures %d  events %d\n", r.Ticks, r.Gestures, r.Events)
	fmt.Fprintf(w, "  nodes %d  edges %d  components %d\n", r.Nodes, r.Edges, r.Components)
	if r.Passed() {
		good.Fprintln(w, "  ✓ expectations met")
		return
	}
	for _, f := range r.Failures {
		bad.Fprintf(w, "  ✗ %s\n", f)
	}
}
