package physics

import (
	"math"
	"testing"

	"github.com/wesen/linkgraph/internal/config"
	"github.com/wesen/linkgraph/internal/sim"
	"github.com/wesen/linkgraph/pkg/graphmodel"
	"gonum.org/v1/gonum/spatial/r2"
)

const dt = 1.0 / 60

func disc(id int, x, y float64) sim.Body {
	return sim.Body{ID: graphmodel.NodeID(id), Pos: r2.Vec{X: x, Y: y}, Radius: 12}
}

func motionFor(t *testing.T, ms []sim.Motion, id int) sim.Motion {
	t.Helper()
	for _, m := range ms {
		if m.ID == graphmodel.NodeID(id) {
			return m
		}
	}
	t.Fatalf("no motion for body %d", id)
	return sim.Motion{}
}

func TestRestingBodyReportsZeroVelocity(t *testing.T) {
	s := New(DefaultConfig())
	ms := s.Step(dt, []sim.Body{disc(0, 0, 0), disc(1, 100, 0)})
	for _, m := range ms {
		if m.Vel != (r2.Vec{}) {
			t.Errorf("body %d Vel = %v, want zero", m.ID, m.Vel)
		}
	}
}

func TestOverlapSeparates(t *testing.T) {
	s := New(DefaultConfig())
	ms := s.Step(dt, []sim.Body{disc(0, 0, 0), disc(1, 10, 0)})
	a, b := motionFor(t, ms, 0), motionFor(t, ms, 1)

	if d := r2.Norm(r2.Sub(b.Pos, a.Pos)); d < 24-1e-6 {
		t.Errorf("distance after step = %v, want >= 24", d)
	}
	if a.Pos.X >= 0 || b.Pos.X <= 10 {
		t.Errorf("bodies not pushed apart symmetrically: %v %v", a.Pos, b.Pos)
	}
	if a.Vel == (r2.Vec{}) || b.Vel == (r2.Vec{}) {
		t.Error("separated bodies must report motion")
	}
}

func TestTouchingBodiesSettle(t *testing.T) {
	s := New(DefaultConfig())
	bodies := []sim.Body{disc(0, 0, 0), disc(1, 10, 0)}
	for i := 0; i < 200; i++ {
		for _, m := range s.Step(dt, bodies) {
			bodies[int(m.ID)].Pos = m.Pos
		}
	}
	for _, m := range s.Step(dt, bodies) {
		if m.Vel != (r2.Vec{}) {
			t.Errorf("body %d still moving after settling: %v", m.ID, m.Vel)
		}
	}
}

func TestKinematicBodyIsImmovable(t *testing.T) {
	s := New(DefaultConfig())
	k := disc(0, 0, 0)
	k.Kinematic = true
	ms := s.Step(dt, []sim.Body{k, disc(1, 5, 0)})

	km := motionFor(t, ms, 0)
	if km.Pos != k.Pos {
		t.Errorf("kinematic body moved to %v", km.Pos)
	}
	d := motionFor(t, ms, 1)
	if math.Abs(d.Pos.X-24) > 1e-9 {
		t.Errorf("dynamic body at %v, want pushed to x=24", d.Pos)
	}
}

func TestKinematicVelocityFromDisplacement(t *testing.T) {
	s := New(DefaultConfig())
	k := disc(0, 0, 0)
	k.Kinematic = true
	s.Step(dt, []sim.Body{k})
	k.Pos = r2.Vec{X: 1}
	ms := s.Step(dt, []sim.Body{k})
	if got := motionFor(t, ms, 0).Vel; math.Abs(got.X-60) > 1e-9 {
		t.Errorf("kinematic Vel = %v, want (60,0)", got)
	}
}

func TestDampingDecaysVelocity(t *testing.T) {
	s := New(DefaultConfig())
	s.vel[0] = r2.Vec{X: 100}
	s.Step(dt, []sim.Body{disc(0, 0, 0)})
	want := 100 / (1 + dt*4.0)
	if got := s.Velocity(0).X; math.Abs(got-want) > 1e-9 {
		t.Errorf("Velocity = %v, want %v", got, want)
	}
}

func TestRestitutionBounces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 0
	s := New(cfg)
	s.vel[0] = r2.Vec{X: 60}
	s.Step(dt, []sim.Body{disc(0, 0, 0), disc(1, 24, 0)})

	// Equal masses, e=0.5: approach speed 60 splits into 15 and 45.
	if got := s.Velocity(0).X; math.Abs(got-15) > 1e-9 {
		t.Errorf("striker Vel = %v, want 15", got)
	}
	if got := s.Velocity(1).X; math.Abs(got-45) > 1e-9 {
		t.Errorf("target Vel = %v, want 45", got)
	}
}

func TestPrunesRemovedBodies(t *testing.T) {
	s := New(DefaultConfig())
	s.Step(dt, []sim.Body{disc(0, 0, 0), disc(1, 100, 0)})
	if s.Tracked() != 2 {
		t.Fatalf("Tracked = %d, want 2", s.Tracked())
	}
	s.Step(dt, []sim.Body{disc(1, 100, 0)})
	if s.Tracked() != 1 {
		t.Errorf("Tracked = %d after removal, want 1", s.Tracked())
	}
}

func TestWobbleMovesRestingBody(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wobble = 5000
	cfg.SleepSpeed = 0
	s := New(cfg)
	moved := false
	b := disc(0, 37, -11)
	for i := 0; i < 10 && !moved; i++ {
		m := s.Step(dt, []sim.Body{b})[0]
		moved = m.Vel != (r2.Vec{})
		b.Pos = m.Pos
	}
	if !moved {
		t.Error("wobble never moved the body")
	}
}

func TestZeroStep(t *testing.T) {
	s := New(DefaultConfig())
	if ms := s.Step(0, []sim.Body{disc(0, 0, 0)}); ms != nil {
		t.Errorf("Step(0) = %v, want nil", ms)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.Default().Physics)
	if cfg.Damping != 4 || cfg.Restitution != 0.5 || cfg.Iterations != 4 {
		t.Errorf("FromConfig(defaults) = %+v", cfg)
	}
	if cfg.SleepSpeed != DefaultConfig().SleepSpeed {
		t.Errorf("SleepSpeed = %v, want default", cfg.SleepSpeed)
	}

	cfg = FromConfig(config.PhysicsConfig{Damping: 1, Iterations: 0, WobbleScale: 0})
	if cfg.Iterations != 4 || cfg.WobbleScale != 0.01 {
		t.Errorf("zero values did not fall back to defaults: %+v", cfg)
	}
}
