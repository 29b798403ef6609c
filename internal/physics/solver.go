// Package physics is the collision solver behind the simulation's
// physics stage. Nodes are equal-mass discs in a zero-gravity plane:
// overlapping discs are pushed apart and exchange momentum along the
// contact normal, velocities decay with linear damping, and the node
// being dragged acts as an immovable kinematic body.
package physics

import (
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/wesen/linkgraph/internal/config"
	"github.com/wesen/linkgraph/internal/sim"
	"github.com/wesen/linkgraph/pkg/graphmodel"
	"gonum.org/v1/gonum/spatial/r2"
)

// Config holds the solver parameters.
type Config struct {
	// Damping is the linear damping coefficient: v *= 1/(1+dt*Damping).
	Damping float64
	// Restitution is the bounciness of a contact, 0 (plastic) to 1.
	Restitution float64
	// Iterations is the number of overlap resolution passes per step.
	Iterations int
	// SleepSpeed zeroes velocities below this magnitude so resting
	// bodies stop reporting motion.
	SleepSpeed float64
	// Wobble scales an optional noise force. Zero disables it.
	Wobble      float64
	WobbleScale float64
	Seed        int64
}

// DefaultConfig returns the defaults used by the application.
func DefaultConfig() Config {
	return Config{
		Damping:     4.0,
		Restitution: 0.5,
		Iterations:  4,
		SleepSpeed:  0.5,
		WobbleScale: 0.01,
	}
}

// FromConfig builds solver parameters from the [physics] config section.
func FromConfig(pc config.PhysicsConfig) Config {
	c := DefaultConfig()
	c.Damping = pc.Damping
	c.Restitution = pc.Restitution
	if pc.Iterations > 0 {
		c.Iterations = pc.Iterations
	}
	c.Wobble = pc.Wobble
	if pc.WobbleScale > 0 {
		c.WobbleScale = pc.WobbleScale
	}
	c.Seed = pc.Seed
	return c
}

// Solver implements sim.Physics. It keeps per-body velocity between
// steps and forgets bodies as soon as they stop being passed in.
type Solver struct {
	cfg   Config
	noise opensimplex.Noise
	t     float64

	vel  map[graphmodel.NodeID]r2.Vec
	last map[graphmodel.NodeID]r2.Vec // kinematic positions from the previous step
}

var _ sim.Physics = (*Solver)(nil)

// New creates a solver.
func New(cfg Config) *Solver {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	return &Solver{
		cfg:   cfg,
		noise: opensimplex.New(cfg.Seed),
		vel:   make(map[graphmodel.NodeID]r2.Vec),
		last:  make(map[graphmodel.NodeID]r2.Vec),
	}
}

// SetConfig swaps the parameters, keeping body state.
func (s *Solver) SetConfig(cfg Config) {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	if cfg.Seed != s.cfg.Seed {
		s.noise = opensimplex.New(cfg.Seed)
	}
	s.cfg = cfg
}

// Velocity returns the body's current velocity.
func (s *Solver) Velocity(id graphmodel.NodeID) r2.Vec {
	return s.vel[id]
}

// Tracked returns the number of bodies the solver keeps state for.
func (s *Solver) Tracked() int {
	return len(s.vel)
}

// contactSlop is the penetration depth below which a contact is ignored,
// so discs left exactly touching do not creep apart forever.
const contactSlop = 1e-6

type body struct {
	sim.Body
	start r2.Vec
	vel   r2.Vec
}

// Step advances every body by dt seconds. The returned Vel is the
// displacement over the step divided by dt, so a body the solver did
// not move reports a zero velocity.
func (s *Solver) Step(dt float64, bodies []sim.Body) []sim.Motion {
	s.prune(bodies)
	if dt <= 0 || len(bodies) == 0 {
		return nil
	}
	s.t += dt

	bs := make([]body, len(bodies))
	for i, b := range bodies {
		bs[i] = body{Body: b, start: b.Pos}
		if b.Kinematic {
			if prev, ok := s.last[b.ID]; ok {
				bs[i].vel = r2.Scale(1/dt, r2.Sub(b.Pos, prev))
			}
			s.last[b.ID] = b.Pos
			continue
		}
		delete(s.last, b.ID)
		bs[i].vel = s.integrate(dt, b, s.vel[b.ID])
		bs[i].Pos = r2.Add(b.Pos, r2.Scale(dt, bs[i].vel))
	}

	for it := 0; it < s.cfg.Iterations; it++ {
		if !s.resolve(bs) {
			break
		}
	}

	out := make([]sim.Motion, len(bs))
	for i := range bs {
		b := &bs[i]
		if b.Kinematic {
			delete(s.vel, b.ID)
			out[i] = sim.Motion{ID: b.ID, Vel: b.vel, Pos: b.start}
			continue
		}
		if r2.Norm(b.vel) < s.cfg.SleepSpeed {
			b.vel = r2.Vec{}
		}
		s.vel[b.ID] = b.vel
		out[i] = sim.Motion{
			ID:  b.ID,
			Vel: r2.Scale(1/dt, r2.Sub(b.Pos, b.start)),
			Pos: b.Pos,
		}
	}
	return out
}

// integrate applies the wobble force and damping to a dynamic body.
func (s *Solver) integrate(dt float64, b sim.Body, v r2.Vec) r2.Vec {
	if s.cfg.Wobble != 0 {
		sc := s.cfg.WobbleScale
		f := r2.Vec{
			X: s.noise.Eval3(b.Pos.X*sc, b.Pos.Y*sc, s.t),
			Y: s.noise.Eval3(b.Pos.X*sc+100, b.Pos.Y*sc+100, s.t),
		}
		v = r2.Add(v, r2.Scale(dt*s.cfg.Wobble, f))
	}
	return r2.Scale(1/(1+dt*s.cfg.Damping), v)
}

// resolve runs one pass over all pairs. It reports whether any pair
// overlapped.
func (s *Solver) resolve(bs []body) bool {
	hit := false
	for i := 0; i < len(bs); i++ {
		for j := i + 1; j < len(bs); j++ {
			a, b := &bs[i], &bs[j]
			if a.Kinematic && b.Kinematic {
				continue
			}
			d := r2.Sub(b.Pos, a.Pos)
			dist := r2.Norm(d)
			overlap := a.Radius + b.Radius - dist
			if overlap <= contactSlop {
				continue
			}
			hit = true

			n := r2.Vec{X: 1}
			if dist > 1e-9 {
				n = r2.Scale(1/dist, d)
			}

			// Position correction, split by mobility.
			wa, wb := 0.5, 0.5
			switch {
			case a.Kinematic:
				wa, wb = 0, 1
			case b.Kinematic:
				wa, wb = 1, 0
			}
			a.Pos = r2.Sub(a.Pos, r2.Scale(overlap*wa, n))
			b.Pos = r2.Add(b.Pos, r2.Scale(overlap*wb, n))

			// Velocity response along the normal for approaching pairs.
			vn := r2.Dot(r2.Sub(b.vel, a.vel), n)
			if vn >= 0 {
				continue
			}
			imp := -(1 + s.cfg.Restitution) * vn
			a.vel = r2.Sub(a.vel, r2.Scale(imp*wa, n))
			b.vel = r2.Add(b.vel, r2.Scale(imp*wb, n))
		}
	}
	return hit
}

func (s *Solver) prune(bodies []sim.Body) {
	live := make(map[graphmodel.NodeID]struct{}, len(bodies))
	for _, b := range bodies {
		live[b.ID] = struct{}{}
	}
	for id := range s.vel {
		if _, ok := live[id]; !ok {
			delete(s.vel, id)
		}
	}
	for id := range s.last {
		if _, ok := live[id]; !ok {
			delete(s.last, id)
		}
	}
}

// Energy returns the total kinetic energy of the tracked bodies, with
// unit mass.
func (s *Solver) Energy() float64 {
	e := 0.0
	for _, v := range s.vel {
		e += 0.5 * r2.Norm2(v)
	}
	return e
}
