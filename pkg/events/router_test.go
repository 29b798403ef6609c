package events

import (
	"testing"

	"github.com/wesen/linkgraph/pkg/graphmodel"
	"gonum.org/v1/gonum/spatial/r2"
)

type recorder struct {
	types []Type
	seen  []Event
}

func (r *recorder) HandleEvent(ev Event) { r.seen = append(r.seen, ev) }
func (r *recorder) EventTypes() []Type   { return r.types }

type funcHandler struct {
	types []Type
	fn    func(Event)
}

func (h funcHandler) HandleEvent(ev Event) { h.fn(ev) }
func (h funcHandler) EventTypes() []Type   { return h.types }

func TestDispatchFIFO(t *testing.T) {
	l := NewLog()
	l.Emit(NodeMoved{Node: 1, Pos: r2.Vec{X: 1}})
	l.Emit(ColorChanged{Node: 1, Role: RoleMoving})
	l.Emit(NodeRemoved{Node: 1})
	l.Emit(NodeMoved{Node: 2, Pos: r2.Vec{X: 2}})

	rec := &recorder{types: []Type{TypeNodeMoved, TypeNodeRemoved}}
	r := NewRouter()
	r.Register(rec)

	if n := r.Dispatch(l); n != 3 {
		t.Fatalf("expected 3 handled, got %d", n)
	}
	want := []Type{TypeNodeMoved, TypeNodeRemoved, TypeNodeMoved}
	if len(rec.seen) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(rec.seen))
	}
	for i, ev := range rec.seen {
		if ev.Type() != want[i] {
			t.Errorf("event %d: got %v, want %v", i, ev.Type(), want[i])
		}
	}
}

func TestLaterStageSeesSameEvents(t *testing.T) {
	l := NewLog()
	l.Emit(NodeRemoved{Node: 3})

	first := &recorder{types: []Type{TypeNodeRemoved}}
	second := &recorder{types: []Type{TypeNodeRemoved}}
	early, late := NewRouter(), NewRouter()
	early.Register(first)
	late.Register(second)

	early.Dispatch(l)
	late.Dispatch(l)
	if len(first.seen) != 1 || len(second.seen) != 1 {
		t.Errorf("both stages should see the removal: %d, %d", len(first.seen), len(second.seen))
	}
}

func TestMultipleHandlersRegistrationOrder(t *testing.T) {
	var order []string
	r := NewRouter()
	r.Register(funcHandler{types: []Type{TypeColorChanged}, fn: func(Event) { order = append(order, "a") }})
	r.Register(funcHandler{types: []Type{TypeColorChanged}, fn: func(Event) { order = append(order, "b") }})

	l := NewLog()
	l.Emit(ColorChanged{Node: 0, Role: RoleBase})
	r.Dispatch(l)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("expected [a b], got %v", order)
	}
}

func TestEmitAfterDispatchIsSealed(t *testing.T) {
	l := NewLog()
	NewRouter().Dispatch(l)
	if err := l.Emit(NodeRemoved{Node: 1}); err != ErrSealed {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
	l.Reset()
	if err := l.Emit(NodeRemoved{Node: 1}); err != nil {
		t.Fatalf("emit after reset: %v", err)
	}
}

func TestResetDropsEvents(t *testing.T) {
	l := NewLog()
	l.Emit(NodeRemoved{Node: 1})
	l.Emit(NodeRemoved{Node: 2})
	if l.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", l.Len())
	}
	NewRouter().Dispatch(l)
	l.Reset()
	if l.Len() != 0 {
		t.Errorf("reset log still holds %d events", l.Len())
	}
	if err := l.Emit(NodeRemoved{Node: 3}); err != nil {
		t.Errorf("reset log is still sealed: %v", err)
	}
}

func TestRoleFor(t *testing.T) {
	tests := []struct {
		state graphmodel.State
		want  Role
	}{
		{graphmodel.StateIdle, RoleBase},
		{graphmodel.StateSelected, RoleSelected},
		{graphmodel.StateMoving, RoleMoving},
		{graphmodel.StateSelectedMoving, RoleMoving},
	}
	for _, tc := range tests {
		if got := RoleFor(tc.state); got != tc.want {
			t.Errorf("RoleFor(%v) = %v, want %v", tc.state, got, tc.want)
		}
	}
}
