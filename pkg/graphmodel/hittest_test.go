package graphmodel

import "testing"

func TestHitTestInside(t *testing.T) {
	r := NewNodes()
	r.Spawn(vec(10, 10), 12)
	if _, ok := r.HitTest(vec(14, 12)); !ok {
		t.Fatal("expected hit")
	}
}

func TestHitTestOutside(t *testing.T) {
	r := NewNodes()
	r.Spawn(vec(10, 10), 12)
	if _, ok := r.HitTest(vec(100, 100)); ok {
		t.Error("expected miss")
	}
}

func TestHitTestBoundary(t *testing.T) {
	r := NewNodes()
	id := r.Spawn(vec(0, 0), 5)

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"exactly radius on x", 5, 0, true},
		{"exactly radius on y", 0, -5, true},
		{"exactly radius diagonal", 3, 4, true},
		{"radius plus epsilon", 5 + 1e-9, 0, false},
		{"diagonal plus epsilon", 3, 4 + 1e-9, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.HitTest(vec(tc.x, tc.y))
			if ok != tc.hit {
				t.Fatalf("hit = %v, want %v", ok, tc.hit)
			}
			if ok && got != id {
				t.Errorf("hit id = %d, want %d", got, id)
			}
		})
	}
}

func TestHitTestFirstInOrder(t *testing.T) {
	r := NewNodes()
	first := r.Spawn(vec(0, 0), 12)
	r.Spawn(vec(4, 0), 12) // overlapping, inserted later
	got, ok := r.HitTest(vec(2, 0))
	if !ok {
		t.Fatal("expected hit")
	}
	if got != first {
		t.Errorf("expected first inserted (ID=%d), got ID=%d", first, got)
	}
}

func TestHitTestSkipsRemoved(t *testing.T) {
	r := NewNodes()
	a := r.Spawn(vec(0, 0), 12)
	b := r.Spawn(vec(4, 0), 12)
	r.Remove(a)
	got, ok := r.HitTest(vec(2, 0))
	if !ok || got != b {
		t.Errorf("expected %d after removing %d, got %d (hit=%v)", b, a, got, ok)
	}
}

func TestHitTestEmpty(t *testing.T) {
	if _, ok := HitTest(vec(0, 0), nil); ok {
		t.Error("empty node set should never hit")
	}
}
