package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func genRect(t *rapid.T, label string) Rect {
	return Rect{
		X: rapid.Float64Range(-1000, 1000).Draw(t, label+".x"),
		Y: rapid.Float64Range(-1000, 1000).Draw(t, label+".y"),
		W: rapid.Float64Range(0, 200).Draw(t, label+".w"),
		H: rapid.Float64Range(0, 200).Draw(t, label+".h"),
	}
}

func TestOverlapsTable(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 2, 2}, true},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"apart", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, false},
		{"zero width", Rect{5, 0, 0, 10}, Rect{0, 0, 10, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genRect(t, "a")
		b := genRect(t, "b")
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("asymmetric overlap for %+v and %+v", a, b)
		}
	})
}

func TestEdgeTouchingNeverOverlaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genRect(t, "a")
		b := genRect(t, "b")
		b.X = a.X + a.W
		if Overlaps(a, b) {
			t.Fatalf("boxes touching at x=%v reported overlapping: %+v %+v", b.X, a, b)
		}
	})
}

func TestCircleBounds(t *testing.T) {
	r := CircleBounds(100, 50, 6)
	if r != (Rect{X: 94, Y: 44, W: 12, H: 12}) {
		t.Errorf("unexpected bounds: %+v", r)
	}
	cx, cy := r.Center()
	if cx != 100 || cy != 50 {
		t.Errorf("center = (%v, %v), want (100, 50)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp below = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp above = %v", got)
	}
	if got := Clamp(4, 10, 0); got != 5 {
		t.Errorf("Clamp inverted range = %v, want midpoint", got)
	}
}

func TestSpatialGridFindsAllOverlaps(t *testing.T) {
	const cell = 64.0
	rapid.Check(t, func(t *rapid.T) {
		grid := NewSpatialGrid(800, 600, cell)
		n := rapid.IntRange(1, 30).Draw(t, "n")
		boxes := make([]Rect, n)
		for i := range boxes {
			w := rapid.Float64Range(1, 80).Draw(t, "w")
			h := rapid.Float64Range(1, 80).Draw(t, "h")
			cx := rapid.Float64Range(-200, 1000).Draw(t, "cx")
			cy := rapid.Float64Range(-200, 800).Draw(t, "cy")
			boxes[i] = RectAround(cx, cy, w, h)
			grid.Insert(cx, cy, i)
		}

		query := RectAround(
			rapid.Float64Range(-200, 1000).Draw(t, "px"),
			rapid.Float64Range(-200, 800).Draw(t, "py"),
			16, 32,
		)
		px, py := query.Center()

		found := make(map[int]bool)
		grid.QueryAround(px, py, func(i int) bool {
			found[i] = true
			return false
		})
		for i, b := range boxes {
			if Overlaps(query, b) && !found[i] {
				t.Fatalf("grid missed overlapping box %d: %+v vs query %+v", i, b, query)
			}
		}
	})
}

func TestSpatialGridResizeIsBounded(t *testing.T) {
	g := NewSpatialGrid(800, 600, 56)
	for _, size := range [][2]float64{{1e9, 1e9}, {math.Inf(1), 600}, {math.NaN(), math.NaN()}, {1e300, 1e300}} {
		g.Resize(size[0], size[1])
		if len(g.cells) == 0 || len(g.cells) > maxGridDim*maxGridDim {
			t.Fatalf("Resize(%v, %v) made %d cells", size[0], size[1], len(g.cells))
		}
	}

	// Items past the last column clamp into it and are still found.
	g = NewSpatialGrid(1e9, 1e9, 1)
	g.Insert(5e8, 5e8, 7)
	found := false
	g.QueryAround(5e8+0.5, 5e8, func(i int) bool {
		found = i == 7
		return found
	})
	if !found {
		t.Error("item in a clamped cell not found")
	}
}
