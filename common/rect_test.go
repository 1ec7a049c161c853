package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, Width: 48, Height: 48}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 120, Y: 120, Width: 48, Height: 48}, true},
		{"contained", Rect{X: 110, Y: 110, Width: 10, Height: 10}, true},
		{"touching_right_edge", Rect{X: 148, Y: 100, Width: 48, Height: 48}, false},
		{"touching_bottom_edge", Rect{X: 100, Y: 148, Width: 48, Height: 48}, false},
		{"one_pixel_overlap", Rect{X: 147, Y: 147, Width: 48, Height: 48}, true},
		{"disjoint", Rect{X: 300, Y: 300, Width: 48, Height: 48}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Errorf("Intersects(%v) = %v, want %v", c.other, got, c.want)
			}
			// symmetry
			if got := c.other.Intersects(base); got != c.want {
				t.Errorf("reverse Intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectMoved(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 5, Height: 6}
	m := r.Moved(3, -4)
	if m.X != 13 || m.Y != 16 || m.Width != 5 || m.Height != 6 {
		t.Errorf("Moved = %v", m)
	}
	if r.X != 10 || r.Y != 20 {
		t.Error("Moved must not mutate the receiver")
	}
}
