package common

// Rect is an integer axis-aligned rectangle. The player's collision bounds
// and every level solid use this type; collision resolution works on whole
// pixels only.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Intersects reports whether the two rectangles overlap. Touching edges do
// not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Moved returns a copy of r shifted by (dx, dy).
func (r Rect) Moved(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Vec2 is a continuous 2D vector used for sub-pixel position and velocity.
type Vec2 struct {
	X, Y float64
}
