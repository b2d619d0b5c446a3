package pointer

// Rect is an axis-aligned rectangle in viewport coordinates.
// Layout measurements may be fractional; ResolveOffset rounds to
// whole pixels when converting to a document offset.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate just past the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate just past the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether p falls inside the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r Rect) Contains(p Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
