package geom

// Point is an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Pos returns the component of p along o: X for Horizontal, Y for Vertical.
func (p Point) Pos(o Orientation) int {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}
