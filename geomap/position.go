package geomap

import "math"

// epsilon is the tolerance used for zero comparisons in geometric tests,
// matching the source converter's treatment of floating point positions.
const epsilon = 1e-9

// Position is a point in the 2D plane. All operations are value
// receivers: Position is small and comparisons/arithmetic should never
// alias the caller's copy.
type Position struct {
	X, Y float64
}

// Add returns p+o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p scaled by s.
func (p Position) Scale(s float64) Position {
	return Position{X: p.X * s, Y: p.Y * s}
}

// Div returns p with each component divided by s.
func (p Position) Div(s float64) Position {
	return Position{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product p·o.
func (p Position) Dot(o Position) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross returns the 2D scalar cross product p×o.
func (p Position) Cross(o Position) float64 {
	return p.X*o.Y - p.Y*o.X
}

// Length returns the Euclidean norm of p.
func (p Position) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalized returns p scaled to unit length. The zero vector is
// returned unchanged (division by zero length is the caller's concern;
// no caller in this module normalizes a zero-length vector).
func (p Position) Normalized() Position {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Div(l)
}

// nearlyEqual reports whether a and b differ by less than epsilon.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// CanMoveThrough is the non-reflex-turn test governing friend-line
// continuation: the turn from p1->p2->p3 is accepted when the two leg
// vectors have a non-negative dot product.
func CanMoveThrough(p1, p2, p3 Position) bool {
	return p2.Sub(p1).Dot(p3.Sub(p2)) >= 0
}
