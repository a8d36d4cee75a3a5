// Package geom provides the 2D geometry primitives used by layout algorithms.
//
// The central type is [Point], a value type used both as a position and as a
// size/vector. All layout algorithms express node movement and force
// accumulation through Point arithmetic.
package geom

import "math"

// Point is a 2D coordinate pair. It doubles as a vector and as a
// width/height pair depending on context. Point is a value type;
// operations return new points and never mutate the receiver.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Magnitude returns the Euclidean length of p treated as a vector.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns the unit vector pointing in the direction of p.
// The zero vector normalizes to the zero vector.
func (p Point) Normalize() Point {
	mag := p.Magnitude()
	if mag == 0 {
		return Point{}
	}
	return Point{p.X / mag, p.Y / mag}
}
