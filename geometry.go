package gocube

import "math"

// Geometry holds the world-space proportions of the cube.
type Geometry struct {
	Edge float64 // cubie edge length
	Gap  float64 // space between neighbouring cubies
}

// Spacing is the distance between the centres of neighbouring cubies.
func (g Geometry) Spacing() float64 {
	return g.Edge + g.Gap
}

// Extent is the half-size of the whole cube measured to its outer surface.
func (g Geometry) Extent() float64 {
	return g.Spacing() + g.Edge/2
}

// PickRadius is the largest screen distance from a face anchor that still
// counts as pointing at that face, at the given viewport scale.
func (g Geometry) PickRadius(scale float64) float64 {
	return 1.1 * g.Edge * scale
}

// Point is a 2D screen position in pixels, origin top-left.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist2 returns the squared distance between p and q.
func (p Point) Dist2(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

func (r Rect) extend(p Point) Rect {
	r.MinX = math.Min(r.MinX, p.X)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxY = math.Max(r.MaxY, p.Y)
	return r
}

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y float64) bool {
	return x > r.MinX && x < r.MaxX && y > r.MinY && y < r.MaxY
}

// Width returns the horizontal size of r.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical size of r.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}
