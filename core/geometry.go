package core

import "math"

// Point is an integer position in screen space
type Point struct {
	X, Y int
}

// FloatPoint is a sub-pixel position in source-frame space
type FloatPoint struct {
	X, Y float64
}

// Dist returns the euclidean distance between two points
func (p FloatPoint) Dist(o FloatPoint) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Rect is a half-open integer rectangle [Left,Right) x [Top,Bottom)
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns horizontal extent, never negative
func (r Rect) Width() int {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns vertical extent, never negative
func (r Rect) Height() int {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether p lies inside the half-open rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Center returns the integer midpoint, truncated toward the top-left
func (r Rect) Center() Point {
	return Point{
		X: r.Left + (r.Right-r.Left)/2,
		Y: r.Top + (r.Bottom-r.Top)/2,
	}
}

// FloatRect is a rectangle in source-frame space with inclusive edges
type FloatRect struct {
	Left, Top, Right, Bottom float64
}

// Size is a frame or screen dimension in pixels
type Size struct {
	Width, Height int
}

// Zero reports whether either dimension is unusable
func (s Size) Zero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Clamp limits v to [lo, hi]; hi wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
