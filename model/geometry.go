package model

import "math"

// BBox is an axis-aligned bounding box in corner form: (X0, Y0) is the
// top-left corner and (X1, Y1) the bottom-right corner, with Y increasing
// downward (reading order).
type BBox struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// NewBBox creates a bounding box from its four corner coordinates.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Contains reports whether the point (x, y) lies inside the box.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// IsValid reports whether the box has positive width and height.
func (b BBox) IsValid() bool {
	return b.X1 > b.X0 && b.Y1 > b.Y0
}
