package model

import "math"

// BBox represents an axis-aligned bounding box given by two corners.
// X0/Y0 is the lower-left corner and X1/Y1 the upper-right corner in the
// coordinate space reported by the decoder.
type BBox struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewBBox creates a bounding box from two corner coordinates. The corners
// are normalized so that X0 <= X1 and Y0 <= Y1.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// IsEmpty reports whether the box has no area. The zero BBox is empty.
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest box containing both b and other. An empty
// zero-value box is treated as the identity so that unions can be folded
// starting from BBox{}.
func (b BBox) Union(other BBox) BBox {
	if b == (BBox{}) {
		return other
	}
	if other == (BBox{}) {
		return b
	}
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Array returns the box as [x0, y0, x1, y1].
func (b BBox) Array() [4]float64 {
	return [4]float64{b.X0, b.Y0, b.X1, b.Y1}
}
