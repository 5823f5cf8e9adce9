// Package gamemath holds the integer subpixel arithmetic shared by the
// motion core and the render side. It has no engine dependencies.
package gamemath

import "math"

// Fixed is a signed subpixel quantity. One display pixel is SubpixelRes
// units unless a different resolution is passed explicitly.
type Fixed int32

// SubpixelRes is the default number of subpixel units per display pixel.
const SubpixelRes Fixed = 128

// Pixels converts a whole pixel count to subpixel units at resolution res,
// saturating at the int32 range.
func Pixels(px int, res Fixed) Fixed {
	return saturate(int64(px) * int64(res))
}

// PixelsF converts a fractional pixel amount to subpixel units, truncating
// toward zero.
func PixelsF(px float64, res Fixed) Fixed {
	return FromFloat(px * float64(res))
}

// FromFloat truncates f toward zero and saturates at the int32 range.
func FromFloat(f float64) Fixed {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return Fixed(f)
}

// ToPixels divides by res, truncating toward zero.
func (f Fixed) ToPixels(res Fixed) int {
	if res == 0 {
		return 0
	}
	return int(f / res)
}

// Float returns f in pixels as a float64.
func (f Fixed) Float(res Fixed) float64 {
	if res == 0 {
		return 0
	}
	return float64(f) / float64(res)
}
