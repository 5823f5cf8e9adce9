package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproachZero(t *testing.T) {
	cases := []struct {
		name     string
		speed    Fixed
		friction Fixed
		want     Fixed
	}{
		{"positive above friction", 45, 30, 15},
		{"positive below friction", 15, 30, 0},
		{"negative above friction", -45, 30, -15},
		{"negative below friction", -29, 30, 0},
		{"exactly friction", 30, 30, 0},
		{"zero", 0, 30, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ApproachZero(c.speed, c.friction))
		})
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, Fixed(512), ClampSpeed(900, 512))
	assert.Equal(t, Fixed(-512), ClampSpeed(-900, 512))
	assert.Equal(t, Fixed(100), ClampSpeed(100, 512))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, Fixed(-10), Clamp(-50, -10, 10))
	assert.Equal(t, Fixed(10), Clamp(50, -10, 10))
	assert.Equal(t, Fixed(3), Clamp(3, -10, 10))
}

func TestToPixelsTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, 1, Fixed(255).ToPixels(128))
	assert.Equal(t, -1, Fixed(-255).ToPixels(128))
	assert.Equal(t, 0, Fixed(-127).ToPixels(128))
	assert.Equal(t, 0, Fixed(99).ToPixels(0))
}

func TestFromFloatSaturates(t *testing.T) {
	assert.Equal(t, Fixed(math.MaxInt32), FromFloat(1e12))
	assert.Equal(t, Fixed(math.MinInt32), FromFloat(-1e12))
	assert.Equal(t, Fixed(0), FromFloat(math.NaN()))
	assert.Equal(t, Fixed(-6), FromFloat(-6.9))
}

func TestPixels(t *testing.T) {
	assert.Equal(t, Fixed(2048), Pixels(16, SubpixelRes))
	assert.Equal(t, Fixed(64), PixelsF(0.5, SubpixelRes))
	assert.InDelta(t, 1.5, Fixed(192).Float(SubpixelRes), 1e-9)
}

func TestSatAdd(t *testing.T) {
	assert.Equal(t, Fixed(30), SatAdd(10, 20))
	assert.Equal(t, Fixed(math.MaxInt32), SatAdd(math.MaxInt32-5, 100))
	assert.Equal(t, Fixed(math.MinInt32), SatAdd(math.MinInt32+5, -100))
}

func TestSatMul(t *testing.T) {
	assert.Equal(t, Fixed(1152), SatMul(9, 128))
	assert.Equal(t, Fixed(-1152), SatMul(-9, 128))
	assert.Equal(t, Fixed(math.MaxInt32), SatMul(20000000, 128))
	assert.Equal(t, Fixed(math.MinInt32), SatMul(-20000000, 128))
}

func TestPixelsSaturates(t *testing.T) {
	assert.Equal(t, Fixed(math.MaxInt32), Pixels(1<<20, 1<<16))
	assert.Equal(t, Fixed(math.MinInt32), Pixels(-(1 << 20), 1<<16))
}

func TestNeg(t *testing.T) {
	assert.Equal(t, Fixed(-7), Neg(7))
	assert.Equal(t, Fixed(math.MaxInt32), Neg(math.MinInt32))
}
