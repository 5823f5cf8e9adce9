package gamemath

import "math"

// ApproachZero reduces speed toward zero by friction amount without crossing it.
func ApproachZero(speed, friction Fixed) Fixed {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max Fixed) Fixed {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi Fixed) Fixed {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SatAdd adds a and b, saturating at the int32 range instead of wrapping.
func SatAdd(a, b Fixed) Fixed {
	return saturate(int64(a) + int64(b))
}

// SatMul multiplies a and b, saturating at the int32 range.
func SatMul(a, b Fixed) Fixed {
	return saturate(int64(a) * int64(b))
}

func saturate(v int64) Fixed {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return Fixed(v)
}

// Neg negates v; the most negative value saturates.
func Neg(v Fixed) Fixed {
	if v == math.MinInt32 {
		return math.MaxInt32
	}
	return -v
}
