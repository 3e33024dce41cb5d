// Package angle provides degree arithmetic shared by the astro components.
package angle

import "math"

const (
	// DegToRad converts degrees to radians.
	DegToRad = math.Pi / 180
	// RadToDeg converts radians to degrees.
	RadToDeg = 180 / math.Pi
)

// Normalize maps any angle into [0,360).
func Normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// Signed maps any angle into [-180,180).
func Signed(deg float64) float64 {
	r := Normalize(deg + 180)
	return r - 180
}

// Delta returns the shortest-path signed difference to - from, in [-180,180).
func Delta(from, to float64) float64 {
	return Signed(to - from)
}

// Separation returns the shorter unsigned arc between two longitudes, in [0,180].
func Separation(a, b float64) float64 {
	return math.Abs(Signed(a - b))
}

// Sin, Cos and Tan take degrees.
func Sin(deg float64) float64 { return math.Sin(deg * DegToRad) }

// Cos takes degrees.
func Cos(deg float64) float64 { return math.Cos(deg * DegToRad) }

// Tan takes degrees.
func Tan(deg float64) float64 { return math.Tan(deg * DegToRad) }

// Atan2 returns degrees in (-180,180].
func Atan2(y, x float64) float64 { return math.Atan2(y, x) * RadToDeg }

// Asin returns degrees, clamping the argument to [-1,1] against rounding.
func Asin(x float64) float64 {
	return math.Asin(clamp(x)) * RadToDeg
}

// Acos returns degrees, clamping the argument to [-1,1] against rounding.
func Acos(x float64) float64 {
	return math.Acos(clamp(x)) * RadToDeg
}

// Arcseconds converts arcseconds to degrees.
func Arcseconds(sec float64) float64 {
	return sec / 3600
}

// DMS splits a non-negative angle into degrees, minutes and seconds.
func DMS(deg float64) (d, m int, s float64) {
	deg = math.Abs(deg)
	d = int(deg)
	rem := (deg - float64(d)) * 60
	m = int(rem)
	s = (rem - float64(m)) * 60
	return d, m, s
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
