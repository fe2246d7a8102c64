package core

import "math"

// SphereUV maps a point on the unit sphere to texture coordinates in [0,1]².
// u wraps around the Y axis starting from -X, v runs from the south pole (0)
// to the north pole (1). The point is normalized first so slightly
// off-surface inputs still map to the nearest direction.
func SphereUV(p Vec3) (u, v float64) {
	p = p.Normalize()

	phi := math.Atan2(p.Z, p.X)                        // [-π, π]
	theta := math.Acos(math.Max(-1, math.Min(1, p.Y))) // [0, π]

	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = 1 - theta/math.Pi
	return u, v
}
