package core

import "math"

// Reflect mirrors v about the surface normal n: v - 2·dot(v,n)·n.
//
// n MUST be unit length. With an unnormalized n the result is scaled along n
// and no longer a reflection; callers normalize before calling.
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v through a surface with unit normal n using Snell's law.
// niOverNt is the ratio of the refractive indices (incident over transmitted).
//
// v MUST be unit length too. The discriminant uses the normalized v, but the
// returned vector mixes v with n, so a scaled v bends by the wrong angle.
// It reports false on total internal reflection, i.e. when
// 1 - niOverNt²·(1 - dt²) <= 0 with dt = dot(normalize(v), n).
func Refract(v, n Vec3, niOverNt float64) (Vec3, bool) {
	dt := v.Normalize().Dot(n)

	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return Vec3{}, false
	}

	refracted := v.Add(n.Multiply(math.Abs(dt))).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick returns Schlick's approximation of the Fresnel reflectance
func Schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
