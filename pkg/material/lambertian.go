package material

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	normal := facingNormal(rayIn, hit)

	// Cosine-weighted direction in the hemisphere on the ray's side
	direction := core.NewONB(normal).Local(core.RandomCosineDirection(sampler))
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	// PDF: cos(θ) / π where θ is angle from normal
	cosTheta := math.Max(0, direction.Normalize().Dot(normal))
	pdf := cosTheta / math.Pi

	// BRDF: albedo / π
	albedo := l.Albedo.Evaluate(hit.U, hit.V, hit.Point)
	attenuation := albedo.Multiply(1.0 / math.Pi)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
		PDF:         pdf,
	}, true
}

// ScatteringPDF returns the cosine density of scattering into scattered's direction
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosine := scattered.Direction.Normalize().Dot(facingNormal(rayIn, hit))
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// facingNormal returns the hit normal turned toward the incoming ray.
// Primitives report normals by their own convention, so materials orient them.
func facingNormal(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if hit.FrontFace(rayIn) {
		return hit.Normal
	}
	return hit.Normal.Negate()
}
