package material

import "github.com/df07/go-raytracer-core/pkg/core"

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter reflects or refracts the ray, choosing reflection with the Schlick
// probability, and always when refraction is impossible
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	// Refract only follows Snell's law for a unit incident vector
	direction := rayIn.Direction.Normalize()
	cosIncident := direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if cosIncident > 0 {
		// Leaving the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * cosIncident
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -cosIncident
	}

	reflectProbability := 1.0
	refracted, canRefract := core.Refract(direction, outwardNormal, niOverNt)
	if canRefract {
		reflectProbability = core.Schlick(cosine, d.RefractiveIndex)
	}

	scatterDirection := refracted
	if sampler.Get1D() < reflectProbability {
		scatterDirection = core.Reflect(direction, hit.Normal.Normalize())
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0), // Clear glass absorbs nothing
		PDF:         0,
	}, true
}
