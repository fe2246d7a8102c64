package material

import "github.com/df07/go-raytracer-core/pkg/core"

// DiffuseLight is an emitting material that does not scatter
type DiffuseLight struct {
	Emit ColorSource
}

// NewDiffuseLight creates a light of uniform color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// Scatter absorbs every incoming ray
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the light leaving the surface at (u, v) and p
func (l *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return l.Emit.Evaluate(u, v, p)
}
