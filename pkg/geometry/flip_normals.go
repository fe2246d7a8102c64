package geometry

import "github.com/df07/go-raytracer-core/pkg/core"

// FlipNormals wraps a child and reverses the normals it reports, for example
// to turn the walls of a room or an area light toward its inside.
// Geometry and bounding box are unchanged.
type FlipNormals struct {
	Label
	Child Hittable
}

// NewFlipNormals wraps child
func NewFlipNormals(child Hittable) *FlipNormals {
	return &FlipNormals{Child: child}
}

// Hit delegates to the child and negates the normal of any hit
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, ok := f.Child.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox returns the child's box
func (f *FlipNormals) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Child.BoundingBox(time0, time1)
}

// PDFValue returns the child's density
func (f *FlipNormals) PDFValue(origin, direction core.Vec3) float64 {
	return PDFValue(f.Child, origin, direction)
}

// Random samples a direction toward the child
func (f *FlipNormals) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return RandomDirection(f.Child, origin, sampler)
}
