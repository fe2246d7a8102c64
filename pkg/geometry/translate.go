package geometry

import "github.com/df07/go-raytracer-core/pkg/core"

// Translate moves its child by Offset in world space. Rays are moved by
// -Offset into the child's frame instead of moving the child.
type Translate struct {
	Label
	Child  Hittable
	Offset core.Vec3
}

// NewTranslate wraps child, displacing it by offset
func NewTranslate(child Hittable, offset core.Vec3) *Translate {
	return &Translate{Child: child, Offset: offset}
}

// Hit intersects the child with the ray shifted into the child's frame.
// Normals need no adjustment since translation preserves directions.
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Child.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the child's box shifted by Offset, or no box if the
// child has none
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Child.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Offset(tr.Offset), true
}

// PDFValue returns the child's density as seen from the shifted origin
func (tr *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return PDFValue(tr.Child, origin.Subtract(tr.Offset), direction)
}

// Random samples a direction toward the child from the shifted origin
func (tr *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return RandomDirection(tr.Child, origin.Subtract(tr.Offset), sampler)
}
