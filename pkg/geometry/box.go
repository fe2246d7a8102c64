package geometry

import "github.com/df07/go-raytracer-core/pkg/core"

// Box is an axis-aligned box built from six rectangles with outward normals.
// The faces on the minimum side are wrapped in FlipNormals.
type Box struct {
	Label
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the two corners p0 and p1
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	min := p0.Min(p1)
	max := p0.Max(p1)

	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewFlipNormals(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material)),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewFlipNormals(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewFlipNormals(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material)),
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
