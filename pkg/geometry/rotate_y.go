package geometry

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// RotateY rotates its child about the world Y axis by an angle in degrees.
// The bounding box is computed once at construction from the child's box
// over [0, 1]; a child without a box leaves RotateY without one for good.
type RotateY struct {
	Label
	Child    Hittable
	Angle    float64 // Degrees
	sinTheta float64
	cosTheta float64
	hasBox   bool
	bbox     core.AABB
}

// NewRotateY wraps child, rotating it by angle degrees about the Y axis
func NewRotateY(child Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Child:    child,
		Angle:    angle,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	childBox, ok := child.BoundingBox(0, 1)
	if !ok || !childBox.IsValid() {
		return r
	}

	// Bound the rotated object by the rotated corners of the child's box.
	// NewAABBFromPoints starts from ±Inf, so the box is tight whatever the
	// sign or magnitude of the coordinates.
	var rotated [8]core.Vec3
	for i, corner := range childBox.Corners() {
		rotated[i] = r.toWorld(corner)
	}
	r.bbox = core.NewAABBFromPoints(rotated[:]...)
	r.hasBox = true

	return r
}

// Hit rotates the ray into the child's frame, intersects the child and
// rotates the hit point and normal back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hit, ok := r.Child.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box computed at construction
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}

// PDFValue returns the child's density for the origin and direction
// expressed in the child's frame
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return PDFValue(r.Child, r.toLocal(origin), r.toLocal(direction))
}

// Random samples a direction toward the child and rotates it into world space
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if _, ok := r.Child.(Sampleable); !ok {
		return core.Left
	}
	return r.toWorld(RandomDirection(r.Child, r.toLocal(origin), sampler))
}

// toLocal applies the inverse rotation, taking world space to the child's frame
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation, taking the child's frame to world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}
