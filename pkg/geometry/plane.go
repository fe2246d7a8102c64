package geometry

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal.
// It has no finite bounding box.
type Plane struct {
	Label
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Unit normal vector
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Calculate denominator: dot product of ray direction and plane normal
	denominator := ray.Direction.Dot(p.Normal)

	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	u, v := p.uv(point)

	return &core.HitRecord{
		T:        t,
		U:        u,
		V:        v,
		Point:    point,
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}

// BoundingBox reports that a plane is unbounded
func (p *Plane) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

// uv tiles the plane with unit squares along a tangent basis of the normal
func (p *Plane) uv(point core.Vec3) (u, v float64) {
	basis := core.NewONB(p.Normal)
	local := point.Subtract(p.Point)
	a := local.Dot(basis.U)
	b := local.Dot(basis.V)
	return a - math.Floor(a), b - math.Floor(b)
}
