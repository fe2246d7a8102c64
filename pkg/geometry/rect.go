package geometry

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// rectPadding gives flat rectangles a non-zero thickness in their bounding box
const rectPadding = 0.0001

// AxisRect is an axis-aligned rectangle lying in the plane Normal-axis = K.
// Its unit normal points along +Normal-axis. The two in-plane axes span
// [A0,A1] x [B0,B1]; U and V of a hit run along them.
type AxisRect struct {
	Label
	A0, A1, B0, B1 float64
	K              float64
	Material       core.Material

	axisA, axisB, axisN int
}

// NewXYRect creates a rectangle in the plane z = k facing +Z
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *AxisRect {
	return newAxisRect(0, 1, 2, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle in the plane y = k facing +Y
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *AxisRect {
	return newAxisRect(0, 2, 1, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle in the plane x = k facing +X
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *AxisRect {
	return newAxisRect(1, 2, 0, y0, y1, z0, z1, k, material)
}

func newAxisRect(axisA, axisB, axisN int, a0, a1, b0, b1, k float64, material core.Material) *AxisRect {
	return &AxisRect{
		A0:       math.Min(a0, a1),
		A1:       math.Max(a0, a1),
		B0:       math.Min(b0, b1),
		B1:       math.Max(b0, b1),
		K:        k,
		Material: material,
		axisA:    axisA,
		axisB:    axisB,
		axisN:    axisN,
	}
}

// Normal returns the fixed unit normal of the rectangle
func (r *AxisRect) Normal() core.Vec3 {
	return r.compose(0, 0, 1)
}

// Area returns the area of the rectangle
func (r *AxisRect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// Hit tests if a ray intersects the rectangle
func (r *AxisRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	direction := ray.Direction.Axis(r.axisN)
	if math.Abs(direction) < 1e-12 {
		// Parallel to the plane
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(r.axisN)) / direction
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	a := point.Axis(r.axisA)
	b := point.Axis(r.axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Point:    point,
		Normal:   r.Normal(),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle padded slightly along its normal
func (r *AxisRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		r.compose(r.A0, r.B0, r.K-rectPadding),
		r.compose(r.A1, r.B1, r.K+rectPadding),
	), true
}

// PDFValue converts the uniform area density of the rectangle into a
// solid-angle density as seen from origin
func (r *AxisRect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine == 0 {
		return 0
	}
	return distanceSquared / (cosine * r.Area())
}

// Random returns a direction from origin to a uniformly chosen point on the rectangle
func (r *AxisRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	point := r.compose(
		r.A0+s.X*(r.A1-r.A0),
		r.B0+s.Y*(r.B1-r.B0),
		r.K,
	)
	return point.Subtract(origin)
}

// compose builds a world vector from in-plane coordinates a, b and normal coordinate n
func (r *AxisRect) compose(a, b, n float64) core.Vec3 {
	var c [3]float64
	c[r.axisA] = a
	c[r.axisB] = b
	c[r.axisN] = n
	return core.NewVec3(c[0], c[1], c[2])
}
