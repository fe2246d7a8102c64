package geometry

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Sphere represents a sphere shape. A negative radius keeps the geometry but
// points the normals inward, which is how hollow glass spheres are built.
type Sphere struct {
	Label
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitSphere(ray, tMin, tMax, s.Center, s.Radius, s.Material)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// PDFValue returns the density of direction when sampling the cone the sphere
// subtends from origin. Origins inside the sphere are not sampleable.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random returns a direction from origin uniformly inside the cone the
// sphere subtends, or core.Left when origin is inside the sphere
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	local, err := core.RandomToSphere(sampler, math.Abs(s.Radius), direction.LengthSquared())
	if err != nil {
		return core.Left
	}
	return core.NewONB(direction).Local(local)
}

// hitSphere solves the ray/sphere quadratic, shared by Sphere and MovingSphere
func hitSphere(ray core.Ray, tMin, tMax float64, center core.Vec3, radius float64, material core.Material) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if a == 0 || discriminant <= 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Multiply(1.0 / radius)
	u, v := core.SphereUV(point.Subtract(center))

	return &core.HitRecord{
		T:        root,
		U:        u,
		V:        v,
		Point:    point,
		Normal:   normal,
		Material: material,
	}, true
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}
