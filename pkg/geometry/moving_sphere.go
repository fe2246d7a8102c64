package geometry

import "github.com/df07/go-raytracer-core/pkg/core"

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1. Rays pick the position through their Time.
type MovingSphere struct {
	Label
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the center position at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitSphere(ray, tMin, tMax, s.CenterAt(ray.Time), s.Radius, s.Material)
}

// BoundingBox encloses the sphere at both ends of the time interval
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box0 := sphereBox(s.CenterAt(time0), s.Radius)
	box1 := sphereBox(s.CenterAt(time1), s.Radius)
	return box0.Union(box1), true
}
