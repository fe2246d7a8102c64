package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
)

// stubMaterial satisfies core.Material for tests that only check references
type stubMaterial struct{}

func (s *stubMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// randomRaysToward returns rays from random points on a sphere of radius
// spread around target, aimed at random points near target
func randomRaysToward(target core.Vec3, spread float64, n int, seed int64) []core.Ray {
	sampler := core.NewSeededSampler(seed)
	rays := make([]core.Ray, n)
	for i := range rays {
		origin := target.Add(core.RandomOnUnitSphere(sampler).Multiply(spread))
		aim := target.Add(core.RandomInUnitSphere(sampler))
		rays[i] = core.NewRayAtTime(origin, aim.Subtract(origin), sampler.Get1D())
	}
	return rays
}

// stubHittable never hits and has no box
type stubHittable struct{}

func (stubHittable) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return nil, false
}

func (stubHittable) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

// insideBox reports whether p lies in box grown by eps on every side
func insideBox(box core.AABB, p core.Vec3, eps float64) bool {
	return p.X >= box.Min.X-eps && p.X <= box.Max.X+eps &&
		p.Y >= box.Min.Y-eps && p.Y <= box.Max.Y+eps &&
		p.Z >= box.Min.Z-eps && p.Z <= box.Max.Z+eps
}
