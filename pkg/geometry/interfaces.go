package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Hittable is implemented by everything a ray can be intersected with:
// leaf primitives, lists, and transform wrappers around other Hittables.
type Hittable interface {
	// Hit returns the closest intersection with t strictly inside (tMin, tMax).
	// A miss is reported as (nil, false) and is not an error.
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the time interval
	// [time0, time1]. It reports false for unbounded objects such as planes.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// Sampleable is implemented by objects that can be importance-sampled as
// seen from a point, typically lights
type Sampleable interface {
	// PDFValue returns the solid-angle density of sampling direction from origin
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin toward the object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// PDFValue returns h's sampling density, or 0 when h cannot be sampled.
// A 0 result means "not sampleable", never a valid density.
func PDFValue(h Hittable, origin, direction core.Vec3) float64 {
	if s, ok := h.(Sampleable); ok {
		return s.PDFValue(origin, direction)
	}
	return 0
}

// RandomDirection samples a direction toward h, or returns core.Left when
// h cannot be sampled
func RandomDirection(h Hittable, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if s, ok := h.(Sampleable); ok {
		return s.Random(origin, sampler)
	}
	return core.Left
}

// Named is implemented by objects that carry a diagnostic label
type Named interface {
	Name() string
}

// Label is embedded by primitives to give them an optional name
type Label string

// Name returns the label
func (l Label) Name() string {
	return string(l)
}

// NameOf returns a printable name for h, falling back to its type
func NameOf(h Hittable) string {
	if n, ok := h.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("%T", h)
}
