package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
// The running bounds start at +Inf/-Inf so any finite point tightens them.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	inf := math.Inf(1)
	min := NewVec3(inf, inf, inf)
	max := NewVec3(-inf, -inf, -inf)

	for _, point := range points {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-8 {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Offset returns the box with both corners shifted by offset
func (aabb AABB) Offset(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Corners returns the 8 corners of the box. Bit 0 of the index selects X,
// bit 1 selects Y and bit 2 selects Z (0 = min, 1 = max).
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := range corners {
		pick := func(bit int, lo, hi float64) float64 {
			if i&(1<<bit) != 0 {
				return hi
			}
			return lo
		}
		corners[i] = NewVec3(
			pick(0, aabb.Min.X, aabb.Max.X),
			pick(1, aabb.Min.Y, aabb.Max.Y),
			pick(2, aabb.Min.Z, aabb.Max.Z),
		)
	}
	return corners
}

// IsValid reports whether Min <= Max on every axis. NaN corners are invalid.
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
