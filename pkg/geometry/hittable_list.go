package geometry

import "github.com/df07/go-raytracer-core/pkg/core"

// HittableList is a group of objects hit as one
type HittableList struct {
	Label
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of the objects' boxes. An empty list, or one
// holding any unbounded object, has no box.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}

// PDFValue averages the densities of the objects, matching Random's uniform
// choice of object
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	sum := 0.0
	for _, object := range l.Objects {
		sum += PDFValue(object, origin, direction)
	}
	return sum / float64(len(l.Objects))
}

// Random samples a direction toward one object chosen uniformly
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.Left
	}

	index := int(sampler.Get1D() * float64(len(l.Objects)))
	if index >= len(l.Objects) {
		index = len(l.Objects) - 1
	}
	return RandomDirection(l.Objects[index], origin, sampler)
}
