package core

// HitRecord contains information about a ray-object intersection.
// Its contents are only meaningful when the Hit call that produced it
// reported a hit.
type HitRecord struct {
	T        float64  // Parameter t along the ray
	U, V     float64  // Surface coordinates of the hit
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit surface normal, oriented by the primitive's own convention
	Material Material // Material of the hit object; not owned by the record
}

// FrontFace reports whether the ray arrived against the stored normal
func (h *HitRecord) FrontFace(ray Ray) bool {
	return ray.Direction.Dot(h.Normal) < 0
}
