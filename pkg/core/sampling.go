package core

import (
	"math"
	"math/rand"

	"golang.org/x/xerrors"
)

// MaxRejectionAttempts bounds the rejection loops below. With a uniform
// sampler the chance of exhausting it is below 0.48^64, so it only matters
// for degenerate samplers; those get a closed-form fallback instead of a hang.
const MaxRejectionAttempts = 64

// Sampler provides random sampling for rendering algorithms.
// Every goroutine that samples must own its own Sampler.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitSphere returns a point strictly inside the unit sphere by
// rejection sampling the [-1,1]^3 cube. About 52% of draws are accepted, so
// termination is probabilistic; MaxRejectionAttempts caps the loop.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for i := 0; i < MaxRejectionAttempts; i++ {
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		if p.LengthSquared() < 1 {
			return p
		}
	}
	return SamplePointInUnitSphere(sampler.Get3D())
}

// RandomOnUnitSphere returns a uniformly distributed unit vector, the
// normalized result of the same rejection scheme as RandomInUnitSphere
func RandomOnUnitSphere(sampler Sampler) Vec3 {
	for i := 0; i < MaxRejectionAttempts; i++ {
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		// The origin has no direction; reject it along with the corners.
		if lsq := p.LengthSquared(); lsq > 0 && lsq < 1 {
			return p.Normalize()
		}
	}
	return SampleOnUnitSphere(sampler.Get2D())
}

// RandomInUnitDisk returns a point strictly inside the unit disk in the XY
// plane (z = 0), by rejection sampling the [-1,1]^2 square
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for i := 0; i < MaxRejectionAttempts; i++ {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
	return SamplePointInUnitDisk(sampler.Get2D())
}

// RandomCosineDirection returns a cosine-weighted direction in the +Z
// hemisphere of the local frame. Use ONB.Local to orient it around a normal.
func RandomCosineDirection(sampler Sampler) Vec3 {
	s := sampler.Get2D()
	r1, r2 := s.X, s.Y

	z := math.Sqrt(1 - r2) // cos(theta)
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)

	return NewVec3(x, y, z)
}

// RandomToSphere returns a direction in the local +Z frame, uniformly
// distributed over the cone subtended by a sphere of the given radius whose
// center lies distanceSquared away along +Z.
// It fails with ErrInvalidDomain if the origin is inside the sphere or the
// arguments are negative or NaN.
func RandomToSphere(sampler Sampler, radius, distanceSquared float64) (Vec3, error) {
	if !(radius >= 0) || !(distanceSquared > 0) || radius*radius > distanceSquared {
		return Vec3{}, xerrors.Errorf("sampling toward sphere of radius %g at squared distance %g: %w",
			radius, distanceSquared, ErrInvalidDomain)
	}

	s := sampler.Get2D()
	r1, r2 := s.X, s.Y

	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)
	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return NewVec3(x, y, z), nil
}

// SampleOnUnitSphere maps a 2D sample to a uniform direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric mapping
// This avoids rejection sampling by mapping a square uniformly to a disk
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// SamplePointInUnitSphere generates a random point inside a unit sphere using spherical coordinates
// This avoids rejection sampling by using the inverse CDF method
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	// r = ∛(u₁) to account for volume scaling
	// φ = 2π * u₂ (azimuthal angle)
	// cos(θ) = 2 * u₃ - 1 (polar angle, uniform on [-1,1])
	r := math.Cbrt(sample.X)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	x := r * sinTheta * math.Cos(phi)
	y := r * sinTheta * math.Sin(phi)
	z := r * cosTheta

	return NewVec3(x, y, z)
}
