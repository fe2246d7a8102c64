package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func TestTranslate_EndToEnd(t *testing.T) {
	moved := NewTranslate(NewSphere(core.NewVec3(0, 0, 0), 1, nil), core.NewVec3(0, 5, 0))
	ray := core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1))

	hit, ok := moved.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if !hit.Point.ApproxEqual(core.NewVec3(0, 5, -1), 1e-9) {
		t.Errorf("Expected point (0,5,-1), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestTranslate_MatchesShiftedChild(t *testing.T) {
	child := NewSphere(core.NewVec3(0.5, -0.25, 0), 1, nil)
	offset := core.NewVec3(3, -2, 7)
	moved := NewTranslate(child, offset)

	hits := 0
	for _, ray := range randomRaysToward(offset, 6, 500, 42) {
		got, gotOK := moved.Hit(ray, 0.001, math.Inf(1))

		shifted := core.NewRayAtTime(ray.Origin.Subtract(offset), ray.Direction, ray.Time)
		want, wantOK := child.Hit(shifted, 0.001, math.Inf(1))

		if gotOK != wantOK {
			t.Fatalf("Hit disagreement for %+v: translated=%t child=%t", ray, gotOK, wantOK)
		}
		if !gotOK {
			continue
		}
		hits++

		want.Point = want.Point.Add(offset)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Translated hit mismatch (-want +got):\n%s", diff)
		}
	}
	if hits == 0 {
		t.Fatal("Expected some rays to hit")
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	moved := NewTranslate(NewSphere(core.NewVec3(0, 0, 0), 1, nil), core.NewVec3(1, 2, 3))

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	want := core.NewAABB(core.NewVec3(0, 1, 2), core.NewVec3(2, 3, 4))
	if diff := cmp.Diff(want, box); diff != "" {
		t.Errorf("Box mismatch (-want +got):\n%s", diff)
	}

	unbounded := NewTranslate(NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil), core.NewVec3(1, 2, 3))
	if _, ok := unbounded.BoundingBox(0, 1); ok {
		t.Error("Expected translated plane to have no bounding box")
	}
}

func TestFlipNormals(t *testing.T) {
	child := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	flipped := NewFlipNormals(child)

	for _, ray := range randomRaysToward(core.Vec3{}, 4, 200, 7) {
		want, wantOK := child.Hit(ray, 0.001, math.Inf(1))
		got, gotOK := flipped.Hit(ray, 0.001, math.Inf(1))
		if gotOK != wantOK {
			t.Fatalf("Hit disagreement: flipped=%t child=%t", gotOK, wantOK)
		}
		if !gotOK {
			continue
		}
		if !got.Normal.Equals(want.Normal.Negate()) {
			t.Fatalf("Expected normal %v, got %v", want.Normal.Negate(), got.Normal)
		}
		if got.T != want.T || !got.Point.Equals(want.Point) {
			t.Fatalf("Flipping changed the geometry: %+v vs %+v", got, want)
		}
	}

	childBox, _ := child.BoundingBox(0, 1)
	box, ok := flipped.BoundingBox(0, 1)
	if !ok || box != childBox {
		t.Errorf("Expected child box %+v, got %+v", childBox, box)
	}

	if _, ok := NewFlipNormals(NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), nil)).BoundingBox(0, 1); ok {
		t.Error("Expected flipped plane to have no bounding box")
	}
}

func TestRotateY_IdentityMatchesChild(t *testing.T) {
	child := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(2, 1, 3), nil)
	rotated := NewRotateY(child, 0)

	for _, ray := range randomRaysToward(core.Vec3{}, 8, 500, 3) {
		want, wantOK := child.Hit(ray, 0.001, math.Inf(1))
		got, gotOK := rotated.Hit(ray, 0.001, math.Inf(1))
		if gotOK != wantOK {
			t.Fatalf("Hit disagreement: rotated=%t child=%t", gotOK, wantOK)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Identity rotation changed the hit (-want +got):\n%s", diff)
		}
	}

	childBox, _ := child.BoundingBox(0, 1)
	box, _ := rotated.BoundingBox(0, 1)
	if diff := cmp.Diff(childBox, box); diff != "" {
		t.Errorf("Identity rotation changed the box (-want +got):\n%s", diff)
	}
}

func TestRotateY_QuarterTurn(t *testing.T) {
	// A quarter turn carries +X onto -Z
	rotated := NewRotateY(NewSphere(core.NewVec3(2, 0, 0), 1, nil), 90)
	ray := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))

	hit, ok := rotated.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-7) > 1e-9 {
		t.Errorf("Expected t=7, got t=%f", hit.T)
	}
	if !hit.Point.ApproxEqual(core.NewVec3(0, 0, -3), 1e-9) {
		t.Errorf("Expected point (0,0,-3), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}

	// The unrotated position is now empty
	if _, ok := rotated.Hit(core.NewRay(core.NewVec3(2, 0, -10), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1)); ok {
		t.Error("Expected miss at the unrotated position")
	}
}

func TestRotateY_BoundingBoxMatchesBruteForce(t *testing.T) {
	boxes := []struct {
		name string
		min  core.Vec3
		max  core.Vec3
	}{
		{"around origin", core.NewVec3(-1, -2, -3), core.NewVec3(4, 5, 6)},
		{"all negative", core.NewVec3(-10, -10, -10), core.NewVec3(-5, -6, -7)},
		{"far away", core.NewVec3(1e6, 0, 1e6), core.NewVec3(1e6+1, 1, 1e6+2)},
	}
	angles := []float64{0, 15, 30, 45, 90, 137, 180, -60, 270, 359}

	for _, b := range boxes {
		for _, angle := range angles {
			child := NewBox(b.min, b.max, nil)
			rotated := NewRotateY(child, angle)

			got, ok := rotated.BoundingBox(0, 1)
			if !ok {
				t.Fatalf("%s at %g°: expected a bounding box", b.name, angle)
			}

			// Independent oracle: rotate every corner with a quaternion
			rotation := r3.NewRotation(angle*math.Pi/180, r3.Vec{Y: 1})
			childBox, _ := child.BoundingBox(0, 1)
			wantMin := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
			wantMax := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
			for _, corner := range childBox.Corners() {
				p := rotation.Rotate(r3.Vec{X: corner.X, Y: corner.Y, Z: corner.Z})
				wantMin = r3.Vec{X: math.Min(wantMin.X, p.X), Y: math.Min(wantMin.Y, p.Y), Z: math.Min(wantMin.Z, p.Z)}
				wantMax = r3.Vec{X: math.Max(wantMax.X, p.X), Y: math.Max(wantMax.Y, p.Y), Z: math.Max(wantMax.Z, p.Z)}

				rotatedCorner := rotated.toWorld(corner)
				if !insideBox(got, rotatedCorner, 1e-9) {
					t.Errorf("%s at %g°: corner %v outside %+v", b.name, angle, rotatedCorner, got)
				}
			}

			want := core.NewAABB(
				core.NewVec3(wantMin.X, wantMin.Y, wantMin.Z),
				core.NewVec3(wantMax.X, wantMax.Y, wantMax.Z),
			)
			tolerance := 1e-9 * math.Max(1, b.max.Length())
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
				t.Errorf("%s at %g°: box mismatch (-want +got):\n%s", b.name, angle, diff)
			}
		}
	}
}

func TestRotateY_NoChildBox(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), nil)
	rotated := NewRotateY(plane, 30)

	if _, ok := rotated.BoundingBox(0, 1); ok {
		t.Error("Expected rotated plane to have no bounding box")
	}

	// Intersection still works without a box
	hit, ok := rotated.Hit(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0.001, math.Inf(1))
	if !ok || math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected hit at t=2, got %v (hit=%t)", hit, ok)
	}
}

// invertedBox reports a box with Min above Max, as a malformed child might
type invertedBox struct {
	stubHittable
}

func (invertedBox) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1)), true
}

func TestRotateY_InvalidChildBox(t *testing.T) {
	rotated := NewRotateY(invertedBox{}, 30)

	if box, ok := rotated.BoundingBox(0, 1); ok {
		t.Errorf("Expected no bounding box for an inverted child box, got %+v", box)
	}
}

func TestRotateY_PreservesTime(t *testing.T) {
	moving := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 4, 0), 0, 1, 1, nil)
	rotated := NewRotateY(moving, 45)

	ray := core.NewRayAtTime(core.NewVec3(0, 4, -10), core.NewVec3(0, 0, 1), 1)
	if _, ok := rotated.Hit(ray, 0.001, math.Inf(1)); !ok {
		t.Error("Expected the rotated ray to keep its time and hit the moved sphere")
	}
	ray.Time = 0
	if _, ok := rotated.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("Expected miss at time 0")
	}
}

func TestComposedTransforms(t *testing.T) {
	// Unit cube turned 90° about its own corner, then lifted by 10
	cube := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil)
	instance := NewTranslate(NewRotateY(cube, 90), core.NewVec3(0, 10, 0))

	box, ok := instance.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	want := core.NewAABB(core.NewVec3(0, 10, -1), core.NewVec3(1, 11, 0))
	if diff := cmp.Diff(want, box, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Box mismatch (-want +got):\n%s", diff)
	}

	// The +X face of the cube now faces -Z
	hit, ok := instance.Hit(core.NewRay(core.NewVec3(0.5, 10.5, -5), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.Point.ApproxEqual(core.NewVec3(0.5, 10.5, -1), 1e-9) {
		t.Errorf("Expected point (0.5,10.5,-1), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestTransforms_ForwardSampling(t *testing.T) {
	light := NewXZRect(-1, 1, -1, 1, 0, nil)
	origin := core.NewVec3(0.3, -4, 0.2)

	transforms := []struct {
		name    string
		wrapped Hittable
	}{
		{"flip normals", NewFlipNormals(light)},
		{"translate", NewTranslate(light, core.NewVec3(2, 1, -3))},
		{"rotate", NewRotateY(light, 30)},
		{"translate rotate", NewTranslate(NewRotateY(light, 60), core.NewVec3(-1, 2, 0))},
	}

	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			sampler := core.NewSeededSampler(42)
			hits := 0
			const n = 500
			for i := 0; i < n; i++ {
				direction := RandomDirection(tt.wrapped, origin, sampler)
				if _, ok := tt.wrapped.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); ok {
					hits++
					if pdf := PDFValue(tt.wrapped, origin, direction); pdf <= 0 {
						t.Fatalf("Expected positive pdf toward the light, got %f", pdf)
					}
				}
			}
			if hits < n*99/100 {
				t.Errorf("Only %d of %d sampled directions hit the light", hits, n)
			}
		})
	}
}

func TestTransforms_NotSampleable(t *testing.T) {
	plane := NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), nil)
	sampler := core.NewSeededSampler(1)

	for _, h := range []Hittable{plane, NewFlipNormals(plane), NewTranslate(plane, core.NewVec3(1, 0, 0)), NewRotateY(plane, 10)} {
		if pdf := PDFValue(h, core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)); pdf != 0 {
			t.Errorf("%s: expected pdf 0, got %f", NameOf(h), pdf)
		}
		if d := RandomDirection(h, core.NewVec3(0, 1, 0), sampler); d != core.Left {
			t.Errorf("%s: expected core.Left, got %v", NameOf(h), d)
		}
	}
}
