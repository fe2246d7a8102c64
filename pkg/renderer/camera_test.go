package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func TestCameraGetCameraForward(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        45.0,
	}
	camera := NewCamera(config)

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)

	if !forward.ApproxEqual(expected, 1e-9) {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraGetRay_CenterLooksAtTarget(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5, core.NewSeededSampler(42))

	if !ray.Origin.Equals(config.Center) {
		t.Errorf("Pinhole ray should start at the camera center, got %v", ray.Origin)
	}
	if !ray.At(1).ApproxEqual(config.LookAt, 1e-9) {
		t.Errorf("Center ray should reach LookAt at t=1, got %v", ray.At(1))
	}
}

func TestCameraGetRay_FieldOfView(t *testing.T) {
	config := DefaultCameraConfig()
	config.AspectRatio = 1.0
	config.VFov = 90.0
	camera := NewCamera(config)

	// Top edge of a 90° view is 45° above the axis
	ray := camera.GetRay(0.5, 1.0, core.NewSeededSampler(42))
	angle := math.Acos(ray.Direction.Normalize().Dot(camera.GetCameraForward()))

	if math.Abs(angle-math.Pi/4) > 1e-9 {
		t.Errorf("Expected 45 degrees to the top edge, got %f", angle*180/math.Pi)
	}
	if ray.Direction.Y <= 0 {
		t.Errorf("Expected t=1 to point up, got %v", ray.Direction)
	}
}

func TestCameraGetRay_DepthOfField(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -4),
		Up:            core.NewVec3(0, 1, 0),
		Width:         100,
		AspectRatio:   1.0,
		VFov:          30.0,
		Aperture:      0.5,
		FocusDistance: 0, // focus on LookAt
	}
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(7)

	moved := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		offset := ray.Origin.Subtract(config.Center)
		if offset.Length() > config.Aperture/2+1e-12 {
			t.Fatalf("Ray origin %v lies outside the lens", ray.Origin)
		}
		if offset.Z != 0 {
			t.Fatalf("Lens samples should stay in the lens plane, got %v", offset)
		}
		if offset.LengthSquared() > 0 {
			moved = true
		}

		// Every lens sample converges on the focus point
		if !ray.At(1).ApproxEqual(config.LookAt, 1e-9) {
			t.Fatalf("Expected ray to pass through focus point, got %v", ray.At(1))
		}
	}

	if !moved {
		t.Error("Expected lens sampling to move ray origins")
	}
}

func TestCameraGetRay_ShutterTime(t *testing.T) {
	config := DefaultCameraConfig()
	config.Time0 = 0.25
	config.Time1 = 0.75
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(42)

	minTime, maxTime := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		minTime = math.Min(minTime, ray.Time)
		maxTime = math.Max(maxTime, ray.Time)
	}

	if minTime < 0.25 || maxTime >= 0.75 {
		t.Errorf("Ray times [%f, %f] escape the shutter interval", minTime, maxTime)
	}
	if maxTime-minTime < 0.4 {
		t.Errorf("Ray times [%f, %f] do not cover the shutter interval", minTime, maxTime)
	}

	// A closed shutter always uses Time0
	config.Time1 = config.Time0
	if ray := NewCamera(config).GetRay(0.5, 0.5, sampler); ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
}

func TestCameraImageSize(t *testing.T) {
	tests := []struct {
		width        int
		aspectRatio  float64
		wantW, wantH int
	}{
		{400, 16.0 / 9.0, 400, 225},
		{400, 1.0, 400, 400},
		{10, 100.0, 10, 1},
		{200, 0, 200, 200},
	}

	for _, tt := range tests {
		config := DefaultCameraConfig()
		config.Width = tt.width
		config.AspectRatio = tt.aspectRatio

		w, h := NewCamera(config).ImageSize()
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ImageSize(%d, %f) = %dx%d, expected %dx%d", tt.width, tt.aspectRatio, w, h, tt.wantW, tt.wantH)
		}
	}
}
