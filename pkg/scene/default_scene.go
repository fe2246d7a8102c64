package scene

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0.5, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		Time0:         0.0, // Shutter open for the moving sphere
		Time1:         1.0,
	}

	s := &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			RayEpsilon:      0.001,
		},
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // Sky blue
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // White horizon
		World:       geometry.NewHittableList(),
	}

	// Create materials
	checker := material.NewChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 2)
	ground := material.NewTexturedLambertian(checker)
	glass := material.NewDielectric(1.5)
	brown := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	bronze := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	blue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	// Unbounded ground; its UV repeats every world unit
	groundPlane := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)
	groundPlane.Label = "ground"

	glassSphere := geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass)
	glassSphere.Label = "glass sphere"

	diffuseSphere := geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, brown)
	diffuseSphere.Label = "diffuse sphere"

	mirrorSphere := geometry.NewSphere(core.NewVec3(4, 1, 0), 1, bronze)
	mirrorSphere.Label = "mirror sphere"

	// Bounces upward while the shutter is open
	bouncing := geometry.NewMovingSphere(
		core.NewVec3(2, 0.3, 2.5), core.NewVec3(2, 0.6, 2.5),
		cameraConfig.Time0, cameraConfig.Time1,
		0.3, blue,
	)
	bouncing.Label = "bouncing sphere"

	// A crate turned 30° and moved in front of the spheres
	crate := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(0.8, 0.8, 0.8), gold), 30),
		core.NewVec3(-2.5, 0, 2.5),
	)
	crate.Label = "crate"

	s.World.Add(groundPlane)
	s.World.Add(glassSphere)
	s.World.Add(diffuseSphere)
	s.World.Add(mirrorSphere)
	s.World.Add(bouncing)
	s.World.Add(crate)

	return s
}
