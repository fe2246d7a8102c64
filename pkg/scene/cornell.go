package scene

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box scene with rect walls and area lighting
func NewCornellScene() *Scene {
	config := renderer.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:            core.NewVec3(0, 1, 0),        // Standard up direction
		Width:         400,
		AspectRatio:   1.0,  // Square aspect ratio for Cornell box
		VFov:          40.0, // Field of view
		Aperture:      0.0,  // No depth of field for Cornell box
		FocusDistance: 0.0,  // Auto-calculate focus distance
	}

	s := &Scene{
		Camera:       renderer.NewCamera(config),
		CameraConfig: config,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 150,
			MaxDepth:        40,
			RayEpsilon:      0.001,
		},
		TopColor:    core.NewVec3(0.0, 0.0, 0.0), // Black background
		BottomColor: core.NewVec3(0.0, 0.0, 0.0), // Black background
		World:       geometry.NewHittableList(),
	}

	// Create materials
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	// Walls facing +X, +Y or +Z need their normals turned into the box
	leftWall := geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green))
	leftWall.Label = "left wall"

	rightWall := geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red)
	rightWall.Label = "right wall"

	ceiling := geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white))
	ceiling.Label = "ceiling"

	floor := geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white)
	floor.Label = "floor"

	backWall := geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white))
	backWall.Label = "back wall"

	// Light just below the ceiling, facing down
	ceilingLight := geometry.NewFlipNormals(geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light))
	ceilingLight.Label = "ceiling light"

	shortBlock := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65),
	)
	shortBlock.Label = "short block"

	tallBlock := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295),
	)
	tallBlock.Label = "tall block"

	s.World.Add(leftWall)
	s.World.Add(rightWall)
	s.World.Add(ceilingLight)
	s.World.Add(ceiling)
	s.World.Add(floor)
	s.World.Add(backWall)
	s.World.Add(shortBlock)
	s.World.Add(tallBlock)

	// Sampling uses its own copy of the light so no primitive has two owners
	lightShape := geometry.NewXZRect(213, 343, 227, 332, boxSize-1, nil)
	lightShape.Label = "light sampler"
	s.Lights = lightShape

	return s
}
