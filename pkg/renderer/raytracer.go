package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	RayEpsilon      float64 // Minimum hit distance, avoids self-intersection
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		RayEpsilon:      0.001,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() geometry.Hittable
	// GetLights returns the objects to importance-sample, or nil
	GetLights() geometry.Hittable
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene   Scene
	width   int
	height  int
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer with a deterministic sampler
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:   scene,
		width:   width,
		height:  height,
		config:  DefaultSamplingConfig(),
		sampler: core.NewSeededSampler(42),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetSampler replaces the random source used for every sample
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetLogger enables progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

func (rt *Raytracer) logf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// calculateSpecularColor handles specular material scattering
func (rt *Raytracer) calculateSpecularColor(scatter core.ScatterResult, depth int) core.Vec3 {
	return scatter.Attenuation.MultiplyVec(
		rt.rayColorRecursive(scatter.Scattered, depth-1))
}

// calculateDiffuseColor estimates (BRDF * incomingLight * cosine) / PDF.
// When the scene has lights and the material can evaluate its density, the
// direction comes from an even mixture of light and material sampling.
func (rt *Raytracer) calculateDiffuseColor(rayIn core.Ray, scatter core.ScatterResult, hit *core.HitRecord, depth int) core.Vec3 {
	normal := hit.Normal
	if !hit.FrontFace(rayIn) {
		normal = normal.Negate()
	}

	scattered := scatter.Scattered
	pdf := scatter.PDF

	lights := rt.scene.GetLights()
	if pdfMaterial, ok := hit.Material.(core.PDFMaterial); ok && lights != nil {
		// core.Left means the lights cannot be sampled from this point, so
		// the material sample is used alone with its own density
		lightDirection := geometry.RandomDirection(lights, hit.Point, rt.sampler)
		if !lightDirection.Equals(core.Left) {
			if rt.sampler.Get1D() < 0.5 {
				scattered = core.NewRayAtTime(hit.Point, lightDirection, rayIn.Time)
			}
			pdf = 0.5*geometry.PDFValue(lights, hit.Point, scattered.Direction) +
				0.5*pdfMaterial.ScatteringPDF(rayIn, *hit, scattered)
		}
	}

	if pdf <= 0 {
		return core.Vec3{}
	}

	cosine := scattered.Direction.Normalize().Dot(normal)
	if cosine <= 0 {
		return core.Vec3{}
	}

	incomingLight := rt.rayColorRecursive(scattered, depth-1)
	return scatter.Attenuation.Multiply(cosine / pdf).MultiplyVec(incomingLight)
}

// rayColorRecursive returns the color for a given ray with material support
func (rt *Raytracer) rayColorRecursive(r core.Ray, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetWorld().Hit(r, rt.config.RayEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	var emitted core.Vec3
	if emitter, ok := hit.Material.(core.Emitter); ok {
		emitted = emitter.Emitted(hit.U, hit.V, hit.Point)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.sampler)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		return emitted.Add(rt.calculateSpecularColor(scatter, depth))
	}
	return emitted.Add(rt.calculateDiffuseColor(r, scatter, hit, depth))
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// NaN samples would otherwise poison the conversion
	if math.IsNaN(colorVec.X) || math.IsNaN(colorVec.Y) || math.IsNaN(colorVec.Z) {
		colorVec = core.Vec3{}
	}

	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders the image with multi-sampling and returns it with statistics
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()
	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		MaxSamples:  rt.config.SamplesPerPixel,
	}

	rt.logf("Rendering %dx%d, %d samples per pixel, max depth %d",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			var pixel PixelStats

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				jitter := rt.sampler.Get2D()
				s := (float64(i) + jitter.X) / float64(rt.width)
				t := (float64(j) + jitter.Y) / float64(rt.height)

				ray := camera.GetRay(s, t, rt.sampler)
				pixel.AddSample(rt.rayColorRecursive(ray, rt.config.MaxDepth))
			}

			stats.add(pixel)
			img.SetRGBA(i, rt.height-1-j, vec3ToColor(pixel.GetColor()))
		}
	}

	stats.finish()
	rt.logf("Rendered %d samples, average luminance %.4f",
		stats.TotalSamples, CalculateAverageLuminance(img))

	return img, stats
}
