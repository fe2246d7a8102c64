package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Material decides how light leaves a surface. The core only stores a
// reference to it in HitRecord; scenes own material lifetimes.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// PDFMaterial is implemented by diffuse materials whose scattering density
// can be evaluated for directions they did not generate themselves
type PDFMaterial interface {
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(u, v float64, p Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray     // The scattered ray
	Attenuation Vec3    // Color attenuation
	PDF         float64 // Probability density of Scattered (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}
