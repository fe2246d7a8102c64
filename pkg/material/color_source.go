package material

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at surface coordinates (u, v) and point p
	Evaluate(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two colors over a Squares x Squares grid in UV space
type Checker struct {
	Even, Odd core.Vec3
	Squares   int
}

// NewChecker creates a UV checkerboard
func NewChecker(even, odd core.Vec3, squares int) *Checker {
	return &Checker{Even: even, Odd: odd, Squares: squares}
}

// Evaluate returns the color of the square containing (u, v)
func (c *Checker) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	n := float64(c.Squares)
	i := int(math.Floor(u * n))
	j := int(math.Floor(v * n))
	if (i+j)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
