package material

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// Continuation identifies how a path carries on after hitting a surface
type Continuation int

const (
	// Absorb ends the path at this surface
	Absorb Continuation = iota
	// Reflect continues along the mirror direction
	Reflect
	// Refract continues through the surface
	Refract
)

func (c Continuation) String() string {
	switch c {
	case Reflect:
		return "reflect"
	case Refract:
		return "refract"
	default:
		return "absorb"
	}
}

// Material describes how a surface is lit and how rays continue from it
type Material struct {
	Color        core.Vec3 // Base color
	Damping      float64   // Specular exponent
	Reflectivity float64   // Weight of the reflected continuation [0,1]
	Refractivity float64   // Weight of the refracted continuation [0,1]
	IOR          float64   // Index of refraction
}

// NewMaterial creates a material, clamping coefficients into their valid ranges
func NewMaterial(color core.Vec3, damping, reflectivity, refractivity, ior float64) Material {
	if ior <= 0 {
		ior = 1
	}
	return Material{
		Color:        color,
		Damping:      max(0, damping),
		Reflectivity: max(0, min(1, reflectivity)),
		Refractivity: max(0, min(1, refractivity)),
		IOR:          ior,
	}
}

// NewDiffuse creates a matte material that terminates paths
func NewDiffuse(color core.Vec3, damping float64) Material {
	return NewMaterial(color, damping, 0, 0, 1)
}

// NewMirror creates a reflective material
func NewMirror(color core.Vec3, damping, reflectivity float64) Material {
	return NewMaterial(color, damping, reflectivity, 0, 1)
}

// NewGlass creates a refractive material
func NewGlass(color core.Vec3, damping, refractivity, ior float64) Material {
	return NewMaterial(color, damping, 0, refractivity, ior)
}

// Continuation selects the single way a path continues from this surface.
// Reflection wins over refraction; refraction only applies when reflectivity is exactly zero.
func (m Material) Continuation() Continuation {
	if m.Reflectivity > 0 {
		return Reflect
	}
	if m.Refractivity > 0 {
		return Refract
	}
	return Absorb
}

// Weight returns the multiplier applied to the path weight for the chosen continuation
func (m Material) Weight() float64 {
	switch m.Continuation() {
	case Reflect:
		return m.Reflectivity
	case Refract:
		return m.Refractivity
	default:
		return 0
	}
}

// Validate reports the first out-of-range coefficient
func (m Material) Validate() error {
	if m.Damping < 0 {
		return fmt.Errorf("damping must be >= 0, got %g", m.Damping)
	}
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("reflectivity must be in [0,1], got %g", m.Reflectivity)
	}
	if m.Refractivity < 0 || m.Refractivity > 1 {
		return fmt.Errorf("refractivity must be in [0,1], got %g", m.Refractivity)
	}
	if m.IOR <= 0 {
		return fmt.Errorf("index of refraction must be > 0, got %g", m.IOR)
	}
	return nil
}
