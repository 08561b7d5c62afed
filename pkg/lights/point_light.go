package lights

import "github.com/df07/go-raycaster/pkg/core"

// PointLight is an infinitesimal light source with inverse-square falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3 // Carried for scene descriptions; shading does not tint by it
	Force    float64   // Scalar intensity
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, force float64) PointLight {
	return PointLight{Position: position, Color: color, Force: force}
}

// Illumination describes a light as seen from a surface point
type Illumination struct {
	Direction  core.Vec3 // Unit vector from the point to the light
	DistanceSq float64   // Squared distance to the light
	Fade       float64   // 1 / DistanceSq
}

// Illuminate returns the direction, squared distance and falloff from point to the light
func (l PointLight) Illuminate(point core.Vec3) Illumination {
	toLight := l.Position.Subtract(point)
	distSq := toLight.Dot(toLight)
	return Illumination{
		Direction:  toLight.Normalize(),
		DistanceSq: distSq,
		Fade:       1 / distSq,
	}
}
