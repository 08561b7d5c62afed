package integrator

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the final, clamped color for a primary ray
	RayColor(ray core.Ray, s *scene.Scene) core.Vec3

	// ShadeRay is RayColor that also reports whether the primary ray hit anything
	ShadeRay(ray core.Ray, s *scene.Scene) (core.Vec3, bool)
}
