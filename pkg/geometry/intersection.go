package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

const (
	// MinLength is the smallest parametric distance accepted as a hit.
	// It also offsets secondary ray origins off the surface.
	MinLength = 1e-4
	// MissDistance is the parametric distance reported when nothing is hit
	MissDistance = 1e9
)

// RayIntersection records the closest surface found along a ray
type RayIntersection struct {
	T        float64           // Parametric distance along the ray
	Normal   core.Vec3         // Surface normal at the hit
	Material material.Material // Material of the hit surface
}

// Miss returns the sentinel intersection for rays that hit nothing
func Miss() RayIntersection {
	return RayIntersection{T: MissDistance}
}

// Hit reports whether the intersection refers to a real surface
func (ri RayIntersection) Hit() bool {
	return ri.T < MissDistance
}

// Shape is anything a ray can be intersected with
type Shape interface {
	Intersect(ray core.Ray) (RayIntersection, bool)
}
