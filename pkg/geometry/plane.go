package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the plane.
// The stored normal is reported as-is regardless of which side the ray arrives from.
func (p *Plane) Intersect(ray core.Ray) (RayIntersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never hit
	if denominator == 0 {
		return RayIntersection{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !(t > MinLength && t < MissDistance) {
		return RayIntersection{}, false
	}

	return RayIntersection{
		T:        t,
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
