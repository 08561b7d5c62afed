package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests the ray against the sphere's near surface.
// Only the nearer root is considered, so a ray starting inside the sphere never reports an exit.
func (s *Sphere) Intersect(ray core.Ray) (RayIntersection, bool) {
	// Move into sphere-local space
	o := ray.Origin.Subtract(s.Center)
	d := ray.Direction

	// Quadratic equation coefficients: at² + bt + c = 0
	a := d.Dot(d)
	b := 2 * d.Dot(o)
	c := o.Dot(o) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RayIntersection{}, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if !(t > MinLength) {
		return RayIntersection{}, false
	}

	point := ray.At(t)
	return RayIntersection{
		T:        t,
		Normal:   point.Subtract(s.Center).Normalize(),
		Material: s.Material,
	}, true
}
