package scene

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// DefaultBackground is the color every path starts from
var DefaultBackground = core.NewVec3(0.10, 0.10, 0.11)

// Scene contains all the elements needed for rendering.
// It is built once and treated as read-only while rendering.
type Scene struct {
	Name         string
	Lights       []lights.PointLight
	Spheres      []*geometry.Sphere
	Planes       []*geometry.Plane
	Background   core.Vec3
	CameraConfig geometry.CameraConfig
	RenderConfig RenderConfig
}

// RenderConfig contains the recommended output settings for a scene
type RenderConfig struct {
	Width  int // Image width in pixels
	Height int // Image height in pixels
}

// New creates an empty scene with the default background
func New(name string, camera geometry.CameraConfig, render RenderConfig) *Scene {
	return &Scene{
		Name:         name,
		Lights:       make([]lights.PointLight, 0),
		Spheres:      make([]*geometry.Sphere, 0),
		Planes:       make([]*geometry.Plane, 0),
		Background:   DefaultBackground,
		CameraConfig: camera,
		RenderConfig: render,
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, mat))
}

// AddPlane adds an infinite plane to the scene
func (s *Scene) AddPlane(point, normal core.Vec3, mat material.Material) {
	s.Planes = append(s.Planes, geometry.NewPlane(point, normal, mat))
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position, color core.Vec3, force float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, force))
}

// Trace finds the closest intersection along the ray.
// Spheres are tested before planes; only a strictly smaller t replaces the current best.
func (s *Scene) Trace(ray core.Ray) geometry.RayIntersection {
	closest := geometry.Miss()

	for _, sphere := range s.Spheres {
		if hit, ok := sphere.Intersect(ray); ok && hit.T < closest.T {
			closest = hit
		}
	}
	for _, plane := range s.Planes {
		if hit, ok := plane.Intersect(ray); ok && hit.T < closest.T {
			closest = hit
		}
	}

	return closest
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres) + len(s.Planes)
}

// Validate checks the scene for values that would produce undefined shading
func (s *Scene) Validate() error {
	for i, sphere := range s.Spheres {
		if sphere.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius must be > 0, got %g", i, sphere.Radius)
		}
		if err := sphere.Material.Validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	for i, plane := range s.Planes {
		if plane.Normal.IsZero() {
			return fmt.Errorf("plane %d: normal must be non-zero", i)
		}
		if err := plane.Material.Validate(); err != nil {
			return fmt.Errorf("plane %d: %w", i, err)
		}
	}
	for i, light := range s.Lights {
		if light.Force < 0 {
			return fmt.Errorf("light %d: force must be >= 0, got %g", i, light.Force)
		}
	}
	cam := s.CameraConfig
	forward := cam.LookAt.Subtract(cam.Center).Normalize()
	if forward.IsZero() {
		return fmt.Errorf("camera: look-at point must differ from the camera center")
	}
	if forward.Cross(cam.Up).Normalize().IsZero() {
		return fmt.Errorf("camera: up vector must be non-zero and not parallel to the view direction")
	}
	if cam.VFov <= 0 || cam.VFov >= 180 {
		return fmt.Errorf("camera: vertical field of view must be in (0,180), got %g", cam.VFov)
	}
	if s.RenderConfig.Width <= 0 || s.RenderConfig.Height <= 0 {
		return fmt.Errorf("render: resolution must be positive, got %dx%d", s.RenderConfig.Width, s.RenderConfig.Height)
	}
	return nil
}
