package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction guide
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// Camera generates primary rays from a fixed view basis
type Camera struct {
	config     CameraConfig
	origin     core.Vec3
	forward    core.Vec3
	right      core.Vec3
	up         core.Vec3
	halfWidth  float64
	halfHeight float64
}

// NewCamera builds a right-handed orthonormal basis from the configuration
func NewCamera(config CameraConfig) *Camera {
	forward := config.LookAt.Subtract(config.Center).Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward).Normalize()

	halfHeight := math.Tan(config.VFov * math.Pi / 180 / 2)
	halfWidth := halfHeight * config.AspectRatio

	return &Camera{
		config:     config,
		origin:     config.Center,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// MergeCameraConfig applies non-zero override fields on top of a base config
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	return result
}

// CreateRay returns the primary ray through a normalized screen coordinate in [-1,1]².
// The direction is deliberately left unnormalized.
func (c *Camera) CreateRay(px core.Vec2) core.Ray {
	direction := c.forward.
		Add(c.right.Multiply(px.X * c.halfWidth)).
		Add(c.up.Multiply(px.Y * c.halfHeight))
	return core.NewRay(c.origin, direction)
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Basis returns the forward, right and up vectors of the view
func (c *Camera) Basis() (forward, right, up core.Vec3) {
	return c.forward, c.right, c.up
}

// HalfExtents returns the viewport half width and half height at unit distance
func (c *Camera) HalfExtents() (halfWidth, halfHeight float64) {
	return c.halfWidth, c.halfHeight
}

// ViewMatrix returns the world-to-camera transform for this view
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(toMgl(c.origin), toMgl(c.config.LookAt), toMgl(c.up))
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
