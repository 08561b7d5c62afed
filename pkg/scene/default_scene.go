package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, back wall and two lights
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.2, 4),
		LookAt:      core.NewVec3(0, 0.6, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        50.0,
		AspectRatio: 4.0 / 3.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New("default", cameraConfig, RenderConfig{Width: 640, Height: 480})

	// Create materials
	red := material.NewDiffuse(core.NewVec3(0.9, 0.2, 0.15), 40)
	mirror := material.NewMirror(core.NewVec3(0.8, 0.8, 0.85), 120, 0.7)
	glass := material.NewGlass(core.NewVec3(0.6, 0.8, 1.0), 200, 0.5, 1.5)
	gold := material.NewMirror(core.NewVec3(0.9, 0.7, 0.2), 60, 0.3)
	ground := material.NewMirror(core.NewVec3(0.5, 0.55, 0.5), 8, 0.15)
	wall := material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.7), 2)

	s.AddSphere(core.NewVec3(0, 0.6, -1), 0.6, red)
	s.AddSphere(core.NewVec3(-1.4, 0.5, -1.6), 0.5, mirror)
	s.AddSphere(core.NewVec3(1.3, 0.45, -0.6), 0.45, glass)
	s.AddSphere(core.NewVec3(0.6, 0.25, 0.4), 0.25, gold)

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)
	s.AddPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), wall)

	s.AddLight(core.NewVec3(-3, 5, 3), core.NewVec3(1, 1, 1), 40)
	s.AddLight(core.NewVec3(4, 3, 1), core.NewVec3(1, 0.9, 0.8), 20)

	return s
}

// NewSingleSphereScene creates an unlit red sphere straight ahead of the camera
func NewSingleSphereScene() *Scene {
	s := New("single-sphere", geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 1.0,
	}, RenderConfig{Width: 64, Height: 64})

	s.AddSphere(core.NewVec3(0, 0, -5), 1, material.NewDiffuse(core.NewVec3(1, 0, 0), 0))
	return s
}

// NewMirrorScene creates a corridor of facing mirrors with a glass sphere between them
func NewMirrorScene() *Scene {
	s := New("mirror-hall", geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 5),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60.0,
		AspectRatio: 1.0,
	}, RenderConfig{Width: 400, Height: 400})

	mirror := material.NewMirror(core.NewVec3(0.85, 0.9, 0.9), 200, 0.85)
	floor := material.NewDiffuse(core.NewVec3(0.4, 0.4, 0.45), 4)
	ceiling := material.NewDiffuse(core.NewVec3(0.9, 0.9, 0.9), 1)
	glass := material.NewGlass(core.NewVec3(0.7, 0.9, 0.8), 150, 0.6, 1.45)
	blue := material.NewDiffuse(core.NewVec3(0.2, 0.3, 0.9), 30)

	s.AddPlane(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0), mirror)
	s.AddPlane(core.NewVec3(2, 0, 0), core.NewVec3(-1, 0, 0), mirror)
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor)
	s.AddPlane(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0), ceiling)

	s.AddSphere(core.NewVec3(0, 1, 0), 0.8, glass)
	s.AddSphere(core.NewVec3(0.9, 0.4, 1.2), 0.4, blue)

	s.AddLight(core.NewVec3(0, 3.5, 2), core.NewVec3(1, 1, 1), 12)
	s.AddLight(core.NewVec3(-1, 3, -3), core.NewVec3(0.8, 0.8, 1), 8)

	return s
}
