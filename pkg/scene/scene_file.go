package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

// Vec converts the array to a core.Vec3
func (v Vec3Cfg) Vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type MaterialCfg struct {
	Color        Vec3Cfg `json:"color"`
	Damping      float64 `json:"damping"`
	Reflectivity float64 `json:"reflectivity,omitempty"`
	Refractivity float64 `json:"refractivity,omitempty"`
	IOR          float64 `json:"ior,omitempty"` // defaults to 1
}

type SphereCfg struct {
	Center   Vec3Cfg     `json:"center"`
	Radius   float64     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

type PlaneCfg struct {
	Point    Vec3Cfg     `json:"point"`
	Normal   Vec3Cfg     `json:"normal"`
	Material MaterialCfg `json:"material"`
}

type LightCfg struct {
	Position Vec3Cfg `json:"position"`
	Color    Vec3Cfg `json:"color"`
	Force    float64 `json:"force"`
}

type CameraCfg struct {
	Center      Vec3Cfg  `json:"center"`
	LookAt      Vec3Cfg  `json:"lookAt"`
	Up          *Vec3Cfg `json:"up,omitempty"` // defaults to +Y
	VFov        float64  `json:"vfov"`
	AspectRatio float64  `json:"aspectRatio,omitempty"` // defaults to width/height
}

// FileConfig is the JSON representation of a scene
type FileConfig struct {
	Name       string      `json:"name,omitempty"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Background *Vec3Cfg    `json:"background,omitempty"`
	Camera     CameraCfg   `json:"camera"`
	Lights     []LightCfg  `json:"lights"`
	Spheres    []SphereCfg `json:"spheres,omitempty"`
	Planes     []PlaneCfg  `json:"planes,omitempty"`
}

// Build converts the description without clamping; out-of-range values are left for Scene.Validate
func (mc MaterialCfg) Build() material.Material {
	ior := mc.IOR
	if ior == 0 {
		ior = 1
	}
	return material.Material{
		Color:        mc.Color.Vec(),
		Damping:      mc.Damping,
		Reflectivity: mc.Reflectivity,
		Refractivity: mc.Refractivity,
		IOR:          ior,
	}
}

// Build converts the file description into a validated scene
func (fc FileConfig) Build() (*Scene, error) {
	up := core.NewVec3(0, 1, 0)
	if fc.Camera.Up != nil {
		up = fc.Camera.Up.Vec()
	}
	aspect := fc.Camera.AspectRatio
	if aspect <= 0 && fc.Height > 0 {
		aspect = float64(fc.Width) / float64(fc.Height)
	}

	name := fc.Name
	if name == "" {
		name = "file"
	}

	s := New(name, geometry.CameraConfig{
		Center:      fc.Camera.Center.Vec(),
		LookAt:      fc.Camera.LookAt.Vec(),
		Up:          up,
		VFov:        fc.Camera.VFov,
		AspectRatio: aspect,
	}, RenderConfig{Width: fc.Width, Height: fc.Height})

	if fc.Background != nil {
		s.Background = fc.Background.Vec()
	}
	for _, lc := range fc.Lights {
		s.AddLight(lc.Position.Vec(), lc.Color.Vec(), lc.Force)
	}
	for _, sc := range fc.Spheres {
		s.AddSphere(sc.Center.Vec(), sc.Radius, sc.Material.Build())
	}
	for _, pc := range fc.Planes {
		s.AddPlane(pc.Point.Vec(), pc.Normal.Vec(), pc.Material.Build())
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Parse decodes and validates a JSON scene description
func Parse(r io.Reader) (*Scene, error) {
	fc, err := decodeFileConfig(r)
	if err != nil {
		return nil, err
	}
	return fc.Build()
}

// LoadFile reads and validates a JSON scene description from disk.
// Unnamed scenes take the file's base name.
func LoadFile(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	fc, err := decodeFileConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if fc.Name == "" {
		fc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s, err := fc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func decodeFileConfig(r io.Reader) (FileConfig, error) {
	var fc FileConfig
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode scene: %w", err)
	}
	return fc, nil
}
