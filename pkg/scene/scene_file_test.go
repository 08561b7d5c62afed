package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

const sampleSceneJSON = `{
  "name": "sample",
  "width": 8,
  "height": 4,
  "background": [0, 0, 0.2],
  "camera": {"center": [0, 1, 3], "lookAt": [0, 0, 0], "vfov": 45},
  "lights": [{"position": [2, 4, 2], "color": [1, 1, 1], "force": 25}],
  "spheres": [
    {"center": [0, 0.5, 0], "radius": 0.5,
     "material": {"color": [0.9, 0.1, 0.1], "damping": 20, "reflectivity": 0.4}}
  ],
  "planes": [
    {"point": [0, 0, 0], "normal": [0, 2, 0],
     "material": {"color": [0.5, 0.5, 0.5], "damping": 4, "refractivity": 0.2, "ior": 1.3}}
  ]
}`

func TestParse_SampleScene(t *testing.T) {
	s, err := Parse(strings.NewReader(sampleSceneJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if s.Name != "sample" {
		t.Errorf("Expected name 'sample', got %q", s.Name)
	}
	if s.RenderConfig.Width != 8 || s.RenderConfig.Height != 4 {
		t.Errorf("Unexpected resolution %+v", s.RenderConfig)
	}
	if s.CameraConfig.AspectRatio != 2 {
		t.Errorf("Expected aspect ratio derived from resolution (2), got %f", s.CameraConfig.AspectRatio)
	}
	if s.CameraConfig.Up != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected default up vector, got %v", s.CameraConfig.Up)
	}
	if s.Background != core.NewVec3(0, 0, 0.2) {
		t.Errorf("Expected background override, got %v", s.Background)
	}
	if len(s.Lights) != 1 || len(s.Spheres) != 1 || len(s.Planes) != 1 {
		t.Fatalf("Unexpected primitive counts: %d lights, %d spheres, %d planes", len(s.Lights), len(s.Spheres), len(s.Planes))
	}
	if s.Spheres[0].Material.Reflectivity != 0.4 || s.Spheres[0].Material.IOR != 1 {
		t.Errorf("Unexpected sphere material %+v", s.Spheres[0].Material)
	}
	if s.Planes[0].Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected plane normal to be normalized, got %v", s.Planes[0].Normal)
	}
	if s.Planes[0].Material.IOR != 1.3 {
		t.Errorf("Expected plane IOR 1.3, got %f", s.Planes[0].Material.IOR)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"width": 4,`},
		{"unknown field", `{"width": 4, "height": 4, "bogus": true}`},
		{"invalid sphere", `{"width": 4, "height": 4,
			"camera": {"center": [0,0,0], "lookAt": [0,0,-1], "vfov": 60},
			"lights": [], "spheres": [{"center": [0,0,-2], "radius": -1, "material": {"color": [1,1,1]}}]}`},
		{"up parallel to view", `{"width": 4, "height": 4,
			"camera": {"center": [0,0,0], "lookAt": [0,0,-1], "up": [0,0,1], "vfov": 60},
			"lights": []}`},
		{"default up looking straight down", `{"width": 4, "height": 4,
			"camera": {"center": [0,5,0], "lookAt": [0,0,0], "vfov": 60},
			"lights": []}`},
		{"missing resolution", `{"camera": {"center": [0,0,0], "lookAt": [0,0,-1], "vfov": 60}, "lights": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.json")
	content := strings.Replace(sampleSceneJSON, `"name": "sample",`, "", 1)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Name != "unnamed" {
		t.Errorf("Expected name from file, got %q", s.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist for missing file, got %v", err)
	}
}
