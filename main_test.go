package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	validFile := filepath.Join(dir, "ball.json")
	if err := os.WriteFile(validFile, []byte(`{
		"width": 32,
		"height": 24,
		"camera": {"center": [0, 0, 0], "lookAt": [0, 0, -1], "up": [0, 1, 0], "vfov": 60},
		"spheres": [{"center": [0, 0, -3], "radius": 1, "material": {"color": [1, 1, 1]}}]
	}`), 0o644); err != nil {
		t.Fatalf("write scene file: %v", err)
	}

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"mirror-hall scene", "mirror-hall", false},
		{"single-sphere scene", "single-sphere", false},

		// Scene files
		{"json scene file", validFile, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing json file", filepath.Join(dir, "nonexistent.json"), true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Errorf("Scene '%s' should contain primitives", tt.sceneType)
			}
		})
	}
}

func TestCreateScene_UnknownIsSentinel(t *testing.T) {
	_, err := createScene("nonexistent")
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestResolveSize(t *testing.T) {
	s := scene.NewSingleSphereScene()

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"scene defaults", 0, 0, 64, 64},
		{"explicit", 200, 100, 200, 100},
		{"width only", 32, 0, 32, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := resolveSize(s, tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestRun_WritesPPMAndPreview(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		scene:       "single-sphere",
		width:       2,
		height:      2,
		output:      filepath.Join(dir, "out.ppm"),
		workers:     1,
		preview:     filepath.Join(dir, "preview.png"),
		previewSize: 16,
	}

	if err := run(context.Background(), opts, core.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(opts.output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	// Unlit scene: every pixel is the background
	expected := "P3 2 2 255\n25 25 28 25 25 28\n25 25 28 25 25 28\n\n"
	if string(data) != expected {
		t.Errorf("Expected %q, got %q", expected, string(data))
	}
	if _, err := os.Stat(opts.preview); err != nil {
		t.Errorf("Expected preview file: %v", err)
	}
}

func TestRun_OutputFailure(t *testing.T) {
	opts := options{
		scene:   "single-sphere",
		width:   2,
		height:  2,
		output:  filepath.Join(t.TempDir(), "missing", "out.ppm"),
		workers: 1,
	}

	err := run(context.Background(), opts, core.NopLogger{})
	var writeErr *output.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Expected *output.WriteError, got %v", err)
	}
}

func TestRun_UploadRequiresBucket(t *testing.T) {
	opts := options{
		scene:  "single-sphere",
		output: filepath.Join(t.TempDir(), "out.ppm"),
		upload: true,
	}
	if err := run(context.Background(), opts, core.NopLogger{}); err == nil {
		t.Error("Expected error when uploading without a bucket")
	}
}
