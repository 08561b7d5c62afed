package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name matches neither a built-in nor a file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // file type only
}

type builtin struct {
	info   SceneInfo
	create func() *Scene
}

var builtins = []builtin{
	{SceneInfo{ID: "default", DisplayName: "Default", Description: "Spheres on a reflective ground with two lights", Type: "builtin"},
		func() *Scene { return NewDefaultScene() }},
	{SceneInfo{ID: "mirror-hall", DisplayName: "Mirror Hall", Description: "Facing mirrors around a glass sphere", Type: "builtin"},
		NewMirrorScene},
	{SceneInfo{ID: "single-sphere", DisplayName: "Single Sphere", Description: "One unlit red sphere", Type: "builtin"},
		NewSingleSphereScene},
}

// Builtins returns metadata for every compiled-in scene
func Builtins() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	return infos
}

// ListSceneFiles scans dir for JSON scene descriptions
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []SceneInfo{}, nil
		}
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, path := range files {
		id := strings.TrimSuffix(filepath.Base(path), ".json")
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: id,
			Description: "Scene file " + filepath.Base(path),
			Type:        "file",
			FilePath:    path,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// Create builds a scene by built-in name, or loads it when the name is a path to a .json file
func Create(name string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == name {
			return b.create(), nil
		}
	}
	if strings.HasSuffix(name, ".json") {
		return LoadFile(name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
