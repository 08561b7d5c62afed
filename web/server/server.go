package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	MinImageSize = 1
	MaxImageSize = 2000
)

// Server handles web requests for the ray caster
type Server struct {
	port      int
	scenesDir string
	hub       *Hub
}

// NewServer creates a new web server. Scene files are discovered in scenesDir.
func NewServer(port int, scenesDir string) *Server {
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		hub:       NewHub(),
	}
}

// Hub returns the websocket hub that receives render progress
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/ws", s.hub.ServeWS)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes followed by scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	files, err := scene.ListSceneFiles(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list scenes: "+err.Error())
		return
	}

	scenes := append(scene.Builtins(), files...)
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scenes})
}

// handleSceneConfig returns the default camera and resolution of a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	camera := geometry.NewCamera(sceneObj.CameraConfig)
	forward, right, up := camera.Basis()
	halfWidth, halfHeight := camera.HalfExtents()
	view := camera.ViewMatrix()
	cfg := sceneObj.CameraConfig

	response := map[string]interface{}{
		"scene": sceneObj.Name,
		"defaults": map[string]interface{}{
			"width":  sceneObj.RenderConfig.Width,
			"height": sceneObj.RenderConfig.Height,
		},
		"camera": map[string]interface{}{
			"center":      vecJSON(cfg.Center),
			"lookAt":      vecJSON(cfg.LookAt),
			"up":          vecJSON(cfg.Up),
			"vfov":        cfg.VFov,
			"aspectRatio": cfg.AspectRatio,
			"forward":     vecJSON(forward),
			"right":       vecJSON(right),
			"trueUp":      vecJSON(up),
			"halfWidth":   halfWidth,
			"halfHeight":  halfHeight,
			"viewMatrix":  view[:], // Column-major
		},
		"stats": map[string]int{
			"spheres": len(sceneObj.Spheres),
			"planes":  len(sceneObj.Planes),
			"lights":  len(sceneObj.Lights),
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height": map[string]int{"min": MinImageSize, "max": MaxImageSize},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// createScene resolves a built-in scene or a scene file discovered in the scenes directory.
// Arbitrary paths are never opened.
func (s *Server) createScene(name string) (*scene.Scene, error) {
	for _, info := range scene.Builtins() {
		if info.ID == name {
			return scene.Create(name)
		}
	}

	files, err := scene.ListSceneFiles(s.scenesDir)
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.ID == name {
			return scene.LoadFile(info.FilePath)
		}
	}
	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, name)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
