package server

import (
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/disintegration/imaging"

	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
)

var renderCounter atomic.Int64

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene name or discovered scene file ID
	Width   int    // Image width, 0 for the scene default
	Height  int    // Image height, 0 for the scene default
	Format  string // "ppm" or "png"
	Workers int    // 0 = auto-detect
}

// handleRender renders a full frame and returns it as PPM or PNG.
// Progress and log lines are pushed to websocket subscribers while it runs.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	width, height := req.Width, req.Height
	if width == 0 {
		width = sceneObj.RenderConfig.Width
	}
	if height == 0 {
		height = sceneObj.RenderConfig.Height
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))

	// Console messages flow through a channel so logging never blocks the render
	consoleChan := make(chan ConsoleMessage, 100)
	consoleDone := make(chan struct{})
	go forwardConsole(s.hub, renderID, consoleChan, consoleDone)

	raytracer := renderer.NewRaytracer(sceneObj, width, height)
	raytracer.SetWorkers(req.Workers)
	raytracer.SetLogger(NewWebLogger(renderID, consoleChan))
	raytracer.SetProgressCallback(func(rowsDone, totalRows int) {
		s.hub.Publish(Event{Type: "progress", RenderID: renderID, RowsDone: rowsDone, TotalRows: totalRows})
	})

	s.hub.Publish(Event{Type: "start", RenderID: renderID, Scene: sceneObj.Name, TotalRows: height})

	// Use request context to stop rendering when the client disconnects
	fb, stats, err := raytracer.Render(r.Context())
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.hub.Publish(Event{Type: "error", RenderID: renderID, Message: err.Error()})
		writeError(w, http.StatusServiceUnavailable, "Render error: "+err.Error())
		return
	}
	s.hub.Publish(Event{Type: "complete", RenderID: renderID, RowsDone: stats.Rows, TotalRows: height, Message: stats.String()})

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Primary-Hits", strconv.Itoa(stats.PrimaryHits))

	switch req.Format {
	case "png":
		w.Header().Set("Content-Type", "image/png")
		if err := imaging.Encode(w, fb, imaging.PNG); err != nil {
			fmt.Printf("[%s] failed to encode png: %v\n", renderID, err)
		}
	default:
		w.Header().Set("Content-Type", "image/x-portable-pixmap")
		if err := output.EncodePPM(w, fb); err != nil {
			fmt.Printf("[%s] failed to encode ppm: %v\n", renderID, err)
		}
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}

	req.Format = query.Get("format")
	switch req.Format {
	case "":
		req.Format = "ppm"
	case "ppm", "png":
	default:
		return nil, fmt.Errorf("format must be ppm or png, got: %s", req.Format)
	}

	return req, nil
}
