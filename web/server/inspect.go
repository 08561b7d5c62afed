package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Final pixel color
	RGB          [3]uint8               `json:"rgb"`   // Quantized as written to the PPM
	Continuation string                 `json:"continuation,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo lists the shading coefficients of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":        vecJSON(mat.Color),
		"damping":      mat.Damping,
		"reflectivity": mat.Reflectivity,
		"refractivity": mat.Refractivity,
		"ior":          mat.IOR,
	}
}

// findShape returns the primitive responsible for an intersection, using the same
// sphere-then-plane order as Scene.Trace
func findShape(sceneObj *scene.Scene, ray core.Ray, t float64) geometry.Shape {
	for _, sphere := range sceneObj.Spheres {
		if hit, ok := sphere.Intersect(ray); ok && hit.T == t {
			return sphere
		}
	}
	for _, plane := range sceneObj.Planes {
		if hit, ok := plane.Intersect(ray); ok && hit.T == t {
			return plane
		}
	}
	return nil
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties
	case *geometry.Plane:
		properties["point"] = vecJSON(geom.Point)
		properties["normal"] = vecJSON(geom.Normal)
		return "plane", properties
	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray of a pixel and describes what it hits
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResponse {
	rt := renderer.NewRaytracer(sceneObj, width, height)
	ray := rt.PixelRay(pixelX, pixelY)

	color := rt.RenderPixel(pixelX, pixelY)
	response := InspectResponse{
		Color: vecJSON(color),
		RGB:   [3]uint8{core.ToByte(color.X), core.ToByte(color.Y), core.ToByte(color.Z)},
	}

	hit := sceneObj.Trace(ray)
	if !hit.Hit() {
		return response
	}

	geometryType, geometryProps := extractGeometryInfo(findShape(sceneObj, ray, hit.T))

	response.Hit = true
	response.GeometryType = geometryType
	response.Point = vecJSON(ray.At(hit.T))
	response.Normal = vecJSON(hit.Normal)
	response.Distance = hit.T
	response.Continuation = hit.Material.Continuation().String()
	response.Properties = map[string]interface{}{
		"material": extractMaterialInfo(hit.Material),
		"geometry": geometryProps,
	}
	return response
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
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

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, width, height, pixelX, pixelY))
}
