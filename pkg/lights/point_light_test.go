package lights

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestPointLight_Illuminate(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1), 10)

	tests := []struct {
		name       string
		point      core.Vec3
		direction  core.Vec3
		distanceSq float64
	}{
		{"directly below", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 16},
		{"offset", core.NewVec3(3, 4, 0), core.NewVec3(-1, 0, 0), 9},
		{"diagonal", core.NewVec3(2, 2, 0), core.NewVec3(-1, 1, 0).Normalize(), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ill := light.Illuminate(tt.point)
			if ill.Direction.Subtract(tt.direction).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ill.Direction)
			}
			if math.Abs(ill.DistanceSq-tt.distanceSq) > 1e-9 {
				t.Errorf("Expected distance² %f, got %f", tt.distanceSq, ill.DistanceSq)
			}
			if math.Abs(ill.Fade-1/tt.distanceSq) > 1e-12 {
				t.Errorf("Expected fade %f, got %f", 1/tt.distanceSq, ill.Fade)
			}
		})
	}
}
