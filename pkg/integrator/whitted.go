package integrator

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/scene"
)

const (
	// AmbientFactor scales the unshadowed base term of every light
	AmbientFactor = 0.2
	// DiffuseFactor scales the shadow-tested Lambert term
	DiffuseFactor = 0.8
	// IORAir is the refractive index rays travel through between surfaces
	IORAir = 1.0
)

// Config contains the bounce loop limits
type Config struct {
	MaxBounces int     // Maximum number of bounces per primary ray
	MinWeight  float64 // Paths whose weight falls below this stop
}

// DefaultConfig returns the standard bounce limits
func DefaultConfig() Config {
	return Config{
		MaxBounces: 6,
		MinWeight:  0.01,
	}
}

// Continuation is the outcome of one bounce: either a queued ray with a weight
// multiplier, or termination of the path.
type Continuation struct {
	Ray    core.Ray
	Weight float64
	Stop   bool
}

// Continue queues the next ray of the path
func Continue(ray core.Ray, weight float64) Continuation {
	return Continuation{Ray: ray, Weight: weight}
}

// Terminate ends the path after the current bounce
func Terminate() Continuation {
	return Continuation{Stop: true}
}

// BounceResult is everything a single bounce contributes to a path
type BounceResult struct {
	Hit   bool      // False when the ray escaped the scene
	Color core.Vec3 // Shaded color of the hit surface, before path weighting
	Next  Continuation
}

// WhittedIntegrator shades surfaces with point lights and follows a single
// mirror or refraction continuation per bounce
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// RayColor folds bounces into a final color starting from the scene background
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	color, _ := wi.ShadeRay(ray, s)
	return color
}

// ShadeRay computes the final color and reports whether the first bounce hit a surface
func (wi *WhittedIntegrator) ShadeRay(ray core.Ray, s *scene.Scene) (core.Vec3, bool) {
	finalColor := s.Background
	frac := 1.0
	primaryHit := false

	for bounce := 0; bounce < wi.config.MaxBounces; bounce++ {
		result := wi.Step(ray, s)
		if !result.Hit {
			break
		}
		if bounce == 0 {
			primaryHit = true
		}

		// The compounded weight of a continuing surface also scales its own shaded color
		if !result.Next.Stop {
			frac *= result.Next.Weight
		}
		finalColor = finalColor.Add(result.Color.Multiply(frac))

		if result.Next.Stop || frac < wi.config.MinWeight {
			break
		}
		ray = result.Next.Ray
	}

	return finalColor.Clamp(0, 1), primaryHit
}

// Step traces one bounce: local lighting at the hit plus the continuation decision
func (wi *WhittedIntegrator) Step(ray core.Ray, s *scene.Scene) BounceResult {
	hit := s.Trace(ray)
	if !hit.Hit() {
		return BounceResult{Hit: false, Next: Terminate()}
	}

	point := ray.At(hit.T)
	mat := hit.Material

	var diffuse, specular core.Vec3
	weight := 1.0

	for _, light := range s.Lights {
		// The continuation weight compounds once per light
		if mat.Continuation() != material.Absorb {
			weight *= mat.Weight()
		}

		ill := light.Illuminate(point)
		if ill.DistanceSq == 0 {
			// A light sitting on the surface has no direction to shade from
			continue
		}

		brightness := AmbientFactor * ill.Fade
		if wi.visible(point, hit.Normal, ill.Direction, ill.DistanceSq, s) {
			brightness += DiffuseFactor * math.Max(0, hit.Normal.Dot(ill.Direction)) * light.Force * ill.Fade
		}
		diffuse = diffuse.Add(mat.Color.Multiply(brightness))

		// Specular ignores light color and force
		reflectedL := core.Reflect(ill.Direction, hit.Normal)
		specFactor := math.Max(0, reflectedL.Dot(ray.Direction))
		specular = specular.AddScalar(math.Pow(specFactor, mat.Damping) * ill.Fade)
	}

	next := Terminate()
	if len(s.Lights) > 0 {
		next = continuation(ray, point, hit, mat, weight)
	}

	// Refraction fades the lit color toward black; no transmitted color is sampled
	shaded := diffuse.Add(specular).Mix(core.Vec3{}, mat.Refractivity)

	return BounceResult{Hit: true, Color: shaded, Next: next}
}

// visible casts a shadow ray and reports whether nothing sits between the point and the light
func (wi *WhittedIntegrator) visible(point, normal, toLight core.Vec3, distSq float64, s *scene.Scene) bool {
	shadowRay := core.NewRay(point.Add(normal.Multiply(geometry.MinLength)), toLight)
	blocker := s.Trace(shadowRay)
	return blocker.T*blocker.T > distSq
}

// continuation picks the single next ray allowed by the material
func continuation(ray core.Ray, point core.Vec3, hit geometry.RayIntersection, mat material.Material, weight float64) Continuation {
	switch mat.Continuation() {
	case material.Reflect:
		reflected := core.NewRay(point, core.Reflect(ray.Direction, hit.Normal))
		return Continue(reflected, weight)
	case material.Refract:
		origin := point.Add(ray.Direction.Multiply(geometry.MinLength))
		refracted := core.NewRay(origin, core.Refract(ray.Direction, hit.Normal, IORAir/mat.IOR))
		return Continue(refracted, weight)
	default:
		return Terminate()
	}
}
