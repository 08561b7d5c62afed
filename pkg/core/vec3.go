package core

import "math"

// NormalizeEpsilon is the magnitude below which Normalize returns the zero vector
const NormalizeEpsilon = 1e-12

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds a scalar to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Near-zero vectors normalize to the zero vector instead of NaN.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length < NormalizeEpsilon {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// IsZero reports whether every component is exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: clampComponent(v.X, minVal, maxVal),
		Y: clampComponent(v.Y, minVal, maxVal),
		Z: clampComponent(v.Z, minVal, maxVal),
	}
}

// clampComponent maps NaN to minVal, which the builtin min and max would propagate
func clampComponent(c, minVal, maxVal float64) float64 {
	if math.IsNaN(c) {
		return minVal
	}
	return max(minVal, min(maxVal, c))
}

// Mix linearly interpolates between v and other; ratio 0 yields v, 1 yields other
func (v Vec3) Mix(other Vec3, ratio float64) Vec3 {
	return Vec3{
		X: v.X + (other.X-v.X)*ratio,
		Y: v.Y + (other.Y-v.Y)*ratio,
		Z: v.Z + (other.Z-v.Z)*ratio,
	}
}

// Reflect mirrors the incident vector about the normal: i - n*(2*(i·n))
func Reflect(incident, normal Vec3) Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends the incident vector through a surface using Snell's law.
// eta is the ratio of refractive indices (outside / inside). Total internal
// reflection yields the zero vector.
func Refract(incident, normal Vec3, eta float64) Vec3 {
	cosI := normal.Dot(incident)
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return Vec3{}
	}
	return incident.Multiply(eta).Subtract(normal.Multiply(eta*cosI + math.Sqrt(k)))
}
