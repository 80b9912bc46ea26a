package core

import (
	"math"

	"pgregory.net/rand"
)

// Sampler provides the random numbers that drive the Monte Carlo
// estimator. Implementations are not safe for concurrent use; each
// worker owns its own instance so draws stay independent without any
// shared generator state.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a pgregory.net/rand generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler seeded from one or more values.
// The same seeds always produce the same draw sequence, which renders
// depend on for reproducibility.
func NewRandomSampler(seed ...uint64) *RandomSampler {
	return &RandomSampler{random: rand.New(seed...)}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleCosineHemisphere maps a uniform 2D sample to a direction on the
// unit hemisphere around local +z, distributed proportionally to cos(θ),
// and returns the direction together with its pdf cos(θ)/π.
//
// Formula 35 of Dutré's Global Illumination Compendium:
// φ = 2π·u, cos(θ) = √v, sin(θ) = √(1-v).
func SampleCosineHemisphere(sample Vec2) (Vec3, float64) {
	phi := 2.0 * math.Pi * sample.X
	cosTheta := math.Sqrt(sample.Y)
	sinTheta := math.Sqrt(1.0 - sample.Y)

	dir := NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, cosTheta)
	return dir, cosTheta / math.Pi
}

// OrthonormalBasis constructs two unit vectors orthogonal to the unit
// normal n and to each other, using the branchless sign trick from
// Duff et al., "Building an Orthonormal Basis, Revisited" (JCGT 6/1).
// Copysign keeps the denominator away from zero for every unit n,
// including the poles n.z = ±1.
func OrthonormalBasis(n Vec3) (Vec3, Vec3) {
	sign := math.Copysign(1.0, n.Z)
	a := -1.0 / (sign + n.Z)
	b := n.X * n.Y * a

	b1 := NewVec3(1.0+sign*n.X*n.X*a, sign*b, -sign*n.X)
	b2 := NewVec3(b, sign+n.Y*n.Y*a, -n.Y)
	return b1, b2
}

// FlipNormal returns n negated when it points into the same hemisphere
// as dir, so the shading normal always faces back toward the incoming
// ray. Required before hemisphere sampling.
func FlipNormal(dir, n Vec3) Vec3 {
	if n.Dot(dir) > 0 {
		return n.Negate()
	}
	return n
}
