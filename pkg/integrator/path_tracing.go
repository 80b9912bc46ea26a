// Package integrator estimates radiance with recursive Monte Carlo
// path tracing: direct lighting via shadow rays plus indirect lighting
// via cosine-weighted hemisphere sampling.
package integrator

import (
	"math"

	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/geometry"
	"github.com/guibou/gort/pkg/material"
	"github.com/guibou/gort/pkg/scene"
)

// DefaultMaxDepth bounds the recursion. Truncation at a fixed depth
// biases the estimate slightly dark; there is no Russian roulette
// compensation.
const DefaultMaxDepth = 3

// DefaultEpsilon offsets secondary ray origins off the surface to avoid
// self-intersection.
const DefaultEpsilon = 0.01

// PathTracer computes radiance estimates for rays against a scene
type PathTracer struct {
	MaxDepth int
	Epsilon  float64
}

// NewPathTracer creates a path tracer with the reference settings
func NewPathTracer() *PathTracer {
	return &PathTracer{
		MaxDepth: DefaultMaxDepth,
		Epsilon:  DefaultEpsilon,
	}
}

// Radiance estimates the light arriving along the ray. depth counts the
// bounces taken so far; callers start at 0. A miss, an occluded light
// and an exceeded depth all contribute zero radiance; none of them is
// an error.
func (pt *PathTracer) Radiance(s *scene.Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	if depth > pt.MaxDepth {
		return core.Vec3{}
	}

	it, hit := s.Intersect(ray)
	if !hit {
		return core.Vec3{}
	}

	p := ray.At(it.T)

	switch it.Sphere.Material {
	case material.Diffuse:
		direct := pt.directLighting(s, it.Sphere, p)
		indirect := pt.indirectLighting(s, it.Sphere, ray.Direction, p, depth, sampler)
		return direct.Add(indirect)
	case material.Mirror, material.Glass:
		// Glass does not refract; it behaves exactly like Mirror. The
		// reference scenes were tuned against this simplification.
		return pt.specular(s, it.Sphere, ray.Direction, p, depth, sampler)
	default:
		return core.Vec3{}
	}
}

// directLighting computes the contribution of the scene's single light:
// zero when occluded, otherwise color · |n·l| / (π·d²) · emission.
func (pt *PathTracer) directLighting(s *scene.Scene, sphere *geometry.Sphere, p core.Vec3) core.Vec3 {
	if len(s.Lights) == 0 {
		return core.Vec3{}
	}
	light := s.Lights[0]

	toLight := light.Position.Subtract(p)
	d2 := toLight.LengthSquared()
	d := math.Sqrt(d2)
	lightDir := toLight.Multiply(1.0 / d)

	shadowRay := core.NewRay(p.Add(lightDir.Multiply(pt.Epsilon)), lightDir)
	if it, hit := s.Intersect(shadowRay); hit && it.T < d {
		return core.Vec3{}
	}

	normal := sphere.Normal(p)
	absCos := math.Abs(normal.Dot(lightDir))

	return sphere.Color.Multiply(absCos / (math.Pi * d2)).MultiplyVec(light.Emission)
}

// indirectLighting bounces once along a cosine-weighted hemisphere
// direction and recurses. The cosine term of the rendering equation
// cancels the sampling pdf exactly, so the recursive estimate only
// needs the surface color multiply.
func (pt *PathTracer) indirectLighting(s *scene.Scene, sphere *geometry.Sphere, rayDir, p core.Vec3, depth int, sampler core.Sampler) core.Vec3 {
	normal := core.FlipNormal(rayDir, sphere.Normal(p))

	local, _ := core.SampleCosineHemisphere(sampler.Get2D())
	b1, b2 := core.OrthonormalBasis(normal)
	dir := b1.Multiply(local.X).
		Add(b2.Multiply(local.Y)).
		Add(normal.Multiply(local.Z))

	bounce := core.NewRay(p.Add(dir.Multiply(pt.Epsilon)), dir)
	return sphere.Color.MultiplyVec(pt.Radiance(s, bounce, depth+1, sampler))
}

// specular follows the perfect mirror reflection with no attenuation
func (pt *PathTracer) specular(s *scene.Scene, sphere *geometry.Sphere, rayDir, p core.Vec3, depth int, sampler core.Sampler) core.Vec3 {
	dir := core.Reflect(rayDir, sphere.Normal(p))
	reflected := core.NewRay(p.Add(dir.Multiply(pt.Epsilon)), dir)
	return pt.Radiance(s, reflected, depth+1, sampler)
}
