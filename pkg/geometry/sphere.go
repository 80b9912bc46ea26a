package geometry

import (
	"math"

	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/material"
)

// Sphere is the only primitive the renderer knows. Spheres are immutable
// once the scene is built; every worker reads them concurrently.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Emission core.Vec3 // carried from scene files, not yet used by the integrator
	Color    core.Vec3 // reflectance in [0,1] per channel
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Color:    color,
		Material: mat,
	}
}

// Intersection is the result of a hit test: the distance t along the ray
// and the sphere that was struck. The sphere pointer aliases the scene;
// it stays valid for as long as the scene does.
type Intersection struct {
	T      float64
	Sphere *Sphere
}

// Normal returns the outward surface normal at point p on the sphere
func (s *Sphere) Normal(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// Intersect solves the quadratic a·t² + b·t + c = 0 for the ray-sphere
// intersection distance, with a = |d|², b = -2·d·(C-O), c = |C-O|² - r².
// The smaller root is preferred when it is non-negative, otherwise the
// larger root; if both are negative the sphere is entirely behind the
// ray origin and there is no hit.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	oc := s.Center.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	b := -2.0 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	if t := (-b - sqrtD) / (2.0 * a); t >= 0 {
		return Intersection{T: t, Sphere: s}, true
	}
	if t := (-b + sqrtD) / (2.0 * a); t >= 0 {
		return Intersection{T: t, Sphere: s}, true
	}
	return Intersection{}, false
}
