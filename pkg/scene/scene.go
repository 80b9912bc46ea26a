// Package scene holds the immutable world description shared read-only
// by every render worker.
package scene

import (
	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/geometry"
	"github.com/guibou/gort/pkg/lights"
)

// Scene contains all spheres and lights for a render. It must not be
// mutated once rendering starts; workers share it without locks.
type Scene struct {
	Spheres []*geometry.Sphere
	Lights  []lights.PointLight
}

// NewScene creates a scene from spheres and lights
func NewScene(spheres []*geometry.Sphere, sceneLights []lights.PointLight) *Scene {
	return &Scene{Spheres: spheres, Lights: sceneLights}
}

// Intersect finds the nearest intersection along the ray by scanning
// every sphere. Ties are broken by scan order: the first sphere wins.
// There is no acceleration structure; the scenes are small enough that
// the integrator, not intersection, dominates the cost.
func (s *Scene) Intersect(ray core.Ray) (geometry.Intersection, bool) {
	var nearest geometry.Intersection
	found := false

	for _, sphere := range s.Spheres {
		it, hit := sphere.Intersect(ray)
		if !hit {
			continue
		}
		if !found || it.T < nearest.T {
			nearest = it
			found = true
		}
	}

	return nearest, found
}
