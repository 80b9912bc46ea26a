// Package lights holds the light sources the integrator samples for
// direct illumination.
package lights

import "github.com/guibou/gort/pkg/core"

// PointLight emits from a single position with the given radiant
// intensity per channel. Point lights have no area and cast hard
// shadows; they are the only light type the renderer models.
type PointLight struct {
	Position core.Vec3
	Emission core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, emission core.Vec3) PointLight {
	return PointLight{Position: position, Emission: emission}
}
