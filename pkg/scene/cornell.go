package scene

import (
	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/geometry"
	"github.com/guibou/gort/pkg/lights"
	"github.com/guibou/gort/pkg/material"
)

// NewCornellScene builds the reference scene: a Cornell-box-style room
// made of six huge wall spheres, a mirror ball, a glass ball, and a
// single point light below the ceiling.
func NewCornellScene() *Scene {
	wall := func(center core.Vec3, color core.Vec3) *geometry.Sphere {
		return geometry.NewSphere(center, 1000.0, color, material.Diffuse)
	}

	white := core.NewVec3(0.75, 0.75, 0.75)

	spheres := []*geometry.Sphere{
		wall(core.NewVec3(1000.0+1.0, 40.8, 81.6), core.NewVec3(0.75, 0.25, 0.25)),   // left
		wall(core.NewVec3(-1000.0+99.0, 40.8, 81.6), core.NewVec3(0.25, 0.25, 0.75)), // right
		wall(core.NewVec3(50.0, 40.8, 1000.0), white),                                // back
		wall(core.NewVec3(50.0, 40.8, -1000.0+170.0), core.NewVec3(0, 0, 0)),         // front
		wall(core.NewVec3(50.0, 1000.0, 81.6), white),                                // bottom
		wall(core.NewVec3(50.0, -1000.0+81.6, 81.6), white),                          // top
		geometry.NewSphere(core.NewVec3(27.0, 16.5, 47.0), 16.5, core.NewVec3(0.99, 0, 0.99), material.Mirror),
		geometry.NewSphere(core.NewVec3(73.0, 16.5, 78.0), 16.5, core.NewVec3(0, 0.99, 0.99), material.Glass),
	}

	sceneLights := []lights.PointLight{
		lights.NewPointLight(
			core.NewVec3(50.0, 81.6-16.4, 81.6),
			core.NewVec3(5000.0, 5000.0, 5000.0),
		),
	}

	return NewScene(spheres, sceneLights)
}
