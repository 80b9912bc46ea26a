package integrator

import (
	"math"
	"testing"

	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/geometry"
	"github.com/guibou/gort/pkg/lights"
	"github.com/guibou/gort/pkg/material"
	"github.com/guibou/gort/pkg/scene"
)

func newSphere(center core.Vec3, radius float64, color core.Vec3, mat material.Material) *geometry.Sphere {
	return geometry.NewSphere(center, radius, color, mat)
}

func TestRadiance_Miss(t *testing.T) {
	pt := NewPathTracer()
	s := scene.NewScene(nil, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.Radiance(s, ray, 0, core.NewRandomSampler(1))
	if got != (core.Vec3{}) {
		t.Errorf("Expected black for a miss, got %v", got)
	}
}

func TestRadiance_DepthCutoff(t *testing.T) {
	pt := NewPathTracer()
	s := scene.NewScene(nil, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.Radiance(s, ray, pt.MaxDepth+1, core.NewRandomSampler(1))
	if got != (core.Vec3{}) {
		t.Errorf("Expected black past the depth cap, got %v", got)
	}
}

func TestRadiance_MirrorCorridorTerminates(t *testing.T) {
	// Two mirror spheres facing each other bounce the ray forever;
	// only the depth cap stops the recursion.
	pt := NewPathTracer()
	s := scene.NewScene([]*geometry.Sphere{
		newSphere(core.NewVec3(-5, 0, 0), 2, core.NewVec3(1, 1, 1), material.Mirror),
		newSphere(core.NewVec3(5, 0, 0), 2, core.NewVec3(1, 1, 1), material.Mirror),
	}, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	got := pt.Radiance(s, ray, 0, core.NewRandomSampler(1))
	if !got.IsFinite() {
		t.Fatalf("Expected finite radiance, got %v", got)
	}
	if got != (core.Vec3{}) {
		t.Errorf("Unlit mirror corridor should be black, got %v", got)
	}
}

func TestRadiance_DirectLighting(t *testing.T) {
	// A single diffuse sphere under an unoccluded light. The indirect
	// bounce leaves the scene, so the estimate is the closed-form
	// direct term: color · |n·l| / (π·d²) · emission.
	pt := NewPathTracer()
	color := core.NewVec3(0.5, 0.25, 1.0)
	emission := core.NewVec3(100, 200, 300)
	s := scene.NewScene(
		[]*geometry.Sphere{newSphere(core.NewVec3(0, 0, 0), 1, color, material.Diffuse)},
		[]lights.PointLight{lights.NewPointLight(core.NewVec3(0, 0, 3), emission)},
	)

	// Hit point (0,0,1); light 2 away straight along the normal.
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := pt.Radiance(s, ray, 0, core.NewRandomSampler(1))

	want := color.Multiply(1.0 / (math.Pi * 4.0)).MultiplyVec(emission)
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRadiance_OccludedLight(t *testing.T) {
	// A black sphere blocks the light; the shadow ray hits it before
	// reaching the light and the direct term vanishes. Indirect
	// contributions are zero too since the blocker reflects nothing.
	pt := NewPathTracer()
	s := scene.NewScene(
		[]*geometry.Sphere{
			newSphere(core.NewVec3(0, 0, 0), 1, core.NewVec3(1, 1, 1), material.Diffuse),
			newSphere(core.NewVec3(0, 0, 2), 0.5, core.NewVec3(0, 0, 0), material.Diffuse),
		},
		[]lights.PointLight{lights.NewPointLight(core.NewVec3(0, 0, 4), core.NewVec3(1000, 1000, 1000))},
	)

	// On-axis hit point (0,0,1): the blocker sits directly between it
	// and the light.
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := pt.Radiance(s, ray, 0, core.NewRandomSampler(1))
	if got != (core.Vec3{}) {
		t.Errorf("Expected black under full occlusion, got %v", got)
	}
}

func TestRadiance_MirrorMatchesReflectedRay(t *testing.T) {
	// A mirror returns the recursive estimate of the reflected ray
	// unmodified, only one bounce deeper.
	pt := NewPathTracer()
	wall := newSphere(core.NewVec3(0, 0, -10), 3, core.NewVec3(0.75, 0.75, 0.75), material.Diffuse)
	mirror := newSphere(core.NewVec3(0, 0, 10), 2, core.NewVec3(0.99, 0, 0.99), material.Mirror)
	s := scene.NewScene(
		[]*geometry.Sphere{wall, mirror},
		[]lights.PointLight{lights.NewPointLight(core.NewVec3(0, 5, -5), core.NewVec3(500, 500, 500))},
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	viaMirror := pt.Radiance(s, ray, 0, core.NewRandomSampler(9))

	// Reconstruct the reflected ray by hand: head-on hit at (0,0,8),
	// normal (0,0,-1), reflection straight back.
	p := core.NewVec3(0, 0, 8)
	dir := core.Reflect(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	reflected := core.NewRay(p.Add(dir.Multiply(pt.Epsilon)), dir)
	direct := pt.Radiance(s, reflected, 1, core.NewRandomSampler(9))

	if viaMirror != direct {
		t.Errorf("Mirror radiance %v should equal reflected-ray radiance %v", viaMirror, direct)
	}
	if viaMirror == (core.Vec3{}) {
		t.Error("Expected the lit wall to be visible in the mirror")
	}
}

func TestRadiance_GlassBehavesLikeMirror(t *testing.T) {
	pt := NewPathTracer()
	build := func(mat material.Material) *scene.Scene {
		return scene.NewScene(
			[]*geometry.Sphere{
				newSphere(core.NewVec3(0, 0, -10), 3, core.NewVec3(0.75, 0.75, 0.75), material.Diffuse),
				newSphere(core.NewVec3(0, 0, 10), 2, core.NewVec3(0, 0.99, 0.99), mat),
			},
			[]lights.PointLight{lights.NewPointLight(core.NewVec3(0, 5, -5), core.NewVec3(500, 500, 500))},
		)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	mirrorResult := pt.Radiance(build(material.Mirror), ray, 0, core.NewRandomSampler(3))
	glassResult := pt.Radiance(build(material.Glass), ray, 0, core.NewRandomSampler(3))

	if mirrorResult != glassResult {
		t.Errorf("Glass %v should match mirror %v exactly", glassResult, mirrorResult)
	}
}

func TestRadiance_Deterministic(t *testing.T) {
	pt := NewPathTracer()
	s := scene.NewCornellScene()
	ray := core.NewRay(core.NewVec3(50, 40, 150), core.NewVec3(0, 0, -1))

	a := pt.Radiance(s, ray, 0, core.NewRandomSampler(42))
	b := pt.Radiance(s, ray, 0, core.NewRandomSampler(42))
	if a != b {
		t.Errorf("Same seed should reproduce the same estimate: %v vs %v", a, b)
	}
}

func TestRadiance_CornellInterior(t *testing.T) {
	pt := NewPathTracer()
	s := scene.NewCornellScene()

	// Toward the lit back wall: some light must arrive.
	ray := core.NewRay(core.NewVec3(50, 40, 150), core.NewVec3(0, 0, -1))
	got := pt.Radiance(s, ray, 0, core.NewRandomSampler(7))
	if !got.IsFinite() {
		t.Fatalf("Expected finite radiance, got %v", got)
	}
	if got == (core.Vec3{}) {
		t.Error("Expected nonzero radiance from the lit room interior")
	}
}
