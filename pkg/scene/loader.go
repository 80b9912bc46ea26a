package scene

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/geometry"
	"github.com/guibou/gort/pkg/lights"
	"github.com/guibou/gort/pkg/material"
)

// CameraSettings describes the pinhole ray-generation parameters a
// scene file may override. Zero values mean "use the default".
type CameraSettings struct {
	Offset [3]float64 `yaml:"offset"`
	FilmZ  float64    `yaml:"film_z"`
	FocalZ float64    `yaml:"focal_z"`
	Scale  float64    `yaml:"scale"`
	Spread float64    `yaml:"spread"`
}

// RenderSettings describes the render parameters a scene file may
// override.
type RenderSettings struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samples"`
	MaxDepth        int `yaml:"max_depth"`
}

// File is a parsed scene description: the world plus optional camera
// and render overrides.
type File struct {
	Scene  *Scene
	Camera *CameraSettings
	Render *RenderSettings
}

type sphereSpec struct {
	Center   [3]float64        `yaml:"center"`
	Radius   float64           `yaml:"radius"`
	Color    [3]float64        `yaml:"color"`
	Emission [3]float64        `yaml:"emission"`
	Material material.Material `yaml:"material"`
}

type lightSpec struct {
	Position [3]float64 `yaml:"position"`
	Emission [3]float64 `yaml:"emission"`
}

type fileSpec struct {
	Camera  *CameraSettings `yaml:"camera"`
	Render  *RenderSettings `yaml:"render"`
	Spheres []sphereSpec    `yaml:"spheres"`
	Lights  []lightSpec     `yaml:"lights"`
}

func toVec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

// Load reads and parses a YAML scene file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene file %s", path)
	}
	file, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing scene file %s", path)
	}
	return file, nil
}

// Parse parses a YAML scene description and validates it
func Parse(data []byte) (*File, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}

	if len(spec.Spheres) == 0 {
		return nil, errors.New("scene has no spheres")
	}
	if len(spec.Lights) == 0 {
		return nil, errors.New("scene has no lights; direct lighting needs at least one")
	}

	spheres := make([]*geometry.Sphere, 0, len(spec.Spheres))
	for i, ss := range spec.Spheres {
		if ss.Radius <= 0 {
			return nil, errors.Errorf("sphere %d: radius must be positive, got %v", i, ss.Radius)
		}
		sphere := geometry.NewSphere(toVec3(ss.Center), ss.Radius, toVec3(ss.Color), ss.Material)
		sphere.Emission = toVec3(ss.Emission)
		spheres = append(spheres, sphere)
	}

	sceneLights := make([]lights.PointLight, 0, len(spec.Lights))
	for _, ls := range spec.Lights {
		sceneLights = append(sceneLights, lights.NewPointLight(toVec3(ls.Position), toVec3(ls.Emission)))
	}

	return &File{
		Scene:  NewScene(spheres, sceneLights),
		Camera: spec.Camera,
		Render: spec.Render,
	}, nil
}
