// Package material defines the closed set of surface materials the
// integrator knows how to shade.
package material

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Material identifies how a surface responds to light. The integrator
// dispatches on this value directly; there is no per-material behavior
// object.
type Material int

const (
	// Diffuse surfaces scatter light uniformly (Lambertian)
	Diffuse Material = iota
	// Mirror surfaces reflect light perfectly
	Mirror
	// Glass surfaces currently reflect like Mirror. Refraction is a
	// known limitation of the reference renderer and is deliberately
	// not implemented; scenes were tuned against this behavior.
	Glass
)

// String returns the lowercase name used in scene files
func (m Material) String() string {
	switch m {
	case Diffuse:
		return "diffuse"
	case Mirror:
		return "mirror"
	case Glass:
		return "glass"
	default:
		return fmt.Sprintf("material(%d)", int(m))
	}
}

// Parse converts a scene-file material name into a Material
func Parse(name string) (Material, error) {
	switch name {
	case "diffuse":
		return Diffuse, nil
	case "mirror":
		return Mirror, nil
	case "glass":
		return Glass, nil
	default:
		return Diffuse, fmt.Errorf("unknown material %q", name)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler so scene files can name
// materials as plain strings.
func (m *Material) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (m Material) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
