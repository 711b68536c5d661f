package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TransformSpec positions and sizes an entity in world units. X/Y may be
// overridden at spawn time.
type TransformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Angle float64 `yaml:"angle"`
}

// SpriteSpec references an image by path. A missing or unloadable image
// renders as a placeholder rectangle.
type SpriteSpec struct {
	Image string  `yaml:"image"`
	Scale float64 `yaml:"scale"`
}

// BehaviorSpec attaches a motion script.
type BehaviorSpec struct {
	Script string `yaml:"script"`
}

// EntitySpec is a spawnable entity template.
type EntitySpec struct {
	Name      string        `yaml:"name"`
	Role      string        `yaml:"role"`
	Speed     float64       `yaml:"speed"`
	Transform TransformSpec `yaml:"transform"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Behavior  BehaviorSpec  `yaml:"behavior"`
}

// LoadSpec loads and decodes a YAML spec by file name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadEntitySpec loads a spawnable entity template by file name.
func LoadEntitySpec(filename string) (*EntitySpec, error) {
	spec, err := LoadSpec[EntitySpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
