package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

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

type GameSpec struct {
	Name    string      `yaml:"name"`
	Level   string      `yaml:"level"`
	Render  RenderSpec  `yaml:"render"`
	Camera  CameraSpec  `yaml:"camera"`
	Physics PhysicsSpec `yaml:"physics"`
	Script  string      `yaml:"status_script"`
}

type RenderSpec struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background YAMLColor `yaml:"background"`
}

type CameraSpec struct {
	CenterOffset float64 `yaml:"center_offset"`
}

type PhysicsSpec struct {
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
	TimeStep   float64 `yaml:"time_step"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name      string       `yaml:"name"`
	Spawn     PointSpec    `yaml:"spawn"`
	Collider  ColliderSpec `yaml:"collider"`
	MoveForce float64      `yaml:"move_force"`
	JumpForce float64      `yaml:"jump_force"`
	MaxJumps  int          `yaml:"max_jumps"`
	Color     YAMLColor    `yaml:"color"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Density       float64 `yaml:"density"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	FixedRotation bool    `yaml:"fixed_rotation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// RGBA returns the colour as color.RGBA, or fallback when unset.
func (c YAMLColor) RGBA(fallback color.RGBA) color.RGBA {
	if c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(value string) (color.NRGBA, error) {
	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
