// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every error returned from Config.Validate.
var ErrInvalid = errors.New("invalid config")

// Primitive names understood by the scene builder.
const (
	PrimitiveCube     = "cube"
	PrimitivePlane    = "plane"
	PrimitiveSphere   = "sphere"
	PrimitiveCylinder = "cylinder"
)

// Config holds all settings.
type Config struct {
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Lighting LightingConfig `yaml:"lighting" toml:"lighting"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// SceneConfig lists the objects to generate.
type SceneConfig struct {
	Objects       []ObjectConfig `yaml:"objects" toml:"objects"`
	ShowBounds    bool           `yaml:"show_bounds" toml:"show_bounds"`       // draw bounding box wireframes
	BoundsPadding float32        `yaml:"bounds_padding" toml:"bounds_padding"` // grows each wireframe box
	ShowNormals   bool           `yaml:"show_normals" toml:"show_normals"`     // draw vertex normals
	NormalLength  float32        `yaml:"normal_length" toml:"normal_length"`
}

// ObjectConfig describes one generated mesh. Fields that do not apply to
// the primitive are ignored; zero values fall back to the generator
// defaults.
type ObjectConfig struct {
	Name             string          `yaml:"name" toml:"name"`
	Primitive        string          `yaml:"primitive" toml:"primitive"`
	Size             float32         `yaml:"size,omitempty" toml:"size,omitempty"`
	Radius           float32         `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Height           float32         `yaml:"height,omitempty" toml:"height,omitempty"`
	Segments         int             `yaml:"segments,omitempty" toml:"segments,omitempty"`
	Transform        TransformConfig `yaml:"transform" toml:"transform"`
	RecomputeNormals bool            `yaml:"recompute_normals,omitempty" toml:"recompute_normals,omitempty"`
}

// TransformConfig is applied as translate * rotate * scale. Rotate is Euler
// angles in degrees applied X, then Y, then Z; Axis/Angle (degrees) is
// applied after it when Axis is non-zero. A zero Scale means no scaling.
type TransformConfig struct {
	Translate [3]float32 `yaml:"translate" toml:"translate"`
	Rotate    [3]float32 `yaml:"rotate" toml:"rotate"`
	Axis      [3]float32 `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Angle     float32    `yaml:"angle,omitempty" toml:"angle,omitempty"`
	Scale     [3]float32 `yaml:"scale" toml:"scale"`
}

// CameraConfig holds the orbit camera and projection settings.
type CameraConfig struct {
	FOV      float32 `yaml:"fov" toml:"fov"` // vertical, degrees
	Near     float32 `yaml:"near" toml:"near"`
	Far      float32 `yaml:"far" toml:"far"`
	Aspect   float32 `yaml:"aspect" toml:"aspect"`
	Distance float32 `yaml:"distance" toml:"distance"`
	Pitch    float32 `yaml:"pitch" toml:"pitch"` // degrees
	Yaw      float32 `yaml:"yaw" toml:"yaw"`     // degrees
	AutoFit  bool    `yaml:"auto_fit" toml:"auto_fit"`
}

// LightingConfig shades wireframe edges by the light reaching each face.
// The sun direction is given as longitude around Y and latitude above the
// horizon, both in degrees.
type LightingConfig struct {
	Enabled   bool               `yaml:"enabled" toml:"enabled"`
	Ambient   float32            `yaml:"ambient" toml:"ambient"`
	Longitude float32            `yaml:"longitude" toml:"longitude"`
	Latitude  float32            `yaml:"latitude" toml:"latitude"`
	Points    []PointLightConfig `yaml:"points,omitempty" toml:"points,omitempty"`
}

// PointLightConfig is a light with falloff reaching zero at Range.
type PointLightConfig struct {
	Position  [3]float32 `yaml:"position" toml:"position"`
	Range     float32    `yaml:"range" toml:"range"`
	Intensity float32    `yaml:"intensity" toml:"intensity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Objects: []ObjectConfig{
				{
					Name:      "ground",
					Primitive: PrimitivePlane,
					Size:      10,
					Segments:  10,
					Transform: TransformConfig{Translate: [3]float32{0, -0.5, 0}, Scale: [3]float32{1, 1, 1}},
				},
				{
					Name:      "crate",
					Primitive: PrimitiveCube,
					Size:      1,
					Transform: TransformConfig{Translate: [3]float32{-2, 0, 0}, Rotate: [3]float32{0, 45, 0}, Scale: [3]float32{1, 1, 1}},
				},
				{
					Name:      "ball",
					Primitive: PrimitiveSphere,
					Radius:    0.5,
					Segments:  24,
					Transform: TransformConfig{Scale: [3]float32{1, 1, 1}},
				},
				{
					Name:      "pillar",
					Primitive: PrimitiveCylinder,
					Radius:    0.3,
					Height:    2,
					Segments:  24,
					Transform: TransformConfig{Translate: [3]float32{2, 0.5, 0}, Scale: [3]float32{1, 1, 1}},
				},
			},
			ShowBounds:    false,
			BoundsPadding: 0.02,
			NormalLength:  0.2,
		},
		Camera: CameraConfig{
			FOV:      60,
			Near:     0.1,
			Far:      100,
			Aspect:   16.0 / 9.0,
			Distance: 8,
			Pitch:    30,
			Yaw:      45,
			AutoFit:  true,
		},
		Lighting: LightingConfig{
			Enabled:   true,
			Ambient:   0.25,
			Longitude: 45,
			Latitude:  60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the camera and lighting ranges and that every object
// names a known primitive.
func (c *Config) Validate() error {
	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("%w: camera fov %g outside (0, 180)", ErrInvalid, cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: camera clip range near=%g far=%g", ErrInvalid, cam.Near, cam.Far)
	}
	if cam.Aspect <= 0 {
		return fmt.Errorf("%w: camera aspect %g must be positive", ErrInvalid, cam.Aspect)
	}

	light := c.Lighting
	if light.Ambient < 0 || light.Ambient > 1 {
		return fmt.Errorf("%w: lighting ambient %g outside [0, 1]", ErrInvalid, light.Ambient)
	}
	if light.Latitude < -90 || light.Latitude > 90 {
		return fmt.Errorf("%w: lighting latitude %g outside [-90, 90]", ErrInvalid, light.Latitude)
	}
	for i, p := range light.Points {
		if p.Intensity < 0 {
			return fmt.Errorf("%w: point light %d has negative intensity %g", ErrInvalid, i, p.Intensity)
		}
	}

	for i, obj := range c.Scene.Objects {
		switch obj.Primitive {
		case PrimitiveCube, PrimitivePlane, PrimitiveSphere, PrimitiveCylinder:
		default:
			return fmt.Errorf("%w: object %d (%q) has unknown primitive %q", ErrInvalid, i, obj.Name, obj.Primitive)
		}
	}
	return nil
}
