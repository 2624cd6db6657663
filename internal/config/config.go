package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type WindowSettings struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	VSync         bool   `yaml:"vsync"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

type CameraSettings struct {
	Position         mgl32.Vec3 `yaml:"position"`
	Front            mgl32.Vec3 `yaml:"front"`
	Up               mgl32.Vec3 `yaml:"up"`
	Zoom             float32    `yaml:"zoom"`
	MinZoom          float32    `yaml:"min_zoom"`
	MaxZoom          float32    `yaml:"max_zoom"`
	MovementSpeed    float32    `yaml:"movement_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
}

type ProjectionSettings struct {
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	OrthoHalfExtent float32 `yaml:"ortho_half_extent"`
}

// Settings is the viewer configuration.
type Settings struct {
	Window     WindowSettings     `yaml:"window"`
	Camera     CameraSettings     `yaml:"camera"`
	Projection ProjectionSettings `yaml:"projection"`

	// FPSLimit caps the frame rate; 0 means uncapped.
	FPSLimit int `yaml:"fps_limit"`

	// ScenePath points at a scene description; empty uses the built-in desk.
	ScenePath string `yaml:"scene"`
	ShaderDir string `yaml:"shader_dir"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the settings the viewer ships with.
func Default() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:         1000,
			Height:        800,
			Title:         "Desk Scene",
			VSync:         true,
			CaptureCursor: true,
		},
		Camera: CameraSettings{
			Position:         mgl32.Vec3{0, 5, 12},
			Front:            mgl32.Vec3{0, -0.5, -2},
			Up:               mgl32.Vec3{0, 1, 0},
			Zoom:             80,
			MinZoom:          1,
			MaxZoom:          90,
			MovementSpeed:    5,
			MouseSensitivity: 0.1,
		},
		Projection: ProjectionSettings{
			Near:            0.1,
			Far:             100,
			OrthoHalfExtent: 10,
		},
		FPSLimit:  0,
		ShaderDir: "assets/shaders/scene",
		LogLevel:  "info",
	}
}

// Load reads a YAML settings file. Fields missing from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.Normalize()
	return s, nil
}

func Save(path string, s *Settings) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Normalize clamps settings to values the viewer can run with.
func (s *Settings) Normalize() {
	d := Default()

	if s.Window.Width <= 0 {
		s.Window.Width = d.Window.Width
	}
	if s.Window.Height <= 0 {
		s.Window.Height = d.Window.Height
	}
	if s.Window.Title == "" {
		s.Window.Title = d.Window.Title
	}

	// Clamp to reasonable values
	if s.FPSLimit < 0 {
		s.FPSLimit = 0
	}
	if s.FPSLimit > 0 && s.FPSLimit < 30 {
		s.FPSLimit = 30
	}
	if s.FPSLimit > 1000 {
		s.FPSLimit = 1000
	}

	c := &s.Camera
	c.MinZoom = clamp(c.MinZoom, 1, 120)
	c.MaxZoom = clamp(c.MaxZoom, 1, 120)
	if c.MinZoom > c.MaxZoom {
		c.MinZoom, c.MaxZoom = c.MaxZoom, c.MinZoom
	}
	c.Zoom = clamp(c.Zoom, c.MinZoom, c.MaxZoom)
	if c.MovementSpeed <= 0 {
		c.MovementSpeed = d.Camera.MovementSpeed
	}
	if c.MouseSensitivity <= 0 {
		c.MouseSensitivity = d.Camera.MouseSensitivity
	}
	if c.Front.Len() == 0 {
		c.Front = d.Camera.Front
	}
	if c.Up.Len() == 0 {
		c.Up = d.Camera.Up
	}

	p := &s.Projection
	if p.Near <= 0 {
		p.Near = d.Projection.Near
	}
	if p.Far <= p.Near {
		p.Far = p.Near + d.Projection.Far
	}
	if p.OrthoHalfExtent <= 0 {
		p.OrthoHalfExtent = d.Projection.OrthoHalfExtent
	}

	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
	if s.ShaderDir == "" {
		s.ShaderDir = d.ShaderDir
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
