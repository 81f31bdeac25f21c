// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/terrainview/internal/engine/screenshot"
	"github.com/Faultbox/terrainview/internal/engine/terrain"
	"github.com/Faultbox/terrainview/pkg/noise"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Noise    NoiseConfig    `yaml:"noise"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	Backend    string  `yaml:"backend"`    // "sdl" or "glfw"
	SlopeTint  float32 `yaml:"slope_tint"` // Darkening of steep faces, 0..1; 0 draws flat height colours

	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // "png" or "bmp"
}

// TerrainConfig holds mesh generation settings.
type TerrainConfig struct {
	GridSize  int     `yaml:"grid_size"` // Mesh resolution (vertices per side)
	Scale     float64 `yaml:"scale"`     // World spacing between samples
	Amplitude float64 `yaml:"amplitude"` // Vertical exaggeration
}

// NoiseConfig holds the noise source settings.
type NoiseConfig struct {
	Algorithm   string  `yaml:"algorithm"` // "perlin" or "simplex"
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// CameraConfig holds the turntable camera settings.
type CameraConfig struct {
	FOVDeg            float32    `yaml:"fov_deg"`
	Near              float32    `yaml:"near"`
	Far               float32    `yaml:"far"`
	Offset            [3]float32 `yaml:"offset"`
	PitchDeg          float32    `yaml:"pitch_deg"`
	YawStepDeg        float32    `yaml:"yaw_step_deg"` // Added to the yaw every frame
	PanSensitivity    float32    `yaml:"pan_sensitivity"`
	RotateSensitivity float32    `yaml:"rotate_sensitivity"`
	ZoomStep          float32    `yaml:"zoom_step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config reproducing the reference viewer.
func Default() *Config {
	defaults := noise.DefaultConfig()
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Procedural Terrain - Perlin Noise",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Backend:    BackendSDL,
			SlopeTint:  0,

			ScreenshotDir:    "screenshots",
			ScreenshotFormat: screenshot.FormatPNG,
		},
		Terrain: TerrainConfig{
			GridSize:  100,
			Scale:     0.1,
			Amplitude: 4.0,
		},
		Noise: NoiseConfig{
			Algorithm:   noise.AlgorithmPerlin,
			Seed:        0,
			Octaves:     defaults.Octaves,
			Persistence: defaults.Persistence,
			Lacunarity:  defaults.Lacunarity,
		},
		Camera: CameraConfig{
			FOVDeg:            45,
			Near:              0.1,
			Far:               100,
			Offset:            [3]float32{-5, -5, -30},
			PitchDeg:          30,
			YawStepDeg:        0.2,
			PanSensitivity:    0.05,
			RotateSensitivity: 0.3,
			ZoomStep:          1.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the noise settings to the octave configuration used for sampling.
func (n NoiseConfig) Params() noise.Config {
	return noise.Config{
		Octaves:     n.Octaves,
		Persistence: n.Persistence,
		Lacunarity:  n.Lacunarity,
	}
}

// Validate checks that the configuration can start the viewer.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	switch c.Graphics.Backend {
	case BackendSDL, BackendGLFW:
	default:
		errs = append(errs, fmt.Errorf("graphics: unknown backend %q", c.Graphics.Backend))
	}
	switch c.Graphics.ScreenshotFormat {
	case screenshot.FormatPNG, screenshot.FormatBMP:
	default:
		errs = append(errs, fmt.Errorf("graphics: unknown screenshot_format %q", c.Graphics.ScreenshotFormat))
	}
	if c.Graphics.SlopeTint < 0 || c.Graphics.SlopeTint > 1 {
		errs = append(errs, fmt.Errorf("graphics: slope_tint must be in [0, 1], got %v", c.Graphics.SlopeTint))
	}

	if c.Terrain.GridSize < 2 || c.Terrain.GridSize > terrain.MaxGridSize {
		errs = append(errs, fmt.Errorf("terrain: grid_size must be in [2, %d], got %d", terrain.MaxGridSize, c.Terrain.GridSize))
	}
	if !(c.Terrain.Scale > 0) {
		errs = append(errs, fmt.Errorf("terrain: scale must be greater than 0, got %v", c.Terrain.Scale))
	}

	switch c.Noise.Algorithm {
	case noise.AlgorithmPerlin, noise.AlgorithmSimplex:
	default:
		errs = append(errs, fmt.Errorf("noise: unknown algorithm %q", c.Noise.Algorithm))
	}
	if err := c.Noise.Params().Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov_deg must be in (0, 180), got %v", c.Camera.FOVDeg))
	}

	return errors.Join(errs...)
}
