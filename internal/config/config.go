// Package config handles configuration loading for the ocean viewer.
package config

import "github.com/Faultbox/raging-sea/internal/ocean"

// Config holds all settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Render     RenderConfig     `yaml:"render"`
	Camera     CameraConfig     `yaml:"camera"`
	Ocean      OceanConfig      `yaml:"ocean"`
	Panel      PanelConfig      `yaml:"panel"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	HighDPI    bool   `yaml:"high_dpi"`
}

// RenderConfig holds surface mesh and rendering settings.
type RenderConfig struct {
	Segments      int     `yaml:"segments"`        // Subdivisions per side
	PlaneSize     float32 `yaml:"plane_size"`      // World units per side
	Workers       int     `yaml:"workers"`         // Displacement goroutines, 0 = NumCPU
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"` // Cap on device pixel ratio
	Wireframe     bool    `yaml:"wireframe"`
}

// CameraConfig holds the initial camera and orbit settings.
type CameraConfig struct {
	FOV           float32    `yaml:"fov"` // Vertical, degrees
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Position      [3]float32 `yaml:"position"`
	Damping       bool       `yaml:"damping"`
	DampingFactor float32    `yaml:"damping_factor"`
}

// OceanConfig holds the noise kind and the initial wave parameters.
type OceanConfig struct {
	Noise               string     `yaml:"noise"` // simplex or perlin
	BigWaveElevation    float32    `yaml:"big_wave_elevation"`
	BigWaveFrequency    [2]float32 `yaml:"big_wave_frequency"`
	BigWaveSpeed        float32    `yaml:"big_wave_speed"`
	DepthColor          string     `yaml:"depth_color"`
	SurfaceColor        string     `yaml:"surface_color"`
	ColorOffset         float32    `yaml:"color_offset"`
	ColorMultiplier     float32    `yaml:"color_multiplier"`
	SmallWaveElevation  float32    `yaml:"small_wave_elevation"`
	SmallWaveFrequency  float32    `yaml:"small_wave_frequency"`
	SmallWaveSpeed      float32    `yaml:"small_wave_speed"`
	SmallWaveIterations int        `yaml:"small_wave_iterations"`
}

// PanelConfig holds debug panel settings.
type PanelConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Width     float32 `yaml:"width"`
	ShowStats bool    `yaml:"show_stats"`
}

// ScreenshotConfig holds screenshot settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := ocean.DefaultParams()
	return &Config{
		Window: WindowConfig{
			Title:   "Raging Sea",
			Width:   1280,
			Height:  720,
			VSync:   true,
			HighDPI: true,
		},
		Render: RenderConfig{
			Segments:      512,
			PlaneSize:     2,
			Workers:       0,
			MaxPixelRatio: 2,
		},
		Camera: CameraConfig{
			FOV:           75,
			Near:          0.1,
			Far:           100,
			Position:      [3]float32{1, 1, 1},
			Damping:       true,
			DampingFactor: 0.05,
		},
		Ocean: OceanConfig{
			Noise:               ocean.NoiseSimplex,
			BigWaveElevation:    p.BigWaveElevation,
			BigWaveFrequency:    [2]float32{p.BigWaveFrequency[0], p.BigWaveFrequency[1]},
			BigWaveSpeed:        p.BigWaveSpeed,
			DepthColor:          ocean.DefaultDepthColorHex,
			SurfaceColor:        ocean.DefaultSurfaceColorHex,
			ColorOffset:         p.ColorOffset,
			ColorMultiplier:     p.ColorMultiplier,
			SmallWaveElevation:  p.SmallWaveElevation,
			SmallWaveFrequency:  p.SmallWaveFrequency,
			SmallWaveSpeed:      p.SmallWaveSpeed,
			SmallWaveIterations: p.SmallWaveIterations,
		},
		Panel: PanelConfig{
			Enabled:   true,
			Width:     340,
			ShowStats: false,
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
