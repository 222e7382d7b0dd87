package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// MaxSegments bounds the surface grid.
const MaxSegments = 2048

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports the first nonsensical value in the config.
func (c *Config) Validate() error {
	for _, f := range c.floatFields() {
		if !finite(f.value) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalid, f.name, f.value)
		}
	}

	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Render.Segments < 1 || c.Render.Segments > MaxSegments:
		return fmt.Errorf("%w: render.segments %d outside [1, %d]", ErrInvalid, c.Render.Segments, MaxSegments)
	case c.Render.PlaneSize <= 0:
		return fmt.Errorf("%w: render.plane_size %v", ErrInvalid, c.Render.PlaneSize)
	case c.Render.Workers < 0:
		return fmt.Errorf("%w: render.workers %d", ErrInvalid, c.Render.Workers)
	case c.Render.MaxPixelRatio < 1:
		return fmt.Errorf("%w: render.max_pixel_ratio %v below 1", ErrInvalid, c.Render.MaxPixelRatio)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip range [%v, %v]", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.DampingFactor < 0 || c.Camera.DampingFactor > 1:
		return fmt.Errorf("%w: camera.damping_factor %v", ErrInvalid, c.Camera.DampingFactor)
	case c.Ocean.SmallWaveIterations < 0:
		return fmt.Errorf("%w: ocean.small_wave_iterations %d", ErrInvalid, c.Ocean.SmallWaveIterations)
	case !logger.ValidLevel(c.Logging.Level):
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}

	if _, err := ocean.NewNoise(c.Ocean.Noise); err != nil {
		return fmt.Errorf("%w: ocean.noise: %v", ErrInvalid, err)
	}
	if _, err := ocean.ParseHexColor(c.Ocean.DepthColor); err != nil {
		return fmt.Errorf("%w: ocean.depth_color: %v", ErrInvalid, err)
	}
	if _, err := ocean.ParseHexColor(c.Ocean.SurfaceColor); err != nil {
		return fmt.Errorf("%w: ocean.surface_color: %v", ErrInvalid, err)
	}
	return nil
}

type floatField struct {
	name  string
	value float32
}

// floatFields lists every float setting that must be a finite number.
func (c *Config) floatFields() []floatField {
	return []floatField{
		{"render.plane_size", c.Render.PlaneSize},
		{"render.max_pixel_ratio", c.Render.MaxPixelRatio},
		{"camera.fov", c.Camera.FOV},
		{"camera.near", c.Camera.Near},
		{"camera.far", c.Camera.Far},
		{"camera.position[0]", c.Camera.Position[0]},
		{"camera.position[1]", c.Camera.Position[1]},
		{"camera.position[2]", c.Camera.Position[2]},
		{"camera.damping_factor", c.Camera.DampingFactor},
		{"ocean.big_wave_elevation", c.Ocean.BigWaveElevation},
		{"ocean.big_wave_frequency[0]", c.Ocean.BigWaveFrequency[0]},
		{"ocean.big_wave_frequency[1]", c.Ocean.BigWaveFrequency[1]},
		{"ocean.big_wave_speed", c.Ocean.BigWaveSpeed},
		{"ocean.color_offset", c.Ocean.ColorOffset},
		{"ocean.color_multiplier", c.Ocean.ColorMultiplier},
		{"ocean.small_wave_elevation", c.Ocean.SmallWaveElevation},
		{"ocean.small_wave_frequency", c.Ocean.SmallWaveFrequency},
		{"ocean.small_wave_speed", c.Ocean.SmallWaveSpeed},
		{"panel.width", c.Panel.Width},
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
