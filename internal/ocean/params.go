// Package ocean implements the wave displacement and color gradient math,
// the parameter store shared between the host and the renderer, and the
// per-frame animation loop.
package ocean

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Parameter names as exposed to the panel and the renderer.
const (
	NameElapsedTime         = "elapsedTime"
	NameBigWaveElevation    = "bigWaveElevation"
	NameBigWaveFrequency    = "bigWaveFrequency"
	NameBigWaveSpeed        = "bigWaveSpeed"
	NameDepthColor          = "depthColor"
	NameSurfaceColor        = "surfaceColor"
	NameColorOffset         = "colorOffset"
	NameColorMultiplier     = "colorMultiplier"
	NameSmallWaveElevation  = "smallWaveElevation"
	NameSmallWaveFrequency  = "smallWaveFrequency"
	NameSmallWaveSpeed      = "smallWaveSpeed"
	NameSmallWaveIterations = "smallWaveIterations"
)

// Default colors, as hex strings.
const (
	DefaultDepthColorHex   = "#186691"
	DefaultSurfaceColorHex = "#9bd8ff"
)

// Params is a snapshot of every tunable value fed to the surface each frame.
// It is a plain value: copying it gives an independent snapshot.
type Params struct {
	ElapsedTime float32 // seconds since the loop started

	// Primary waves
	BigWaveElevation float32
	BigWaveFrequency mgl32.Vec2
	BigWaveSpeed     float32

	// Color gradient
	DepthColor      mgl32.Vec3
	SurfaceColor    mgl32.Vec3
	ColorOffset     float32
	ColorMultiplier float32

	// Detail waves
	SmallWaveElevation  float32
	SmallWaveFrequency  float32
	SmallWaveSpeed      float32
	SmallWaveIterations int
}

// DefaultParams returns the startup values of the store.
func DefaultParams() Params {
	return Params{
		BigWaveElevation:    0.2,
		BigWaveFrequency:    mgl32.Vec2{4, 1.5},
		BigWaveSpeed:        0.75,
		DepthColor:          MustParseHexColor(DefaultDepthColorHex),
		SurfaceColor:        MustParseHexColor(DefaultSurfaceColorHex),
		ColorOffset:         0.08,
		ColorMultiplier:     5,
		SmallWaveElevation:  0.15,
		SmallWaveFrequency:  3,
		SmallWaveSpeed:      0.2,
		SmallWaveIterations: 4,
	}
}

// ParseHexColor parses "#rrggbb" (or "rrggbb") into linear 0..1 RGB.
func ParseHexColor(s string) (mgl32.Vec3, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("color %q: %w", s, err)
	}
	return mgl32.Vec3{
		float32((v>>16)&0xff) / 255,
		float32((v>>8)&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// MustParseHexColor is ParseHexColor for constants. Panics on bad input.
func MustParseHexColor(s string) mgl32.Vec3 {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexColor formats an RGB color as "#rrggbb".
func HexColor(c mgl32.Vec3) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float32) uint8 {
	v = clamp01(v)
	return uint8(v*255 + 0.5)
}
