package main

import (
	"errors"
	"image/color"
	"testing"

	"github.com/Faultbox/raging-sea/internal/engine/water"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

func flatParams() ocean.Params {
	p := ocean.DefaultParams()
	p.BigWaveElevation = 0
	p.SmallWaveIterations = 0
	return p
}

func TestSnapshotWithoutSupersampling(t *testing.T) {
	p := ocean.DefaultParams()
	p.ElapsedTime = 1.5
	model := ocean.NewModel(ocean.DefaultNoise)

	got, err := snapshot(p, model, 2, 16, 16, 1, 2)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	want := water.Rasterize(p, model, 2, 16, 16, 2)
	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("pixel byte %d differs: %d vs %d", i, got.Pix[i], want.Pix[i])
		}
	}
}

func TestSnapshotSupersampledFlatSea(t *testing.T) {
	p := flatParams()
	model := ocean.NewModel(ocean.DefaultNoise)

	img, err := snapshot(p, model, 2, 20, 10, 3, 0)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("bounds %v, want 20x10", b)
	}

	// A flat sea is a single color, so filtering must not change it.
	c := ocean.Color(p, 0)
	want := color.RGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			got := img.RGBAAt(x, y)
			if diff(got.R, want.R) > 1 || diff(got.G, want.G) > 1 || diff(got.B, want.B) > 1 {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSnapshotRejectsOversizedRaster(t *testing.T) {
	model := ocean.NewModel(ocean.DefaultNoise)
	tests := []struct {
		name                string
		width, height, ssaa int
	}{
		{"huge ssaa", 8192, 8192, 1 << 20},
		{"ssaa above limit", 16, 16, maxSSAA + 1},
		{"zero ssaa", 16, 16, 0},
		{"negative ssaa", 16, 16, -3},
		{"raster side too long", 8192, 8192, 4},
		{"zero size", 0, 16, 1},
		{"size above limit", maxSize + 1, 16, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := snapshot(ocean.DefaultParams(), model, 2, tt.width, tt.height, tt.ssaa, 1)
			if !errors.Is(err, errRenderSize) {
				t.Errorf("expected errRenderSize, got %v", err)
			}
			if img != nil {
				t.Error("no image expected on error")
			}
		})
	}
}

func TestCheckRenderSizeLimits(t *testing.T) {
	if err := checkRenderSize(maxSize, maxSize, maxRasterSide/maxSize); err != nil {
		t.Errorf("largest allowed raster rejected: %v", err)
	}
	if err := checkRenderSize(1, 1, maxSSAA); err != nil {
		t.Errorf("maximum ssaa on a small image rejected: %v", err)
	}
}

func TestSample(t *testing.T) {
	p := flatParams()
	model := ocean.NewModel(ocean.DefaultNoise)

	s := probe(p, model, 0.3, -0.7)
	if s.Elevation != 0 {
		t.Errorf("flat sea elevation = %v", s.Elevation)
	}
	if s.Mix != ocean.MixFactor(p, 0) {
		t.Errorf("mix = %v, want %v", s.Mix, ocean.MixFactor(p, 0))
	}
	if s.Color != ocean.HexColor(ocean.Color(p, 0)) {
		t.Errorf("color = %s", s.Color)
	}

	p = ocean.DefaultParams()
	p.ElapsedTime = 0.8
	s = probe(p, model, 0.3, -0.7)
	if want := model.Elevation(p, 0.3, -0.7); s.Elevation != want {
		t.Errorf("elevation = %v, want %v", s.Elevation, want)
	}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
