package ocean

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMixFactorClamped(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name       string
		offset     float32
		multiplier float32
		elevation  float32
		want       float32
	}{
		{"saturates high", 0.08, 10, 1, 1},
		{"saturates low", 0, 10, -1, 0},
		{"max offset and gain", 1, 10, 1, 1},
		{"zero gain", 1, 0, 1, 0},
		{"inside range", 0.5, 1, -0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.ColorOffset = tt.offset
			p.ColorMultiplier = tt.multiplier
			got := MixFactor(p, tt.elevation)
			if got != tt.want {
				t.Errorf("MixFactor = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("MixFactor %v outside [0, 1]", got)
			}
		})
	}
}

func TestColorEndpoints(t *testing.T) {
	p := DefaultParams()

	p.ColorMultiplier = 10
	if got := Color(p, 1); got != p.SurfaceColor {
		t.Errorf("saturated color = %v, want surface %v", got, p.SurfaceColor)
	}

	p.ColorMultiplier = 5
	if got := Color(p, -p.ColorOffset); got != p.DepthColor {
		t.Errorf("color at -offset = %v, want depth %v", got, p.DepthColor)
	}
	if got := MixFactor(p, -p.ColorOffset); got != 0 {
		t.Errorf("mix at -offset = %v, want 0", got)
	}
}

func TestColorMidpoint(t *testing.T) {
	p := DefaultParams()
	p.DepthColor = mgl32.Vec3{0, 0, 0}
	p.SurfaceColor = mgl32.Vec3{1, 0.5, 0.25}
	p.ColorOffset = 0
	p.ColorMultiplier = 1

	got := Color(p, 0.5)
	want := mgl32.Vec3{0.5, 0.25, 0.125}
	if !got.ApproxEqual(want) {
		t.Errorf("Color(0.5) = %v, want %v", got, want)
	}
	if Color(p, 0.5) != got {
		t.Error("Color is not deterministic")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    mgl32.Vec3
		wantErr bool
	}{
		{in: "#000000", want: mgl32.Vec3{0, 0, 0}},
		{in: "#ffffff", want: mgl32.Vec3{1, 1, 1}},
		{in: "ff0000", want: mgl32.Vec3{1, 0, 0}},
		{in: " #00FF00 ", want: mgl32.Vec3{0, 1, 0}},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, hex := range []string{DefaultDepthColorHex, DefaultSurfaceColorHex, "#000000", "#ffffff"} {
		if got := HexColor(MustParseHexColor(hex)); got != hex {
			t.Errorf("HexColor(MustParseHexColor(%q)) = %q", hex, got)
		}
	}
}
