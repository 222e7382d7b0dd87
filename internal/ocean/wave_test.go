package ocean

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestElevationDeterministic(t *testing.T) {
	for _, kind := range []string{NoiseSimplex, NoisePerlin} {
		t.Run(kind, func(t *testing.T) {
			noise, err := NewNoise(kind)
			if err != nil {
				t.Fatalf("NewNoise(%q): %v", kind, err)
			}
			// Two independently built fields must agree: no hidden seed.
			other, _ := NewNoise(kind)

			p := DefaultParams()
			points := [][3]float32{{0, 0, 0}, {0.37, -0.81, 1.5}, {-1, 1, 12.25}, {0.001, 0.5, 100}}
			for _, pt := range points {
				p.ElapsedTime = pt[2]
				a := NewModel(noise).Elevation(p, pt[0], pt[1])
				b := NewModel(noise).Elevation(p, pt[0], pt[1])
				c := NewModel(other).Elevation(p, pt[0], pt[1])
				if a != b || a != c {
					t.Errorf("elevation at %v not deterministic: %v, %v, %v", pt, a, b, c)
				}
			}
		})
	}
}

func TestElevationWithoutDetailIsPrimaryWave(t *testing.T) {
	p := DefaultParams()
	p.SmallWaveIterations = 0
	p.ElapsedTime = 3.7

	for _, pt := range [][2]float32{{0, 0}, {0.25, -0.5}, {-0.9, 0.9}, {1, 1}} {
		x, z := pt[0], pt[1]
		phase := float32(p.ElapsedTime * p.BigWaveSpeed)
		want := p.BigWaveElevation *
			float32(math.Sin(float64(float32(x*p.BigWaveFrequency[0])+phase))) *
			float32(math.Sin(float64(float32(z*p.BigWaveFrequency[1])+phase)))

		if got := Elevation(p, x, z); got != want {
			t.Errorf("Elevation(%v, %v) = %v, want %v", x, z, got, want)
		}
	}
}

func TestElevationOnPrimaryNodeLineAtTimeZero(t *testing.T) {
	p := DefaultParams()
	p.BigWaveElevation = 0.2
	p.BigWaveFrequency = mgl32.Vec2{4, 1.5}
	p.BigWaveSpeed = 0.75
	p.SmallWaveIterations = 4
	p.ElapsedTime = 0

	// x = 0 at t = 0 zeroes the primary wave along the whole line, while the
	// noise is sampled off its origin, so only the detail octaves remain.
	for _, noise := range []Noise{DefaultNoise, mustNoise(t, NoisePerlin)} {
		m := NewModel(noise)
		for _, z := range []float32{0.37, -0.81} {
			if primary := PrimaryWave(p, 0, z); primary != 0 {
				t.Fatalf("primary wave at (0, %v) = %v, want 0", z, primary)
			}

			var want float32
			for i := 0; i < p.SmallWaveIterations; i++ {
				scale := p.SmallWaveFrequency * float32(i+1)
				want -= p.SmallWaveElevation * noise.Eval3(0, z*scale, 0) / float32(i+2)
			}
			if want == 0 {
				t.Fatalf("noise vanishes at (0, %v); pick another point", z)
			}
			if got := m.Elevation(p, 0, z); got != want {
				t.Errorf("Elevation(0, %v) = %v, want sum of detail octaves %v", z, got, want)
			}

			flat := p
			flat.SmallWaveIterations = 0
			if got := m.Elevation(flat, 0, z); got != 0 {
				t.Errorf("Elevation(0, %v) with no octaves = %v, want 0", z, got)
			}
		}
	}
}

func mustNoise(t *testing.T, kind string) Noise {
	t.Helper()
	n, err := NewNoise(kind)
	if err != nil {
		t.Fatalf("NewNoise(%q): %v", kind, err)
	}
	return n
}

func TestElevationIterationCountIsLoopBound(t *testing.T) {
	p := DefaultParams()
	p.ElapsedTime = 1.25
	m := NewModel(nil)
	x, z := float32(0.3), float32(-0.6)

	prev := PrimaryWave(p, x, z)
	for n := 1; n <= 5; n++ {
		p.SmallWaveIterations = n
		want := prev - m.DetailWave(p, n-1, x, z)
		if got := m.Elevation(p, x, z); got != want {
			t.Errorf("iterations=%d: got %v, want %v", n, got, want)
		}
		prev = want
	}
}

func TestNegativeElevationInvertsPrimaryWave(t *testing.T) {
	p := DefaultParams()
	p.ElapsedTime = 0.8
	q := p
	q.BigWaveElevation = -p.BigWaveElevation

	for _, pt := range [][2]float32{{0.1, 0.2}, {-0.7, 0.4}, {0.9, -0.9}} {
		a := PrimaryWave(p, pt[0], pt[1])
		b := PrimaryWave(q, pt[0], pt[1])
		if a != -b {
			t.Errorf("PrimaryWave at %v: %v vs inverted %v", pt, a, b)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	for _, kind := range []string{NoiseSimplex, NoisePerlin} {
		noise, err := NewNoise(kind)
		if err != nil {
			t.Fatalf("NewNoise(%q): %v", kind, err)
		}
		for i := 0; i < 2000; i++ {
			f := float32(i)
			v := noise.Eval3(f*0.173, f*-0.091, f*0.037)
			if v < -1.5 || v > 1.5 || v != v {
				t.Fatalf("%s noise out of range at step %d: %v", kind, i, v)
			}
		}
	}
}

func TestNewNoiseUnknown(t *testing.T) {
	if _, err := NewNoise("worley"); err == nil {
		t.Error("expected error for unknown noise kind")
	}
}
