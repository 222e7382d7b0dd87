package ocean

import "math"

// Model evaluates the surface height field against a noise source.
type Model struct {
	Noise Noise
}

// NewModel returns a model backed by the given noise, or DefaultNoise if nil.
func NewModel(noise Noise) Model {
	if noise == nil {
		noise = DefaultNoise
	}
	return Model{Noise: noise}
}

// PrimaryWave returns the big-wave term at (x, z) for p.ElapsedTime.
func PrimaryWave(p Params, x, z float32) float32 {
	// Explicit float32 conversions pin the rounding so no multiply-add gets fused.
	phase := float32(p.ElapsedTime * p.BigWaveSpeed)
	sx := float32(math.Sin(float64(float32(x*p.BigWaveFrequency[0]) + phase)))
	sz := float32(math.Sin(float64(float32(z*p.BigWaveFrequency[1]) + phase)))
	return p.BigWaveElevation * sx * sz
}

// DetailWave returns the contribution of detail octave i (0-based) at (x, z).
// The octave is subtracted from the primary wave.
func (m Model) DetailWave(p Params, i int, x, z float32) float32 {
	scale := p.SmallWaveFrequency * float32(i+1)
	n := m.Noise.Eval3(x*scale, z*scale, p.ElapsedTime*p.SmallWaveSpeed)
	return p.SmallWaveElevation * n / float32(i+2)
}

// Elevation returns the vertical offset of the surface at (x, z).
func (m Model) Elevation(p Params, x, z float32) float32 {
	y := PrimaryWave(p, x, z)

	iterations := p.SmallWaveIterations
	for i := 0; i < iterations; i++ {
		y -= m.DetailWave(p, i, x, z)
	}
	return y
}

// Elevation evaluates the surface with DefaultNoise.
func Elevation(p Params, x, z float32) float32 {
	return Model{Noise: DefaultNoise}.Elevation(p, x, z)
}
