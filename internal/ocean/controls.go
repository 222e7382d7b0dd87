package ocean

import (
	"fmt"
	"math"
)

// Kind is the widget type a control needs.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindColor
)

// Axis selects one component of a vector parameter.
type Axis int

const (
	AxisAll Axis = iota - 1
	AxisX
	AxisY
)

// Control binds one panel widget to a store parameter.
type Control struct {
	Label string
	Name  string
	Axis  Axis
	Kind  Kind
	Min   float32
	Max   float32
	Step  float32
}

// Group is a named, collapsible section of controls.
type Group struct {
	Label    string
	Controls []Control
}

// Groups returns the panel layout: primary waves, color, detail waves.
func Groups() []Group {
	return []Group{
		{
			Label: "Waves",
			Controls: []Control{
				{Label: "BigWaveElevation", Name: NameBigWaveElevation, Axis: AxisAll, Kind: KindFloat, Min: -1, Max: 1, Step: 0.01},
				{Label: "BigWaveSpeed", Name: NameBigWaveSpeed, Axis: AxisAll, Kind: KindFloat, Min: 0, Max: 10, Step: 0.01},
				{Label: "BigWaveFrequencyX", Name: NameBigWaveFrequency, Axis: AxisX, Kind: KindFloat, Min: 1, Max: 20, Step: 0.01},
				{Label: "BigWaveFrequencyY", Name: NameBigWaveFrequency, Axis: AxisY, Kind: KindFloat, Min: 1, Max: 20, Step: 0.01},
			},
		},
		{
			Label: "WavesColor",
			Controls: []Control{
				{Label: "depthColor", Name: NameDepthColor, Axis: AxisAll, Kind: KindColor},
				{Label: "surfaceColor", Name: NameSurfaceColor, Axis: AxisAll, Kind: KindColor},
				{Label: "ColorOffset", Name: NameColorOffset, Axis: AxisAll, Kind: KindFloat, Min: 0, Max: 1, Step: 0.001},
				{Label: "ColorMultiplier", Name: NameColorMultiplier, Axis: AxisAll, Kind: KindFloat, Min: 0, Max: 10, Step: 0.001},
			},
		},
		{
			Label: "SmallWaves",
			Controls: []Control{
				{Label: "SmallWaveElevation", Name: NameSmallWaveElevation, Axis: AxisAll, Kind: KindFloat, Min: 0, Max: 1, Step: 0.001},
				{Label: "SmallWaveFrequency", Name: NameSmallWaveFrequency, Axis: AxisAll, Kind: KindFloat, Min: 0, Max: 30, Step: 0.001},
				{Label: "SmallWaveSpeed", Name: NameSmallWaveSpeed, Axis: AxisAll, Kind: KindFloat, Min: 0, Max: 4, Step: 0.001},
				{Label: "SmallWaveIterations", Name: NameSmallWaveIterations, Axis: AxisAll, Kind: KindInt, Min: 0, Max: 5, Step: 1},
			},
		},
	}
}

// Controls returns every control of every group, in panel order.
func Controls() []Control {
	var all []Control
	for _, g := range Groups() {
		all = append(all, g.Controls...)
	}
	return all
}

// Quantize clamps v to the control range and snaps it to the step grid.
func (c Control) Quantize(v float32) float32 {
	if c.Kind == KindColor {
		return clamp01(v)
	}
	if v <= c.Min {
		return c.Min
	}
	if v >= c.Max {
		return c.Max
	}
	if c.Step > 0 {
		steps := math.Round(float64((v - c.Min) / c.Step))
		v = c.Min + float32(float32(steps)*c.Step)
		if v > c.Max {
			v = c.Max
		}
	}
	return v
}

// Format returns a printf verb showing as many decimals as the step has.
func (c Control) Format() string {
	switch {
	case c.Kind == KindInt:
		return "%d"
	case c.Step <= 0:
		return "%.3f"
	}
	decimals := int(math.Ceil(-math.Log10(float64(c.Step)) - 1e-6))
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%%.%df", decimals)
}

// Value reads the control's current value from a snapshot.
func (c Control) Value(p Params) Value {
	v, _ := p.Get(c.Name)
	if c.Axis == AxisY {
		return Scalar(v.Y)
	}
	if c.Axis == AxisX {
		return Scalar(v.X)
	}
	return v
}

// Command builds the store command that sets this control to v.
// Scalars are quantized to the control's range and step.
func (c Control) Command(v Value) Command {
	if c.Kind == KindColor {
		v = Value{X: clamp01(v.X), Y: clamp01(v.Y), Z: clamp01(v.Z)}
	} else {
		v = Scalar(c.Quantize(v.X))
	}
	return Command{Name: c.Name, Axis: c.Axis, Value: v}
}
