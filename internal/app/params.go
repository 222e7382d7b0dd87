package app

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// ParamsFromConfig builds the initial store contents. Values outside a
// control's range are clamped to it and reported.
func ParamsFromConfig(oc config.OceanConfig) (ocean.Params, error) {
	depth, err := ocean.ParseHexColor(oc.DepthColor)
	if err != nil {
		return ocean.Params{}, fmt.Errorf("depth color: %w", err)
	}
	surface, err := ocean.ParseHexColor(oc.SurfaceColor)
	if err != nil {
		return ocean.Params{}, fmt.Errorf("surface color: %w", err)
	}
	if oc.SmallWaveIterations < 0 {
		return ocean.Params{}, fmt.Errorf("small wave iterations %d: %w", oc.SmallWaveIterations, ocean.ErrInvalidValue)
	}

	p := ocean.Params{
		BigWaveElevation:    oc.BigWaveElevation,
		BigWaveFrequency:    mgl32.Vec2{oc.BigWaveFrequency[0], oc.BigWaveFrequency[1]},
		BigWaveSpeed:        oc.BigWaveSpeed,
		DepthColor:          depth,
		SurfaceColor:        surface,
		ColorOffset:         oc.ColorOffset,
		ColorMultiplier:     oc.ColorMultiplier,
		SmallWaveElevation:  oc.SmallWaveElevation,
		SmallWaveFrequency:  oc.SmallWaveFrequency,
		SmallWaveSpeed:      oc.SmallWaveSpeed,
		SmallWaveIterations: oc.SmallWaveIterations,
	}

	// Initial values are clamped to the control range only; unlike panel
	// edits they are not snapped to the step.
	store := ocean.NewStore(p)
	for _, c := range ocean.Controls() {
		if c.Kind == ocean.KindColor {
			continue
		}
		v := c.Value(p).X
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return ocean.Params{}, fmt.Errorf("%s %v: %w", c.Label, v, ocean.ErrInvalidValue)
		}
		clamped := min(max(v, c.Min), c.Max)
		if clamped != v {
			logger.Warn("initial value out of range, clamped",
				zap.String("control", c.Label),
				zap.Float32("value", v),
				zap.Float32("clamped", clamped),
			)
			store.Post(ocean.Command{Name: c.Name, Axis: c.Axis, Value: ocean.Scalar(clamped)})
		}
	}
	if errs := store.Apply(); len(errs) > 0 {
		return ocean.Params{}, errs[0]
	}
	return store.Snapshot(), nil
}

// ResetCommands returns the commands that bring every panel control back to
// its value in initial.
func ResetCommands(initial ocean.Params) []ocean.Command {
	var cmds []ocean.Command
	for _, c := range ocean.Controls() {
		cmds = append(cmds, ocean.Command{Name: c.Name, Axis: c.Axis, Value: c.Value(initial)})
	}
	return cmds
}
