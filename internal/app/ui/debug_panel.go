// Package ui provides the ImGui widgets of the ocean viewer.
package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/raging-sea/internal/ocean"
)

// Poster accepts parameter commands. *ocean.Store implements it.
type Poster interface {
	Post(cmd ocean.Command)
}

// DebugPanel is the "Ocean" window: one collapsing header per control group.
// It only reads the frame snapshot and posts commands; the store applies
// them at the start of the next frame.
type DebugPanel struct {
	store  Poster
	groups []ocean.Group
	width  float32

	// OnReset is called when the Reset button is pressed.
	OnReset func()
}

// NewDebugPanel creates the panel.
func NewDebugPanel(store Poster, width float32) *DebugPanel {
	return &DebugPanel{
		store:  store,
		groups: ocean.Groups(),
		width:  width,
	}
}

// Render draws the panel for snapshot p at the top-right of the viewport.
func (d *DebugPanel) Render(p ocean.Params, viewportWidth float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(viewportWidth-d.width-10, 10), imgui.ConditionFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(d.width, 0), imgui.ConditionFirstUseEver)

	if imgui.BeginV("Ocean", nil, imgui.WindowFlagsNoSavedSettings) {
		for _, g := range d.groups {
			if imgui.CollapsingHeaderTreeNodeFlagsV(g.Label, imgui.TreeNodeFlagsNone) {
				for _, c := range g.Controls {
					d.renderControl(c, p)
				}
			}
		}

		imgui.Separator()
		if imgui.Button("Reset") && d.OnReset != nil {
			d.OnReset()
		}
	}
	imgui.End()
}

func (d *DebugPanel) renderControl(c ocean.Control, p ocean.Params) {
	cur := c.Value(p)
	imgui.SetNextItemWidth(d.width * 0.45)

	switch c.Kind {
	case ocean.KindColor:
		col := [3]float32{cur.X, cur.Y, cur.Z}
		if imgui.ColorEdit3V(c.Label, &col, 0) {
			d.store.Post(c.Command(ocean.Value{X: col[0], Y: col[1], Z: col[2]}))
		}

	case ocean.KindInt:
		v := int32(cur.X)
		if imgui.SliderIntV(c.Label, &v, int32(c.Min), int32(c.Max), c.Format(), imgui.SliderFlagsNone) {
			d.store.Post(c.Command(ocean.Scalar(float32(v))))
		}

	default:
		v := cur.X
		if imgui.SliderFloatV(c.Label, &v, c.Min, c.Max, c.Format(), imgui.SliderFlagsNone) {
			d.store.Post(c.Command(ocean.Scalar(v)))
		}
	}
}
