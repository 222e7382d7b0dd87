package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Orbiter receives camera input from the scene view.
type Orbiter interface {
	HandleDrag(deltaX, deltaY float32)
	HandleZoom(delta float32)
}

// SceneView shows the offscreen ocean texture as the window background and
// turns mouse input over it into orbit controls.
type SceneView struct {
	input orbitInput
}

// NewSceneView creates the background view.
func NewSceneView(camera Orbiter) *SceneView {
	return &SceneView{input: orbitInput{camera: camera}}
}

// Render draws textureID over the whole viewport.
func (s *SceneView) Render(textureID uint32, width, height float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(width, height))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoSavedSettings

	hovered := false
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		// GL textures are bottom-up, so V is flipped.
		imgui.ImageV(*texRef,
			imgui.NewVec2(width, height),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
		hovered = imgui.IsItemHovered()
	}
	imgui.End()
	imgui.PopStyleVar()

	mousePos := imgui.MousePos()
	s.input.update(mousePos.X, mousePos.Y, hovered,
		imgui.IsMouseDragging(imgui.MouseButtonLeft), imgui.CurrentIO().MouseWheel())
}

// Hovered returns the mouse position over the scene from the last Render.
func (s *SceneView) Hovered() (x, y float32, ok bool) {
	return s.input.lastX, s.input.lastY, s.input.hovered
}

// orbitInput turns mouse state sampled once per frame into orbit calls.
// The position is recorded every frame, hovered or not, so a drag that
// re-enters the scene starts from where the mouse actually was.
type orbitInput struct {
	camera       Orbiter
	lastX, lastY float32
	seen         bool
	hovered      bool
}

func (o *orbitInput) update(x, y float32, hovered, dragging bool, wheel float32) {
	if hovered && dragging && o.seen {
		if dx, dy := x-o.lastX, y-o.lastY; dx != 0 || dy != 0 {
			o.camera.HandleDrag(dx, dy)
		}
	}
	if hovered && wheel != 0 {
		o.camera.HandleZoom(wheel)
	}
	o.lastX, o.lastY = x, y
	o.seen = true
	o.hovered = hovered
}
