package host

import (
	"fmt"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/app"
	appui "github.com/Faultbox/raging-sea/internal/app/ui"
	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/engine/debug"
	"github.com/Faultbox/raging-sea/internal/engine/framebuffer"
	"github.com/Faultbox/raging-sea/internal/engine/renderer"
	"github.com/Faultbox/raging-sea/internal/engine/scene"
	"github.com/Faultbox/raging-sea/internal/engine/ui"
	"github.com/Faultbox/raging-sea/internal/logger"
)

// RunPanel hosts the viewer inside the ImGui backend. The ocean is drawn
// into an offscreen framebuffer shown as the window background, with the
// parameter panel and stats overlay on top.
func RunPanel(core *app.Core, cfg *config.Config) error {
	backend, err := ui.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("creating ui backend: %w", err)
	}

	r, err := renderer.New()
	if err != nil {
		return err
	}

	core.Resizer.Handle(cfg.Window.Width, cfg.Window.Height, 1)
	fb, err := framebuffer.New(core.Resizer.Current())
	if err != nil {
		return err
	}
	defer fb.Destroy()
	core.Resizer.Attach(fb)

	oceanRenderer, err := scene.NewOceanRenderer(core.Surface.Grid)
	if err != nil {
		return err
	}
	defer oceanRenderer.Destroy()
	oceanRenderer.Wireframe = cfg.Render.Wireframe

	panel := appui.NewDebugPanel(core.Store, cfg.Panel.Width)
	panel.OnReset = core.Reset
	overlay := appui.NewStatsOverlay(cfg.Panel.ShowStats)
	view := appui.NewSceneView(core.Camera)
	capture := debug.NewScreenshotCapture(cfg.Screenshot.Dir, "ocean")

	logger.Info("panel host started", zap.Float32("panel_width", cfg.Panel.Width))

	backend.Run(func() {
		width, height, scale := ui.DisplaySize()
		core.Resizer.Handle(width, height, scale)

		frame, heights := core.Step()

		restore := fb.BindWithViewport()
		r.Begin()
		oceanRenderer.Render(frame.Params, heights, core.Camera.ViewProj())
		if ui.IsKeyPressed(imgui.KeyF12) {
			if path, err := saveScreenshot(capture, fb); err == nil {
				overlay.Notify("Screenshot saved: " + filepath.Base(path))
			}
		}
		restore()

		if ui.IsKeyPressed(imgui.KeyF3) {
			overlay.Enabled = !overlay.Enabled
		}
		if ui.IsKeyPressed(imgui.KeyEscape) {
			backend.Close()
		}

		vp := core.Resizer.Current()
		w, h := float32(vp.Width), float32(vp.Height)
		view.Render(fb.ColorTexture(), w, h)
		panel.Render(frame.Params, w)

		var probe *app.Probe
		if mx, my, ok := view.Hovered(); ok && overlay.Enabled {
			if p, hit := core.Probe(mx, my); hit {
				probe = &p
			}
		}
		overlay.Render(core.Stats, frame, core.VertexCount(), probe, w, h)
	})

	logger.Info("panel host stopped", zap.Uint64("frames", core.LastFrame().Number))
	return nil
}
