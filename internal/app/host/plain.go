package host

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/app"
	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/engine/debug"
	"github.com/Faultbox/raging-sea/internal/engine/framebuffer"
	"github.com/Faultbox/raging-sea/internal/engine/input"
	"github.com/Faultbox/raging-sea/internal/engine/renderer"
	"github.com/Faultbox/raging-sea/internal/engine/scene"
	"github.com/Faultbox/raging-sea/internal/engine/window"
	"github.com/Faultbox/raging-sea/internal/logger"
)

// titleInterval is how often the plain host refreshes the FPS in the title.
const titleInterval = time.Second

// RunPlain hosts the viewer in a bare SDL window. Parameters come from the
// configuration only; R restores them, Esc quits, F12 saves a screenshot.
func RunPlain(core *app.Core, cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		HighDPI:    cfg.Window.HighDPI,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	r, err := renderer.New()
	if err != nil {
		return err
	}

	width, height := win.GetSize()
	core.Resizer.Handle(width, height, win.PixelRatio())
	fb, err := framebuffer.New(core.Resizer.Current())
	if err != nil {
		return err
	}
	defer fb.Destroy()
	core.Resizer.Attach(fb)
	core.Resizer.Attach(r)

	oceanRenderer, err := scene.NewOceanRenderer(core.Surface.Grid)
	if err != nil {
		return err
	}
	defer oceanRenderer.Destroy()
	oceanRenderer.Wireframe = cfg.Render.Wireframe

	capture := debug.NewScreenshotCapture(cfg.Screenshot.Dir, "ocean")
	in := input.New()
	lastTitle := time.Now()

	logger.Info("plain host started")

	for {
		if in.Update() {
			break
		}
		quit := false
		for _, e := range in.Events() {
			switch e.Type {
			case input.EventKeyDown:
				switch e.Key {
				case sdl.SCANCODE_ESCAPE:
					quit = true
				case sdl.SCANCODE_R:
					core.Reset()
				case sdl.SCANCODE_F12:
					_, _ = saveScreenshot(capture, fb)
				}
			case input.EventMouseMove:
				if e.Dragging() {
					core.Camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
				}
			case input.EventMouseWheel:
				core.Camera.HandleZoom(e.Wheel)
			}
		}
		if quit {
			break
		}

		width, height := win.GetSize()
		core.Resizer.Handle(width, height, win.PixelRatio())

		frame, heights := core.Step()

		restore := fb.BindWithViewport()
		r.Begin()
		oceanRenderer.Render(frame.Params, heights, core.Camera.ViewProj())
		restore()

		drawW, drawH := win.DrawableSize()
		fb.BlitToScreen(int32(drawW), int32(drawH))
		win.SwapBuffers()

		if time.Since(lastTitle) >= titleInterval {
			lastTitle = time.Now()
			win.SetTitle(fmt.Sprintf("%s - %.0f FPS", cfg.Window.Title, core.Stats.FPS()))
		}
	}

	logger.Info("plain host stopped", zap.Uint64("frames", core.LastFrame().Number))
	return nil
}
