// Package host runs the ocean viewer in a window: either with the ImGui
// debug panel composited over the scene or as a bare SDL window.
package host

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/app"
	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/engine/debug"
	"github.com/Faultbox/raging-sea/internal/engine/framebuffer"
	"github.com/Faultbox/raging-sea/internal/logger"
)

// Run builds the core from cfg and blocks until the window closes.
func Run(cfg *config.Config) error {
	core, err := app.NewCore(cfg, nil)
	if err != nil {
		return err
	}

	if cfg.Panel.Enabled {
		return RunPanel(core, cfg)
	}
	return RunPlain(core, cfg)
}

// saveScreenshot writes the current scene framebuffer to the screenshot dir.
func saveScreenshot(capture *debug.ScreenshotCapture, fb *framebuffer.Framebuffer) (string, error) {
	path, err := capture.Capture(fb.ReadImage())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return "", fmt.Errorf("screenshot: %w", err)
	}
	logger.Info("screenshot saved", zap.String("path", path))
	return path, nil
}
