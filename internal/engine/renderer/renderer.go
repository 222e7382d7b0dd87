// Package renderer provides OpenGL context setup and per-frame state.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/engine/display"
	"github.com/Faultbox/raging-sea/internal/logger"
)

// ClearColor is the background behind the ocean.
var ClearColor = mgl32.Vec4{0.02, 0.05, 0.09, 1}

// Renderer owns global GL state for the window's default framebuffer.
type Renderer struct{}

// New initializes OpenGL.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Renderer{}, nil
}

// Resize sets the window viewport in physical pixels.
func (r *Renderer) Resize(v display.Viewport) {
	w, h := v.FramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	logger.Debug("renderer resized",
		zap.Int("width", v.Width),
		zap.Int("height", v.Height),
		zap.Int("pixels_w", w),
		zap.Int("pixels_h", h),
	)
}

// Begin clears the bound framebuffer for a new frame.
func (r *Renderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
