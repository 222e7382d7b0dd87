// Package ui wraps the cimgui-go SDL backend that hosts the debug panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window, the ImGui context, and initializes OpenGL.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0.02, 0.05, 0.09, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

// Run starts the main render loop. frame is called once per frame between
// ImGui NewFrame and Render.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// DisplaySize returns the logical window size and the framebuffer scale
// for the current frame.
func DisplaySize() (width, height int, scale float32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	fb := io.DisplayFramebufferScale()
	scale = fb.X
	if scale <= 0 {
		scale = 1
	}
	return int(size.X), int(size.Y), scale
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
