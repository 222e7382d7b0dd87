// Package scene draws the ocean surface.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/raging-sea/internal/engine/scene/shaders"
	"github.com/Faultbox/raging-sea/internal/engine/shader"
	"github.com/Faultbox/raging-sea/internal/engine/water"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// OceanRenderer owns the GPU buffers for one surface grid.
type OceanRenderer struct {
	program *shader.Program

	vao          uint32
	positionVBO  uint32 // Static base x,z
	elevationVBO uint32 // Rewritten every frame
	ebo          uint32

	vertexCount int
	indexCount  int32

	Wireframe bool
}

// NewOceanRenderer compiles the ocean shader and uploads the grid.
func NewOceanRenderer(grid *water.Grid) (*OceanRenderer, error) {
	program, err := shader.NewProgram(shaders.OceanVertexShader, shaders.OceanFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ocean shader: %w", err)
	}

	r := &OceanRenderer{
		program:     program,
		vertexCount: grid.VertexCount(),
		indexCount:  int32(len(grid.Indices)),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(grid.Positions)*4, unsafe.Pointer(&grid.Positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.elevationVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.elevationVBO)
	gl.BufferData(gl.ARRAY_BUFFER, r.vertexCount*4, nil, gl.STREAM_DRAW)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, 4, 0)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(grid.Indices)*4, unsafe.Pointer(&grid.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return r, nil
}

// Render uploads this frame's elevations and draws the surface with the
// frame's color parameters.
func (r *OceanRenderer) Render(p ocean.Params, heights []float32, viewProj mgl32.Mat4) {
	if r.vao == 0 || len(heights) != r.vertexCount {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.elevationVBO)
	// Orphan the previous buffer so the driver does not stall on it.
	gl.BufferData(gl.ARRAY_BUFFER, r.vertexCount*4, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, r.vertexCount*4, unsafe.Pointer(&heights[0]))

	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	r.program.SetVec3("uDepthColor", p.DepthColor)
	r.program.SetVec3("uSurfaceColor", p.SurfaceColor)
	r.program.SetFloat("uColorOffset", p.ColorOffset)
	r.program.SetFloat("uColorMultiplier", p.ColorMultiplier)

	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	// The plane is seen from both sides when the camera orbits below it.
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Destroy releases all resources.
func (r *OceanRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	for _, buf := range []*uint32{&r.positionVBO, &r.elevationVBO, &r.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}
