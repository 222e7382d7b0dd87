package water

import (
	"time"

	"github.com/Faultbox/raging-sea/internal/ocean"
)

// Surface holds a grid plus the per-vertex elevation buffer rewritten
// every frame.
type Surface struct {
	Grid    *Grid
	Model   ocean.Model
	Workers int

	heights []float32
	last    time.Duration
}

// NewSurface creates a surface over grid. workers <= 0 means NumCPU.
func NewSurface(grid *Grid, model ocean.Model, workers int) *Surface {
	return &Surface{
		Grid:    grid,
		Model:   model,
		Workers: workers,
		heights: make([]float32, grid.VertexCount()),
	}
}

// Displace evaluates the elevation of every vertex for p and returns the
// elevation buffer, one float per vertex. The buffer is reused by the next
// call; base positions are not touched.
func (s *Surface) Displace(p ocean.Params) []float32 {
	start := time.Now()

	cols := s.Grid.Cols()
	pos := s.Grid.Positions
	splitRows(s.Grid.Rows(), s.Workers, func(lo, hi int) {
		for v := lo * cols; v < hi*cols; v++ {
			s.heights[v] = s.Model.Elevation(p, pos[2*v], pos[2*v+1])
		}
	})

	s.last = time.Since(start)
	return s.heights
}

// Heights returns the elevation buffer from the last Displace.
func (s *Surface) Heights() []float32 {
	return s.heights
}

// LastDuration returns how long the last Displace took.
func (s *Surface) LastDuration() time.Duration {
	return s.last
}
