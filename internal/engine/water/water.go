// Package water builds the ocean surface mesh and displaces it on the CPU.
package water

import (
	"runtime"
	"sync"
)

// Grid is a flat XZ plane centered on the origin, subdivided into
// SegX × SegZ quads. Base positions never change after BuildGrid.
type Grid struct {
	Width, Depth float32
	SegX, SegZ   int

	Positions []float32 // Flat array: x,z for each vertex, row-major along Z
	Indices   []uint32  // Two triangles per quad
}

// BuildGrid creates the plane geometry. Segment counts below 1 become 1.
func BuildGrid(width, depth float32, segX, segZ int) *Grid {
	if segX < 1 {
		segX = 1
	}
	if segZ < 1 {
		segZ = 1
	}

	cols, rows := segX+1, segZ+1
	g := &Grid{
		Width:     width,
		Depth:     depth,
		SegX:      segX,
		SegZ:      segZ,
		Positions: make([]float32, 0, cols*rows*2),
		Indices:   make([]uint32, 0, segX*segZ*6),
	}

	for r := 0; r < rows; r++ {
		z := -depth/2 + depth*float32(r)/float32(segZ)
		for c := 0; c < cols; c++ {
			x := -width/2 + width*float32(c)/float32(segX)
			g.Positions = append(g.Positions, x, z)
		}
	}

	for r := 0; r < segZ; r++ {
		for c := 0; c < segX; c++ {
			a := uint32(r*cols + c)
			b := a + 1
			d := a + uint32(cols)
			e := d + 1
			g.Indices = append(g.Indices, a, d, b, b, d, e)
		}
	}

	return g
}

// VertexCount returns the number of vertices.
func (g *Grid) VertexCount() int {
	return len(g.Positions) / 2
}

// Rows returns the number of vertex rows.
func (g *Grid) Rows() int {
	return g.SegZ + 1
}

// Cols returns the number of vertices per row.
func (g *Grid) Cols() int {
	return g.SegX + 1
}

// splitRows runs fn over [0, rows) in contiguous chunks on up to workers
// goroutines and waits for all of them. workers <= 0 means NumCPU.
func splitRows(rows, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		fn(0, rows)
		return
	}

	var wg sync.WaitGroup
	chunk := (rows + workers - 1) / workers
	for lo := 0; lo < rows; lo += chunk {
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
