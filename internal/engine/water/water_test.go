package water

import (
	"bytes"
	"testing"

	"github.com/Faultbox/raging-sea/internal/ocean"
)

func TestBuildGridCounts(t *testing.T) {
	tests := []struct {
		seg       int
		vertices  int
		triangles int
	}{
		{1, 4, 2},
		{4, 25, 32},
		{512, 513 * 513, 512 * 512 * 2},
	}
	for _, tt := range tests {
		g := BuildGrid(2, 2, tt.seg, tt.seg)
		if g.VertexCount() != tt.vertices {
			t.Errorf("seg %d: %d vertices, want %d", tt.seg, g.VertexCount(), tt.vertices)
		}
		if len(g.Indices) != tt.triangles*3 {
			t.Errorf("seg %d: %d indices, want %d", tt.seg, len(g.Indices), tt.triangles*3)
		}
	}
}

func TestBuildGridExtents(t *testing.T) {
	g := BuildGrid(2, 4, 8, 8)

	minX, maxX := g.Positions[0], g.Positions[0]
	minZ, maxZ := g.Positions[1], g.Positions[1]
	for i := 0; i < len(g.Positions); i += 2 {
		x, z := g.Positions[i], g.Positions[i+1]
		minX, maxX = min(minX, x), max(maxX, x)
		minZ, maxZ = min(minZ, z), max(maxZ, z)
	}
	if minX != -1 || maxX != 1 {
		t.Errorf("x range [%v, %v], want [-1, 1]", minX, maxX)
	}
	if minZ != -2 || maxZ != 2 {
		t.Errorf("z range [%v, %v], want [-2, 2]", minZ, maxZ)
	}

	for _, idx := range g.Indices {
		if int(idx) >= g.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildGridClampsSegments(t *testing.T) {
	g := BuildGrid(2, 2, 0, -3)
	if g.SegX != 1 || g.SegZ != 1 || g.VertexCount() != 4 {
		t.Errorf("degenerate grid not clamped: %+v", g)
	}
}

func TestDisplaceMatchesElevation(t *testing.T) {
	g := BuildGrid(2, 2, 16, 16)
	s := NewSurface(g, ocean.NewModel(nil), 4)

	p := ocean.DefaultParams()
	p.ElapsedTime = 1.25
	heights := s.Displace(p)

	if len(heights) != g.VertexCount() {
		t.Fatalf("%d heights for %d vertices", len(heights), g.VertexCount())
	}
	for v := 0; v < g.VertexCount(); v++ {
		want := ocean.Elevation(p, g.Positions[2*v], g.Positions[2*v+1])
		if heights[v] != want {
			t.Fatalf("vertex %d: %v, want %v", v, heights[v], want)
		}
	}
}

func TestDisplaceLeavesBasePositions(t *testing.T) {
	g := BuildGrid(2, 2, 8, 8)
	base := append([]float32(nil), g.Positions...)

	s := NewSurface(g, ocean.NewModel(nil), 0)
	p := ocean.DefaultParams()
	for _, tm := range []float32{0, 0.5, 3} {
		p.ElapsedTime = tm
		s.Displace(p)
	}

	for i := range base {
		if g.Positions[i] != base[i] {
			t.Fatalf("base position %d changed: %v -> %v", i, base[i], g.Positions[i])
		}
	}
}

func TestDisplaceWorkerCountIndependent(t *testing.T) {
	g := BuildGrid(2, 2, 33, 33)
	p := ocean.DefaultParams()
	p.ElapsedTime = 7

	single := append([]float32(nil), NewSurface(g, ocean.NewModel(nil), 1).Displace(p)...)
	for _, workers := range []int{2, 3, 8, 100} {
		got := NewSurface(g, ocean.NewModel(nil), workers).Displace(p)
		for i := range single {
			if got[i] != single[i] {
				t.Fatalf("workers %d: vertex %d differs", workers, i)
			}
		}
	}
}

func TestDisplaceFollowsTime(t *testing.T) {
	g := BuildGrid(2, 2, 4, 4)
	s := NewSurface(g, ocean.NewModel(nil), 1)

	p := ocean.DefaultParams()
	first := append([]float32(nil), s.Displace(p)...)
	p.ElapsedTime = 1
	second := s.Displace(p)

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("surface did not move over time")
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	p := ocean.DefaultParams()
	p.ElapsedTime = 2

	a := Rasterize(p, ocean.NewModel(nil), 2, 32, 24, 1)
	b := Rasterize(p, ocean.NewModel(nil), 2, 32, 24, 5)

	if a.Bounds().Dx() != 32 || a.Bounds().Dy() != 24 {
		t.Fatalf("bounds %v", a.Bounds())
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("raster depends on worker count")
	}
}

func TestRasterizeFlatColor(t *testing.T) {
	// No waves: every pixel is the color at elevation 0.
	p := ocean.DefaultParams()
	p.BigWaveElevation = 0
	p.SmallWaveIterations = 0

	img := Rasterize(p, ocean.NewModel(nil), 2, 8, 8, 2)
	c := ocean.Color(p, 0)
	want := [3]uint8{to8(c[0]), to8(c[1]), to8(c[2])}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := img.RGBAAt(x, y)
			if [3]uint8{got.R, got.G, got.B} != want || got.A != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSplitRowsCoversAll(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 7, 64} {
		seen := make([]int, 50)
		splitRows(len(seen), workers, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				seen[i]++
			}
		})
		for i, n := range seen {
			if n != 1 {
				t.Fatalf("workers %d: row %d visited %d times", workers, i, n)
			}
		}
	}
}
