package ocean

import (
	"fmt"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Noise kinds accepted by NewNoise.
const (
	NoiseSimplex = "simplex"
	NoisePerlin  = "perlin"
)

// noiseSeed is fixed so the field is a pure function of its inputs.
const noiseSeed = 0

// Noise is a smooth deterministic 3D noise field with output in roughly [-1, 1].
// Implementations must be safe for concurrent reads.
type Noise interface {
	Eval3(x, y, z float32) float32
}

// NewNoise returns the noise field of the given kind.
func NewNoise(kind string) (Noise, error) {
	switch kind {
	case "", NoiseSimplex:
		return simplexNoise{field: opensimplex.New32(noiseSeed)}, nil
	case NoisePerlin:
		// alpha/beta only matter past the first octave; one octave keeps it
		// a plain gradient noise.
		return perlinNoise{field: perlin.NewPerlin(2, 2, 1, noiseSeed)}, nil
	default:
		return nil, fmt.Errorf("unknown noise %q", kind)
	}
}

// DefaultNoise is the simplex field used by the package-level helpers.
var DefaultNoise Noise = simplexNoise{field: opensimplex.New32(noiseSeed)}

type simplexNoise struct {
	field opensimplex.Noise32
}

func (n simplexNoise) Eval3(x, y, z float32) float32 {
	return n.field.Eval3(x, y, z)
}

type perlinNoise struct {
	field *perlin.Perlin
}

func (n perlinNoise) Eval3(x, y, z float32) float32 {
	return float32(n.field.Noise3D(float64(x), float64(y), float64(z)))
}
