package water

import (
	"image"
	"image/color"

	"github.com/Faultbox/raging-sea/internal/ocean"
)

// Rasterize renders a top-down orthographic view of a size × size plane
// centered on the origin into a width × height image. Each pixel samples
// elevation and color at its center. Output depends only on the inputs.
func Rasterize(p ocean.Params, model ocean.Model, size float32, width, height, workers int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	splitRows(height, workers, func(lo, hi int) {
		for py := lo; py < hi; py++ {
			// Image rows run top to bottom, which is -Z to +Z seen from above.
			z := -size/2 + size*(float32(py)+0.5)/float32(height)
			for px := 0; px < width; px++ {
				x := -size/2 + size*(float32(px)+0.5)/float32(width)
				c := ocean.Color(p, model.Elevation(p, x, z))
				img.SetRGBA(px, py, color.RGBA{
					R: to8(c[0]),
					G: to8(c[1]),
					B: to8(c[2]),
					A: 255,
				})
			}
		}
	})

	return img
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
