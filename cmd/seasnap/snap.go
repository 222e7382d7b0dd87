package main

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/Faultbox/raging-sea/internal/engine/water"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// Render limits.
const (
	maxSize       = 8192
	maxSSAA       = 8
	maxRasterSide = 16384 // Longest side of the supersampled raster
)

var errRenderSize = errors.New("render size out of range")

// checkRenderSize rejects output sizes and supersampling factors whose
// raster would be empty or too large to allocate.
func checkRenderSize(width, height, ssaa int) error {
	switch {
	case width < 1 || width > maxSize || height < 1 || height > maxSize:
		return fmt.Errorf("%w: size %dx%d outside [1, %d]", errRenderSize, width, height, maxSize)
	case ssaa < 1 || ssaa > maxSSAA:
		return fmt.Errorf("%w: ssaa %d outside [1, %d]", errRenderSize, ssaa, maxSSAA)
	case width*ssaa > maxRasterSide || height*ssaa > maxRasterSide:
		return fmt.Errorf("%w: supersampled raster %dx%d exceeds %d per side",
			errRenderSize, width*ssaa, height*ssaa, maxRasterSide)
	}
	return nil
}

// snapshot renders a top-down view of the plane. With ssaa > 1 the surface
// is rasterized ssaa times larger and filtered down to width x height.
func snapshot(p ocean.Params, model ocean.Model, size float32, width, height, ssaa, workers int) (*image.RGBA, error) {
	if err := checkRenderSize(width, height, ssaa); err != nil {
		return nil, err
	}
	if ssaa == 1 {
		return water.Rasterize(p, model, size, width, height, workers), nil
	}

	big := water.Rasterize(p, model, size, width*ssaa, height*ssaa, workers)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)
	return dst, nil
}

// sample is the surface state at one point of the plane.
type sample struct {
	Elevation float32
	Mix       float32
	Color     string
}

func probe(p ocean.Params, model ocean.Model, x, z float32) sample {
	e := model.Elevation(p, x, z)
	return sample{
		Elevation: e,
		Mix:       ocean.MixFactor(p, e),
		Color:     ocean.HexColor(ocean.Color(p, e)),
	}
}
