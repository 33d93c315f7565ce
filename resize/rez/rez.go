package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/guires/pix"
)

// Resizer uses "github.com/bamiaux/rez" (SIMD on amd64).
// Supported inputs are the interleaved stdlib formats
// (RGBA, NRGBA, Gray, YCbCr); anything else fails.
type Resizer struct{}

var _ pix.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	err := rez.Convert(m, img, rez.NewLanczosFilter(3))
	if err != nil {
		return nil, err
	}
	return m, nil
}
