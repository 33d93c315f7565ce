package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/guires/pix"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct {
	Filter pix.FilterKind
}

var _ pix.Resizer = (*Resizer)(nil)

func New(f pix.FilterKind) *Resizer { return &Resizer{Filter: f} }

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := transform.Resize(img, size.X, size.Y, filter(r.Filter))
	return m, nil
}

func filter(f pix.FilterKind) transform.ResampleFilter {
	switch f {
	case pix.FilterNearest:
		return transform.NearestNeighbor
	case pix.FilterLinear:
		return transform.Linear
	case pix.FilterCubic:
		return transform.CatmullRom
	case pix.FilterGaussian:
		return transform.Gaussian
	case pix.FilterLanczos3:
		return transform.Lanczos
	}
	return transform.Lanczos
}
