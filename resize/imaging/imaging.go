package imaging

import (
	"image"

	"github.com/kovidgoyal/imaging"

	"github.com/srlehn/guires/pix"
)

// Resizer uses "github.com/kovidgoyal/imaging".
// It implements every pix.FilterKind kernel.
type Resizer struct {
	Filter pix.FilterKind
}

var _ pix.Resizer = (*Resizer)(nil)

func New(f pix.FilterKind) *Resizer { return &Resizer{Filter: f} }

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := imaging.Resize(img, size.X, size.Y, filter(r.Filter))
	return m, nil
}

func filter(f pix.FilterKind) imaging.ResampleFilter {
	switch f {
	case pix.FilterNearest:
		return imaging.NearestNeighbor
	case pix.FilterLinear:
		return imaging.Linear
	case pix.FilterCubic:
		return imaging.CatmullRom
	case pix.FilterGaussian:
		return imaging.Gaussian
	case pix.FilterLanczos3:
		return imaging.Lanczos
	}
	return imaging.Lanczos
}
