package rdefault

import (
	"image"

	"github.com/srlehn/guires/pix"
	resimaging "github.com/srlehn/guires/resize/imaging"
)

// Resizer is the default backend, Lanczos3 sampling.
type Resizer struct{}

var _ pix.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return ForFilter(pix.FilterLanczos3).Resize(img, size)
}

// ForFilter returns the default backend for a sampling kernel. The
// mapping is fixed so fill output is identical on every architecture;
// the SIMD rez backend stays opt-in.
func ForFilter(f pix.FilterKind) pix.Resizer {
	return resimaging.New(f)
}
