package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/guires/pix"
)

// Resizer uses "github.com/nfnt/resize" (Lanczos3 kernel)
type Resizer struct{}

var _ pix.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	m := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	return m, nil
}
