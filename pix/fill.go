package pix

import (
	"image"

	"github.com/srlehn/guires/internal/consts"
	"github.com/srlehn/guires/internal/errors"
)

// FilterKind selects the resampling kernel used when scaling.
type FilterKind int

const (
	FilterNearest FilterKind = iota
	FilterLinear
	FilterCubic
	FilterGaussian
	FilterLanczos3
)

var filterNames = map[FilterKind]string{
	FilterNearest:  `nearest`,
	FilterLinear:   `linear`,
	FilterCubic:    `cubic`,
	FilterGaussian: `gaussian`,
	FilterLanczos3: `lanczos3`,
}

func (f FilterKind) String() string {
	if n, ok := filterNames[f]; ok {
		return n
	}
	return `unknown`
}

// ParseFilter ...
func ParseFilter(s string) (FilterKind, error) {
	for f, n := range filterNames {
		if s == n {
			return f, nil
		}
	}
	return 0, errors.Errorf(`unknown filter %q`, s)
}

// Resizer scales an image to the given size.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// ResizeToFill returns a ColorImage of exactly the requested size:
// the source is cropped (centered) to the largest sub-rectangle
// matching the target aspect ratio, then scaled by rsz. A source
// relatively wider than the target loses columns, a taller one loses
// rows; no letterboxing, no stretch. A zero target side yields a
// zero-pixel image of the requested size. A zero-area source with a
// non-zero target fails with consts.ErrDegenerateSource.
func ResizeToFill(src *ColorImage, size image.Point, rsz Resizer) (*ColorImage, error) {
	if err := src.checkShape(); err != nil {
		return nil, err
	}
	if size.X < 0 || size.Y < 0 {
		return nil, errors.Errorf(`negative target size %dx%d`, size.X, size.Y)
	}
	if size.X == 0 || size.Y == 0 {
		return &ColorImage{Width: size.X, Height: size.Y, Pixels: []Pixel{}}, nil
	}
	if src.Width == 0 || src.Height == 0 {
		return nil, errors.New(consts.ErrDegenerateSource)
	}

	// largest centered sub-rectangle with the target aspect ratio
	cropW, cropH := src.Width, src.Height
	if src.Width*size.Y > size.X*src.Height {
		// source wider than target, keep full height
		cropW = src.Height * size.X / size.Y
		if cropW < 1 {
			cropW = 1
		}
	} else {
		// source taller than or matching target, keep full width
		cropH = src.Width * size.Y / size.X
		if cropH < 1 {
			cropH = 1
		}
	}
	x0 := (src.Width - cropW) / 2
	y0 := (src.Height - cropH) / 2

	nr, err := src.NRGBA()
	if err != nil {
		return nil, err
	}
	crop := nr.SubImage(image.Rect(x0, y0, x0+cropW, y0+cropH)).(*image.NRGBA)
	if cropW == size.X && cropH == size.Y {
		return FromNRGBA(crop)
	}
	if err := errors.NilParam(rsz); err != nil {
		return nil, err
	}
	scaled, err := rsz.Resize(crop, size)
	if err != nil {
		return nil, err
	}
	out, err := FromImage(scaled)
	if err != nil {
		return nil, err
	}
	if out.Width != size.X || out.Height != size.Y {
		return nil, errors.Errorf(`resizer returned %dx%d, want %dx%d`,
			out.Width, out.Height, size.X, size.Y)
	}
	return out, nil
}
