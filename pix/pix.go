package pix

import (
	"image"
	"image/draw"

	"github.com/srlehn/guires/internal/consts"
	"github.com/srlehn/guires/internal/errors"
)

// Pixel is a single RGBA8 sample with unmultiplied alpha,
// 4 bytes in R,G,B,A order.
type Pixel struct {
	R, G, B, A uint8
}

// ColorImage is a row-major sequence of Pixels, the shape a GUI
// renderer uploads directly. len(Pixels) == Width*Height always holds
// for images built through this package.
type ColorImage struct {
	Width  int
	Height int
	Pixels []Pixel
}

// NewColorImage ...
func NewColorImage(width, height int) *ColorImage {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ColorImage{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

// Size ...
func (m *ColorImage) Size() image.Point {
	if m == nil {
		return image.Point{}
	}
	return image.Point{X: m.Width, Y: m.Height}
}

// At returns the pixel at (x,y), row-major.
func (m *ColorImage) At(x, y int) Pixel { return m.Pixels[y*m.Width+x] }

// Set ...
func (m *ColorImage) Set(x, y int, p Pixel) { m.Pixels[y*m.Width+x] = p }

func (m *ColorImage) checkShape() error {
	if m == nil {
		return errors.NilReceiver()
	}
	if m.Width < 0 || m.Height < 0 || len(m.Pixels) != m.Width*m.Height {
		return errors.New(consts.ErrShapeMismatch)
	}
	return nil
}

// Raw is a decoded image as a flat byte buffer, 4 bytes per pixel,
// row-major RGBA8 with unmultiplied alpha. len(Bytes) == Width*Height*4.
type Raw struct {
	Width  uint32
	Height uint32
	Bytes  []byte
}

// ColorImage unpacks the flat buffer into a ColorImage. Every group of
// 4 consecutive bytes becomes one Pixel; byte values pass through
// unchanged. A buffer whose length does not match Width*Height*4 fails
// with consts.ErrShapeMismatch.
func (r *Raw) ColorImage() (*ColorImage, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	if uint64(len(r.Bytes)) != uint64(r.Width)*uint64(r.Height)*4 {
		return nil, errors.New(consts.ErrShapeMismatch)
	}
	img := NewColorImage(int(r.Width), int(r.Height))
	for i := range img.Pixels {
		o := i * 4
		img.Pixels[i] = Pixel{R: r.Bytes[o], G: r.Bytes[o+1], B: r.Bytes[o+2], A: r.Bytes[o+3]}
	}
	return img, nil
}

// Raw packs the pixels back into a flat buffer, the inverse of
// (*Raw).ColorImage. An image whose pixel count does not match its
// declared size fails with consts.ErrShapeMismatch.
func (m *ColorImage) Raw() (*Raw, error) {
	if err := m.checkShape(); err != nil {
		return nil, err
	}
	b := make([]byte, 0, len(m.Pixels)*4)
	for _, p := range m.Pixels {
		b = append(b, p.R, p.G, p.B, p.A)
	}
	return &Raw{Width: uint32(m.Width), Height: uint32(m.Height), Bytes: b}, nil
}

// NRGBA wraps the image in the stdlib unmultiplied RGBA type with a
// compact stride, for handing to resampling backends.
func (m *ColorImage) NRGBA() (*image.NRGBA, error) {
	raw, err := m.Raw()
	if err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    raw.Bytes,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}, nil
}

// FromNRGBA copies an *image.NRGBA into a ColorImage. Handles
// sub-images and padded strides.
func FromNRGBA(m *image.NRGBA) (*ColorImage, error) {
	if m == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	w, h := m.Rect.Dx(), m.Rect.Dy()
	img := NewColorImage(w, h)
	for y := 0; y < h; y++ {
		o := m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y)
		row := m.Pix[o : o+w*4]
		for x := 0; x < w; x++ {
			img.Pixels[y*w+x] = Pixel{R: row[x*4], G: row[x*4+1], B: row[x*4+2], A: row[x*4+3]}
		}
	}
	return img, nil
}

// FromImage converts any image.Image to a ColorImage, going through
// NRGBA so color values stay unmultiplied.
func FromImage(img image.Image) (*ColorImage, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if m, ok := img.(*image.NRGBA); ok {
		return FromNRGBA(m)
	}
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
	return FromNRGBA(m)
}
