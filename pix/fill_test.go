package pix_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/guires/internal/consts"
	"github.com/srlehn/guires/internal/errors"
	"github.com/srlehn/guires/pix"
	"github.com/srlehn/guires/resize/rdefault"
)

var (
	red    = pix.Pixel{R: 255, A: 255}
	green  = pix.Pixel{G: 255, A: 255}
	blue   = pix.Pixel{B: 255, A: 255}
	yellow = pix.Pixel{R: 255, G: 255, A: 255}
)

// quadrantImage is 4x4: red/green top, blue/yellow bottom, 2x2 each.
func quadrantImage() *pix.ColorImage {
	img := pix.NewColorImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var p pix.Pixel
			switch {
			case x < 2 && y < 2:
				p = red
			case y < 2:
				p = green
			case x < 2:
				p = blue
			default:
				p = yellow
			}
			img.Set(x, y, p)
		}
	}
	return img
}

func TestResizeToFillShape(t *testing.T) {
	src := pix.NewColorImage(5, 3)
	for i := range src.Pixels {
		src.Pixels[i] = pix.Pixel{R: uint8(i * 11), G: uint8(i * 5), B: uint8(i), A: 255}
	}
	filters := []pix.FilterKind{
		pix.FilterNearest, pix.FilterLinear, pix.FilterCubic,
		pix.FilterGaussian, pix.FilterLanczos3,
	}
	targets := []image.Point{{X: 2, Y: 2}, {X: 7, Y: 4}, {X: 1, Y: 9}, {X: 3, Y: 3}, {X: 16, Y: 2}}
	for _, f := range filters {
		for _, size := range targets {
			out, err := pix.ResizeToFill(src, size, rdefault.ForFilter(f))
			require.NoError(t, err, `filter %s size %v`, f, size)
			assert.Equal(t, size.X, out.Width, `filter %s size %v`, f, size)
			assert.Equal(t, size.Y, out.Height, `filter %s size %v`, f, size)
			assert.Len(t, out.Pixels, size.X*size.Y, `filter %s size %v`, f, size)
		}
	}
}

func TestResizeToFillDegenerateTarget(t *testing.T) {
	src := quadrantImage()
	for _, size := range []image.Point{{}, {X: 0, Y: 5}, {X: 5, Y: 0}} {
		out, err := pix.ResizeToFill(src, size, rdefault.ForFilter(pix.FilterNearest))
		require.NoError(t, err)
		assert.Equal(t, size.X, out.Width)
		assert.Equal(t, size.Y, out.Height)
		assert.Empty(t, out.Pixels)
	}
}

func TestResizeToFillDegenerateSource(t *testing.T) {
	for _, src := range []*pix.ColorImage{
		pix.NewColorImage(0, 0),
		pix.NewColorImage(0, 3),
		pix.NewColorImage(3, 0),
	} {
		_, err := pix.ResizeToFill(src, image.Point{X: 2, Y: 2}, rdefault.ForFilter(pix.FilterLinear))
		require.Error(t, err)
		assert.True(t, errors.Is(err, consts.ErrDegenerateSource), `got %v`, err)
	}
}

func TestResizeToFillNearestQuadrants(t *testing.T) {
	out, err := pix.ResizeToFill(quadrantImage(), image.Point{X: 2, Y: 2},
		rdefault.ForFilter(pix.FilterNearest))
	require.NoError(t, err)
	require.Equal(t, 2, out.Width)
	require.Equal(t, 2, out.Height)
	assert.Equal(t, []pix.Pixel{red, green, blue, yellow}, out.Pixels)
}

func TestResizeToFillCropWide(t *testing.T) {
	// 4x2 source with distinct columns; filling 2x2 keeps the two
	// center columns at full height, no resampling involved.
	src := pix.NewColorImage(4, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, pix.Pixel{R: uint8(x * 10), G: uint8(y), A: 255})
		}
	}
	out, err := pix.ResizeToFill(src, image.Point{X: 2, Y: 2}, nil)
	require.NoError(t, err)
	want := []pix.Pixel{
		{R: 10, G: 0, A: 255}, {R: 20, G: 0, A: 255},
		{R: 10, G: 1, A: 255}, {R: 20, G: 1, A: 255},
	}
	assert.Equal(t, want, out.Pixels)
}

func TestResizeToFillCropTall(t *testing.T) {
	src := pix.NewColorImage(2, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, pix.Pixel{B: uint8(y * 10), G: uint8(x), A: 255})
		}
	}
	out, err := pix.ResizeToFill(src, image.Point{X: 2, Y: 2}, nil)
	require.NoError(t, err)
	want := []pix.Pixel{
		{B: 10, G: 0, A: 255}, {B: 10, G: 1, A: 255},
		{B: 20, G: 0, A: 255}, {B: 20, G: 1, A: 255},
	}
	assert.Equal(t, want, out.Pixels)
}

func TestResizeToFillDeterministic(t *testing.T) {
	src := quadrantImage()
	for _, f := range []pix.FilterKind{pix.FilterNearest, pix.FilterLanczos3} {
		a, err := pix.ResizeToFill(src, image.Point{X: 3, Y: 2}, rdefault.ForFilter(f))
		require.NoError(t, err)
		b, err := pix.ResizeToFill(src, image.Point{X: 3, Y: 2}, rdefault.ForFilter(f))
		require.NoError(t, err)
		assert.Equal(t, a, b, `filter %s`, f)
	}
}

func TestParseFilter(t *testing.T) {
	for _, f := range []pix.FilterKind{
		pix.FilterNearest, pix.FilterLinear, pix.FilterCubic,
		pix.FilterGaussian, pix.FilterLanczos3,
	} {
		got, err := pix.ParseFilter(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := pix.ParseFilter(`bogus`)
	assert.Error(t, err)
}
