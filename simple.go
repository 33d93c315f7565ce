// Package guires loads image assets into uncompressed, unmultiplied
// RGBA8 pixel buffers ready for upload to a GUI renderer, and produces
// aspect-filling resized copies of them.
//
// The package-level functions operate on a default Loader with the
// "./resources" base directory; construct a resources.Loader for
// anything else.
package guires

import (
	"image"

	"github.com/srlehn/guires/pix"
	"github.com/srlehn/guires/resize/rdefault"
	"github.com/srlehn/guires/resources"
)

var (
	// chosen defaults
	loaderDefault              = resources.NewLoader(resources.Config{})
	resizerDefault pix.Resizer = &rdefault.Resizer{}
)

// Loader returns the default loader.
func Loader() *resources.Loader { return loaderDefault }

// Image loads an asset as a ColorImage, substituting the built-in
// placeholder on failure.
func Image(name string, policy resources.PathPolicy) *pix.ColorImage {
	return loaderDefault.Image(name, policy)
}

// Icon loads a window icon from the resource directory, nil when absent.
func Icon(name string) *resources.Icon { return loaderDefault.Icon(name) }

// Fonts registers the named font files from the resource directory.
func Fonts(specs []resources.FontSpec) *resources.FontTable {
	return loaderDefault.Fonts(specs)
}

// DecodeBytes - for use with "embed", etc.
func DecodeBytes(imgBytes []byte) (*pix.ColorImage, error) {
	return resources.DecodeImage(imgBytes)
}

// ResizeToFill crops the source (centered) to the target aspect ratio
// and scales it to exactly width x height with the given kernel.
func ResizeToFill(src *pix.ColorImage, width, height int, filter pix.FilterKind) (*pix.ColorImage, error) {
	return pix.ResizeToFill(src, image.Point{X: width, Y: height}, rdefault.ForFilter(filter))
}

// Resize scales an image with the default resizer, no cropping.
func Resize(img image.Image, width, height int) (image.Image, error) {
	return resizerDefault.Resize(img, image.Point{X: width, Y: height})
}
