package pix

const exampleSize = 256

// Example returns the built-in placeholder pattern substituted for
// assets that cannot be read or decoded. The pattern is fixed: a
// 256x256 opaque color gradient, identical on every call.
func Example() *ColorImage {
	img := NewColorImage(exampleSize, exampleSize)
	for y := 0; y < exampleSize; y++ {
		for x := 0; x < exampleSize; x++ {
			img.Pixels[y*exampleSize+x] = Pixel{
				R: uint8(x),
				G: uint8(y),
				B: uint8(255 - (x+y)/2),
				A: 255,
			}
		}
	}
	return img
}
