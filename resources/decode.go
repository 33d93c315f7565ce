package resources

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/kovidgoyal/imaging"

	"github.com/srlehn/guires/internal/errors"
	"github.com/srlehn/guires/pix"
)

// Decode turns encoded image bytes into a flat unmultiplied RGBA8
// buffer. The format is whatever a registered codec recognizes; this
// package registers png, jpeg, gif, webp, bmp and tiff. Additional
// codecs can be registered by the caller the usual way:
//
//	import _ "golang.org/x/image/ccitt"
func Decode(b []byte) (*pix.Raw, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.New(err)
	}
	nr := imaging.Clone(img)
	sz := nr.Bounds().Size()
	return &pix.Raw{
		Width:  uint32(sz.X),
		Height: uint32(sz.Y),
		Bytes:  nr.Pix,
	}, nil
}

// DecodeImage is Decode plus the bridge to a ColorImage.
func DecodeImage(b []byte) (*pix.ColorImage, error) {
	raw, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return raw.ColorImage()
}
