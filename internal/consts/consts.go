package consts

import (
	"errors"
)

var (
	ErrNilReceiver      = errors.New(`nil receiver`)
	ErrNilParam         = errors.New(`nil parameter`)
	ErrNilImage         = errors.New(`nil image`)
	ErrShapeMismatch    = errors.New(`buffer shape mismatch`)
	ErrDegenerateSource = errors.New(`source image has zero area`)
)

const (
	LibraryName = `guires`

	// default directory for PathBase resource lookups
	ResourceDirDefault = `./resources`
)
