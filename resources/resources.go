// Package resources resolves asset names to pixel buffers for a GUI.
//
// Loading is fail-soft: a missing or corrupt image asset never takes
// down the application. Image substitutes the built-in placeholder,
// Icon reports the icon as absent. LoadImage is the strict variant for
// callers that want the error instead.
package resources

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/srlehn/guires/internal/consts"
	"github.com/srlehn/guires/internal/errors"
	"github.com/srlehn/guires/internal/logx"
	"github.com/srlehn/guires/pix"
)

// PathPolicy selects how an asset name becomes a file path.
type PathPolicy int

const (
	// PathBase resolves the name below the configured base directory.
	PathBase PathPolicy = iota
	// PathDirect uses the name as given, absolute or caller-relative.
	PathDirect
)

// Config is constructed once and owned by the Loader; there is no
// ambient base-path state.
type Config struct {
	BaseDir string // base directory for PathBase, default "./resources"
	Logger  *slog.Logger
}

// Loader ...
type Loader struct {
	baseDir string
	logger  *slog.Logger
}

var _ logx.LoggerProvider = (*Loader)(nil)

// NewLoader ...
func NewLoader(cfg Config) *Loader {
	if len(cfg.BaseDir) == 0 {
		cfg.BaseDir = consts.ResourceDirDefault
	}
	return &Loader{baseDir: cfg.BaseDir, logger: cfg.Logger}
}

// Logger ...
func (l *Loader) Logger() *slog.Logger {
	if l == nil {
		return nil
	}
	return l.logger
}

// Path composes the file path for an asset name, pure string work.
func (l *Loader) Path(name string, policy PathPolicy) string {
	if policy == PathDirect || l == nil {
		return name
	}
	return filepath.Join(l.baseDir, name)
}

// ReadBytes reads the asset in a single blocking read.
func (l *Loader) ReadBytes(name string, policy PathPolicy) ([]byte, error) {
	if l == nil {
		return nil, errors.NilReceiver()
	}
	b, err := os.ReadFile(l.Path(name, policy))
	if err != nil {
		return nil, errors.New(err)
	}
	return b, nil
}

// LoadImage reads and decodes an asset into a ColorImage. Unlike
// Image it propagates read and decode errors.
func (l *Loader) LoadImage(name string, policy PathPolicy) (*pix.ColorImage, error) {
	b, err := l.ReadBytes(name, policy)
	if err != nil {
		return nil, err
	}
	return DecodeImage(b)
}

// Image reads and decodes an asset, substituting the built-in
// placeholder pattern when the asset is missing or does not decode.
// The failure is logged at warn level, never returned.
func (l *Loader) Image(name string, policy PathPolicy) *pix.ColorImage {
	img, err := l.LoadImage(name, policy)
	if logx.IsErr(err, l, slog.LevelWarn, `resource`, name) {
		return pix.Example()
	}
	logx.Debug(`loaded image resource`, l, `resource`, name, `width`, img.Width, `height`, img.Height)
	return img
}

// Icon is the flat-buffer shape a windowing-system icon API consumes.
type Icon struct {
	RGBA   []byte
	Width  uint32
	Height uint32
}

// Icon reads and decodes a window icon below the base directory.
// A missing or corrupt icon is absent, not an error: the result is nil
// and the failure is logged at warn level.
func (l *Loader) Icon(name string) *Icon {
	b, err := l.ReadBytes(name, PathBase)
	if logx.IsErr(err, l, slog.LevelWarn, `icon`, name) {
		return nil
	}
	raw, err := Decode(b)
	if logx.IsErr(err, l, slog.LevelWarn, `icon`, name) {
		return nil
	}
	return &Icon{RGBA: raw.Bytes, Width: raw.Width, Height: raw.Height}
}
