package resources

import (
	"log/slog"

	"github.com/golang/freetype"

	"github.com/srlehn/guires/internal/logx"
)

// FontFamily ...
type FontFamily int

const (
	FamilyProportional FontFamily = iota
	FamilyMonospace
)

// FontSpec names a font file to register and the family it joins.
type FontSpec struct {
	Name   string
	File   string
	Family FontFamily
}

// FontTable is the font registration bookkeeping a GUI toolkit
// consumes: raw font bytes by name, and per-family name lists in
// priority order.
type FontTable struct {
	Data     map[string][]byte
	Families map[FontFamily][]string
}

// NewFontTable ...
func NewFontTable() *FontTable {
	return &FontTable{
		Data:     make(map[string][]byte),
		Families: make(map[FontFamily][]string),
	}
}

// Font reads a font file below the base directory and registers it
// under name, prepending it to its family's priority list. Fail-soft:
// an unreadable or unparsable font file leaves the table unchanged
// apart from a warn log.
func (l *Loader) Font(t *FontTable, name, file string, family FontFamily) {
	if t == nil {
		return
	}
	b, err := l.ReadBytes(file, PathBase)
	if logx.IsErr(err, l, slog.LevelWarn, `font`, name) {
		return
	}
	if _, err := freetype.ParseFont(b); logx.IsErr(err, l, slog.LevelWarn, `font`, name) {
		return
	}
	t.Data[name] = b
	t.Families[family] = append([]string{name}, t.Families[family]...)
}

// Fonts builds a font table from specs, in order. Later specs end up
// earlier in their family's priority list.
func (l *Loader) Fonts(specs []FontSpec) *FontTable {
	t := NewFontTable()
	for _, s := range specs {
		l.Font(t, s.Name, s.File, s.Family)
	}
	return t
}
