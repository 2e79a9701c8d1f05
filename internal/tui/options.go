package tui

import (
	"slices"

	"dngconv/internal/services/dnglab"
	"dngconv/internal/textutil"
)

type optionField int

const (
	fieldCompression optionField = iota
	fieldCrop
	fieldEmbedRaw
	fieldOverride
	fieldRecursive
	fieldCount
)

type optionRow struct {
	label    string
	value    string
	selected bool
}

// optionsForm edits the five conversion options. Its value is read once when
// a run is triggered.
type optionsForm struct {
	opts   dnglab.Options
	cursor optionField
}

func newOptionsForm(opts dnglab.Options) optionsForm {
	return optionsForm{opts: opts}
}

func (f optionsForm) Options() dnglab.Options {
	return f.opts
}

func (f *optionsForm) up() {
	f.cursor = (f.cursor + fieldCount - 1) % fieldCount
}

func (f *optionsForm) down() {
	f.cursor = (f.cursor + 1) % fieldCount
}

// cycle moves enum fields by delta and flips boolean fields.
func (f *optionsForm) cycle(delta int) {
	switch f.cursor {
	case fieldCompression:
		f.opts.Compression = step(dnglab.CompressionModes(), f.opts.Compression, delta)
	case fieldCrop:
		f.opts.Crop = step(dnglab.CropModes(), f.opts.Crop, delta)
	case fieldEmbedRaw:
		f.opts.EmbedRaw = !f.opts.EmbedRaw
	case fieldOverride:
		f.opts.Overwrite = !f.opts.Overwrite
	case fieldRecursive:
		f.opts.Recursive = !f.opts.Recursive
	}
}

func step[T comparable](values []T, current T, delta int) T {
	idx := slices.Index(values, current)
	if idx < 0 {
		return values[0]
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

func (f optionsForm) rows() []optionRow {
	return []optionRow{
		{label: "Compression", value: textutil.Title(string(f.opts.Compression)), selected: f.cursor == fieldCompression},
		{label: "Crop", value: textutil.Title(string(f.opts.Crop)), selected: f.cursor == fieldCrop},
		{label: "Embed raw", value: textutil.YesNo(f.opts.EmbedRaw), selected: f.cursor == fieldEmbedRaw},
		{label: "Override", value: textutil.YesNo(f.opts.Overwrite), selected: f.cursor == fieldOverride},
		{label: "Recursive", value: textutil.YesNo(f.opts.Recursive), selected: f.cursor == fieldRecursive},
	}
}
