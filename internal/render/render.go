// Package render merges the summary's info lines with a language logo
// into one printable block.
package render

import (
	"image"
	"strings"

	"gitfetch/internal/assets"
	"gitfetch/internal/domain"
	"gitfetch/internal/ports"
	"gitfetch/internal/theme"
)

// gutter separates the logo column from the info column.
const gutter = "   "

// Options is the display configuration threaded into the renderer.
type Options struct {
	Logo           string   // Language override for art selection, "" = dominant
	ColorOverrides []string // ANSI 0-15 numbers replacing palette entries
	Fields         FieldsOff
	Bold           bool
	NoColorBlocks  bool
	Image          image.Image // Raster logo; replaces the textual logo entirely
	Backend        ports.ImageBackend
}

// Render produces the final printable block for a summary.
func Render(s *domain.Summary, opts Options) string {
	language := opts.Logo
	if language == "" {
		language = s.Dominant()
	}
	logo := assets.Lookup(language)
	palette := theme.OverridePalette(logo.Palette, opts.ColorOverrides)

	primary := theme.ColorWhite
	if len(palette) > 0 {
		primary = palette[0]
	}
	info := infoLines(s, opts, primary)

	// Raster mode bypasses the dual-stream zip: the backend owns layout.
	if opts.Image != nil && opts.Backend != nil {
		indented := make([]string, len(info))
		for i, line := range info {
			indented[i] = gutter + line
		}
		return opts.Backend.Render(opts.Image, indented)
	}

	return Zip(BuildLogo(logo.Art, palette, opts.Bold), info)
}

// Zip interleaves the logo block and the info lines row by row. Rows past
// the end of the logo are padded with the logo's declared width so the
// info column never shifts left; rows past the end of the info column are
// the bare logo line. One trailing blank line closes the block.
func Zip(logo LogoBlock, info []string) string {
	var out strings.Builder

	rows := len(logo.Lines)
	if len(info) > rows {
		rows = len(info)
	}
	for i := 0; i < rows; i++ {
		switch {
		case i < len(logo.Lines) && i < len(info):
			out.WriteString(logo.Lines[i] + gutter + info[i])
		case i < len(logo.Lines):
			out.WriteString(logo.Lines[i])
		default:
			out.WriteString(strings.Repeat(" ", logo.Width) + gutter + info[i])
		}
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	return out.String()
}
