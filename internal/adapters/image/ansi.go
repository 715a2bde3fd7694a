// Package image renders raster logos as ANSI half-block art.
package image

import (
	"fmt"
	stdimage "image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitfetch/internal/ports"
)

// cellWidth is the number of terminal columns the rendered image occupies.
const cellWidth = 40

// gutter separates the image from the info column.
const gutter = "   "

// ANSIBackend implements ports.ImageBackend with Unicode half blocks,
// two image rows per terminal row.
type ANSIBackend struct{}

// Verify interface compliance at compile time
var _ ports.ImageBackend = (*ANSIBackend)(nil)

// NewANSIBackend creates a new ANSIBackend
func NewANSIBackend() *ANSIBackend {
	return &ANSIBackend{}
}

// Render implements ImageBackend.Render
func (b *ANSIBackend) Render(img stdimage.Image, infoLines []string) string {
	rows := rasterize(img)

	var out strings.Builder
	for i := 0; i < len(rows) || i < len(infoLines); i++ {
		switch {
		case i < len(rows) && i < len(infoLines):
			out.WriteString(rows[i] + gutter + infoLines[i])
		case i < len(rows):
			out.WriteString(rows[i])
		default:
			out.WriteString(strings.Repeat(" ", cellWidth) + gutter + infoLines[i])
		}
		out.WriteString("\n")
	}
	return out.String()
}

// rasterize samples the image into cellWidth columns of "▀" cells, with
// the foreground carrying the upper pixel and the background the lower.
func rasterize(img stdimage.Image) []string {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil
	}

	// Terminal cells are roughly twice as tall as wide; half blocks give
	// two vertical samples per cell.
	cellRows := (srcH * cellWidth) / (srcW * 2)
	if cellRows == 0 {
		cellRows = 1
	}

	rows := make([]string, 0, cellRows)
	for cy := 0; cy < cellRows; cy++ {
		var line strings.Builder
		for cx := 0; cx < cellWidth; cx++ {
			top := sample(img, bounds, cx, cy*2, cellWidth, cellRows*2)
			bottom := sample(img, bounds, cx, cy*2+1, cellWidth, cellRows*2)
			style := lipgloss.NewStyle().Foreground(top).Background(bottom)
			line.WriteString(style.Render("▀"))
		}
		rows = append(rows, line.String())
	}
	return rows
}

// sample nearest-neighbor picks the pixel for grid cell (gx, gy).
func sample(img stdimage.Image, bounds stdimage.Rectangle, gx, gy, gridW, gridH int) lipgloss.Color {
	x := bounds.Min.X + gx*bounds.Dx()/gridW
	y := bounds.Min.Y + gy*bounds.Dy()/gridH
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
