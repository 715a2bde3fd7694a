package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// UI semantic colors
const (
	ColorError Color = "196" // Bright red
	ColorWhite Color = "7"   // Fallback logo/label color
)

// ansiNames maps the user-facing 0-15 color numbers to the basic ANSI
// palette. Overrides outside this range are rejected.
var ansiNames = map[string]Color{
	"0":  "0",  // black
	"1":  "1",  // red
	"2":  "2",  // green
	"3":  "3",  // yellow
	"4":  "4",  // blue
	"5":  "5",  // magenta
	"6":  "6",  // cyan
	"7":  "7",  // white
	"8":  "8",  // bright black
	"9":  "9",  // bright red
	"10": "10", // bright green
	"11": "11", // bright yellow
	"12": "12", // bright blue
	"13": "13", // bright magenta
	"14": "14", // bright cyan
	"15": "15", // bright white
}

// AnsiColor resolves a 0-15 color number to a terminal color.
func AnsiColor(num string) (Color, bool) {
	c, ok := ansiNames[num]
	return c, ok
}

// OverridePalette replaces palette entries by index with user-supplied
// ANSI color numbers. Invalid numbers leave the default in place.
func OverridePalette(palette []Color, overrides []string) []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	for i, num := range overrides {
		if i >= len(out) {
			break
		}
		if c, ok := AnsiColor(num); ok {
			out[i] = c
		}
	}
	return out
}
