package theme

import "github.com/charmbracelet/lipgloss"

// blockColors is the strip of background colors printed under the info
// fields, in ANSI order.
var blockColors = []Color{"0", "1", "2", "3", "4", "5", "6", "7"}

// LabelStyle styles an info-field label with the logo's primary color.
func LabelStyle(color Color, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color).Bold(bold)
}

// ColorStyle styles logo text in one palette color.
func ColorStyle(color Color, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color).Bold(bold)
}

// ErrorStyle styles fatal error messages printed to stderr.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// ColorBlocks renders the row of background color blocks.
func ColorBlocks() string {
	var out string
	for _, c := range blockColors {
		out += lipgloss.NewStyle().Background(c).Render("   ")
	}
	return out
}
