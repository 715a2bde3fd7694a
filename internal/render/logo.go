package render

import (
	"regexp"
	"strings"

	"gitfetch/internal/theme"
)

// colorToken switches the active palette color inside an art file, e.g.
// {0} or {1}. Tokens never count towards the display width.
var colorToken = regexp.MustCompile(`\{(\d+)\}`)

// LogoBlock is a fixed block of pre-colored art lines. Every line is
// padded to Width, the widest line's visible length.
type LogoBlock struct {
	Lines []string
	Width int
}

// BuildLogo colors an art block with the palette and pads every line to
// the block width. The active color persists until the next token.
func BuildLogo(art string, palette []theme.Color, bold bool) LogoBlock {
	raw := strings.Split(strings.TrimRight(art, "\n"), "\n")

	width := 0
	for _, line := range raw {
		if w := len([]rune(colorToken.ReplaceAllString(line, ""))); w > width {
			width = w
		}
	}

	current := 0
	lines := make([]string, len(raw))
	for i, line := range raw {
		var b strings.Builder
		visible := 0
		rest := line
		for {
			loc := colorToken.FindStringSubmatchIndex(rest)
			if loc == nil {
				break
			}
			if text := rest[:loc[0]]; text != "" {
				b.WriteString(colorize(text, palette, current, bold))
				visible += len([]rune(text))
			}
			current = tokenIndex(rest[loc[2]:loc[3]], len(palette))
			rest = rest[loc[1]:]
		}
		if rest != "" {
			b.WriteString(colorize(rest, palette, current, bold))
			visible += len([]rune(rest))
		}
		if visible < width {
			b.WriteString(strings.Repeat(" ", width-visible))
		}
		lines[i] = b.String()
	}

	return LogoBlock{Lines: lines, Width: width}
}

func colorize(text string, palette []theme.Color, index int, bold bool) string {
	color := theme.ColorWhite
	if index < len(palette) {
		color = palette[index]
	}
	return theme.ColorStyle(color, bold).Render(text)
}

// tokenIndex parses the digits of a color token, clamping out-of-palette
// references to the primary color.
func tokenIndex(digits string, paletteLen int) int {
	index := 0
	for _, d := range digits {
		index = index*10 + int(d-'0')
	}
	if index >= paletteLen {
		return 0
	}
	return index
}
