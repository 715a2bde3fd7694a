// Package assets holds the embedded logo art and the closed
// language -> art/palette lookup table.
package assets

import (
	"embed"
	"sort"
	"strings"

	"gitfetch/internal/theme"
)

//go:embed art/*.ascii
var artFS embed.FS

// Logo is a raw art block plus its default color palette. Art files use
// {n} tokens to switch to the nth palette color.
type Logo struct {
	Art     string
	Palette []theme.Color
}

type entry struct {
	file    string
	palette []theme.Color
}

// registry maps normalized language names to their art and palette.
var registry = map[string]entry{
	"assembly":   {"assembly.ascii", []theme.Color{"6"}},
	"c":          {"c.ascii", []theme.Color{"6", "4"}},
	"c++":        {"cpp.ascii", []theme.Color{"6", "4"}},
	"c#":         {"csharp.ascii", []theme.Color{"4", "5"}},
	"css":        {"css.ascii", []theme.Color{"4", "7"}},
	"go":         {"go.ascii", []theme.Color{"14", "7"}},
	"haskell":    {"haskell.ascii", []theme.Color{"6", "5", "4"}},
	"html":       {"html.ascii", []theme.Color{"1", "7"}},
	"java":       {"java.ascii", []theme.Color{"6", "1"}},
	"javascript": {"javascript.ascii", []theme.Color{"3"}},
	"kotlin":     {"kotlin.ascii", []theme.Color{"4", "3", "5"}},
	"lua":        {"lua.ascii", []theme.Color{"4", "7"}},
	"markdown":   {"markdown.ascii", []theme.Color{"7", "1"}},
	"php":        {"php.ascii", []theme.Color{"5", "7"}},
	"python":     {"python.ascii", []theme.Color{"4", "3"}},
	"ruby":       {"ruby.ascii", []theme.Color{"5"}},
	"rust":       {"rust.ascii", []theme.Color{"7", "1"}},
	"shell":      {"shell.ascii", []theme.Color{"2"}},
	"swift":      {"swift.ascii", []theme.Color{"1", "3"}},
	"typescript": {"typescript.ascii", []theme.Color{"6"}},
	"unknown":    {"unknown.ascii", []theme.Color{"7"}},
}

// aliases fold counter-reported names onto registry keys.
var aliases = map[string]string{
	"bash":         "shell",
	"bourne shell": "shell",
	"cpp":          "c++",
	"csharp":       "c#",
	"zsh":          "shell",
}

// Lookup returns the logo for a language, falling back to the unknown
// placeholder art.
func Lookup(language string) Logo {
	e, ok := registry[normalize(language)]
	if !ok {
		e = registry["unknown"]
	}
	raw, err := artFS.ReadFile("art/" + e.file)
	if err != nil {
		// Embedded files only go missing when the registry is wrong
		panic("missing embedded art: " + e.file)
	}
	return Logo{Art: string(raw), Palette: e.palette}
}

// IsSupported reports whether a language has dedicated art.
func IsSupported(language string) bool {
	_, ok := registry[normalize(language)]
	return ok
}

// Supported lists every language with dedicated art, sorted.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(language string) string {
	name := strings.ToLower(strings.TrimSpace(language))
	if target, ok := aliases[name]; ok {
		return target
	}
	return name
}
