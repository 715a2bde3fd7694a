package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStyle_CarriesMessageText(t *testing.T) {
	out := ErrorStyle().Render("Error: boom")
	assert.Contains(t, out, "Error: boom")
}

func TestAnsiColor(t *testing.T) {
	c, ok := AnsiColor("14")
	assert.True(t, ok)
	assert.Equal(t, Color("14"), c)

	_, ok = AnsiColor("16")
	assert.False(t, ok)
	_, ok = AnsiColor("red")
	assert.False(t, ok)
}

func TestOverridePalette(t *testing.T) {
	palette := []Color{"6", "4"}

	out := OverridePalette(palette, []string{"1"})
	assert.Equal(t, []Color{"1", "4"}, out)

	// Invalid numbers leave the default, extras past the palette are dropped
	out = OverridePalette(palette, []string{"99", "3", "5"})
	assert.Equal(t, []Color{"6", "3"}, out)

	// Input palette is never mutated
	assert.Equal(t, []Color{"6", "4"}, palette)
}
