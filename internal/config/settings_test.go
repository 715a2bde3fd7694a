package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_UnmarshalArray(t *testing.T) {
	var sa StringArray
	require.NoError(t, json.Unmarshal([]byte(`["a", "b", "c"]`), &sa))
	assert.Equal(t, StringArray{"a", "b", "c"}, sa)
}

func TestStringArray_UnmarshalCommaSeparated(t *testing.T) {
	var sa StringArray
	require.NoError(t, json.Unmarshal([]byte(`"a, b ,c"`), &sa))
	assert.Equal(t, StringArray{"a", "b", "c"}, sa)
}

func TestStringArray_UnmarshalEmptyString(t *testing.T) {
	var sa StringArray
	require.NoError(t, json.Unmarshal([]byte(`""`), &sa))
	assert.Empty(t, sa)
}

func TestStringArray_UnmarshalInvalidType(t *testing.T) {
	var sa StringArray
	assert.Error(t, json.Unmarshal([]byte(`42`), &sa))
}

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".gitfetch")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `{
		"ascii_language": "go",
		"authors": 5,
		"no_merges": true,
		"exclude": "vendor, dist",
		"disable_fields": ["size", "license"]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "go", settings.AsciiLanguage)
	require.NotNil(t, settings.Authors)
	assert.Equal(t, 5, *settings.Authors)
	require.NotNil(t, settings.NoMerges)
	assert.True(t, *settings.NoMerges)
	assert.Equal(t, StringArray{"vendor", "dist"}, settings.Exclude)
	assert.Equal(t, StringArray{"size", "license"}, settings.DisableFields)
	assert.Nil(t, settings.Debug)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".gitfetch")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}
