package modsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "modsheet.yaml"))
	assert.NoError(t, err)

	assert.Equal(t, ".", config.InputDir)
	assert.Equal(t, []string{"*.styles"}, config.Stylesheets)
	assert.False(t, config.Annotations.Enabled)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modsheet.yaml")

	yaml := `
input_dir: styles
stylesheets:
  - "app.styles"
  - "components/*.styles"
module: MyApp.Styles
annotations:
  enabled: true
params:
  base: 4
`
	assert.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	config, err := LoadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, "styles", config.InputDir)
	assert.Equal(t, []string{"app.styles", "components/*.styles"}, config.Stylesheets)
	assert.Equal(t, "MyApp.Styles", config.Module)
	assert.True(t, config.Annotations.Enabled)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modsheet.yaml")

	assert.NoError(t, os.WriteFile(path, []byte("no_such_field: true\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBlankPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modsheet.yaml")

	assert.NoError(t, os.WriteFile(path, []byte("stylesheets:\n  - \"  \"\n"), 0o644))

	_, err := LoadConfig(path)
	assert.IsError(t, err, ErrConfigValidation)
}

func TestStylesheetFiles(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "app.styles"), []byte(""), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "buttons.styles"), []byte(""), 0o644))

	config := &Config{InputDir: dir, Stylesheets: []string{"*.styles"}}

	files, err := config.StylesheetFiles()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(files))
}

func TestStylesheetFilesNoMatches(t *testing.T) {
	config := &Config{InputDir: t.TempDir(), Stylesheets: []string{"*.styles"}}

	_, err := config.StylesheetFiles()
	assert.IsError(t, err, ErrNoStylesheets)
}
