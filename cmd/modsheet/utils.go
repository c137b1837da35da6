package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NduatiK/modsheet"
	"github.com/NduatiK/modsheet/annotation"
	"github.com/NduatiK/modsheet/stylesheet"
)

// stylesheetPaths returns the explicitly listed files, or the ones
// matched by the configuration when none are given.
func stylesheetPaths(config *modsheet.Config, files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}

	return config.StylesheetFiles()
}

// compileFile compiles one stylesheet source file with the project's
// annotation settings.
func compileFile(config *modsheet.Config, path string) (*stylesheet.Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	sheet, err := stylesheet.Compile(string(data),
		stylesheet.WithAnnotations(annotation.Config{Enabled: config.Annotations.Enabled}),
		stylesheet.WithSource(filepath.Base(path), config.Module),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sheet, nil
}
