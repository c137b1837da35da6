package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/NduatiK/modsheet"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Files []string `arg:"" help:"Specific stylesheet files to validate" optional:""`
}

// Run executes the validate command
func (v *ValidateCmd) Run(ctx *Context) error {
	config, err := modsheet.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	paths, err := stylesheetPaths(config, v.Files)
	if err != nil {
		return err
	}

	failed := 0

	for _, path := range paths {
		if ctx.Verbose {
			color.Blue("Compiling %s", path)
		}

		if _, err := compileFile(config, path); err != nil {
			failed++

			color.Red("ERROR: %v", err)

			continue
		}

		if ctx.Verbose {
			color.Green("%s compiled cleanly", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d stylesheets failed to compile", failed, len(paths))
	}

	if !ctx.Quiet {
		color.Green("Validation completed successfully")
	}

	return nil
}
