package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/NduatiK/modsheet"
	"github.com/NduatiK/modsheet/stylesheet"
)

// ResolveCmd represents the resolve command
type ResolveCmd struct {
	Class string   `arg:"" help:"Class name to resolve"`
	Files []string `arg:"" help:"Stylesheet files to search" optional:""`
}

// Run executes the resolve command
func (r *ResolveCmd) Run(ctx *Context) error {
	config, err := modsheet.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	paths, err := stylesheetPaths(config, r.Files)
	if err != nil {
		return err
	}

	for _, path := range paths {
		sheet, err := compileFile(config, path)
		if err != nil {
			return err
		}

		mods, err := sheet.Resolve(r.Class, config.Params)
		if err != nil {
			if errors.Is(err, stylesheet.ErrNoMatchingSelector) {
				continue
			}

			return err
		}

		if ctx.Verbose {
			color.Blue("%s matched in %s", r.Class, path)
		}

		for _, mod := range mods {
			if mod.Meta.IsZero() {
				fmt.Println(mod.String())
			} else {
				fmt.Printf("%s  # %s:%d\n", mod.String(), mod.Meta.File, mod.Meta.Line)
			}
		}

		return nil
	}

	return fmt.Errorf("%w: %q", stylesheet.ErrNoMatchingSelector, r.Class)
}
