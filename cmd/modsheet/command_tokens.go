package main

import (
	"fmt"
	"os"

	"github.com/NduatiK/modsheet/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	File string `arg:"" help:"Stylesheet file to tokenize"`
	All  bool   `help:"Include whitespace and comment tokens"`
}

// Run executes the tokens command
func (t *TokensCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(t.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", t.File, err)
	}

	tz := tokenizer.NewStyleTokenizer(string(data), tokenizer.TokenizerOptions{
		SkipWhitespace: !t.All,
		SkipComments:   !t.All,
	})

	for token, err := range tz.Tokens() {
		if err != nil {
			return err
		}

		fmt.Printf("%3d:%-3d %s\n", token.Position.Line, token.Position.Column, token)

		if token.Type == tokenizer.EOF {
			break
		}
	}

	return nil
}
