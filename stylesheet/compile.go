package stylesheet

import (
	"errors"
	"fmt"
	"strings"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/NduatiK/modsheet/annotation"
	"github.com/NduatiK/modsheet/parser"
	tok "github.com/NduatiK/modsheet/tokenizer"
)

// CompileOption adjusts stylesheet compilation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	ann    annotation.Config
	file   string
	module string
}

// WithAnnotations enables source metadata capture on compiled
// invocations.
func WithAnnotations(cfg annotation.Config) CompileOption {
	return func(c *compileConfig) {
		c.ann = cfg
	}
}

// WithSource names the stylesheet's file and owning module for
// diagnostics.
func WithSource(file string, module string) CompileOption {
	return func(c *compileConfig) {
		c.file = file
		c.module = module
	}
}

type clause struct {
	pattern SelectorPattern
	mods    []parser.ModifierInvocation
}

// Stylesheet is a compiled mapping from selector patterns to ordered
// modifier sequences. It is immutable after Compile and safe for
// concurrent use.
type Stylesheet struct {
	literals   map[string]*clause
	parametric []*clause
	patterns   []SelectorPattern
}

// Patterns returns the compiled selector patterns in declaration order.
func (s *Stylesheet) Patterns() []SelectorPattern {
	result := make([]SelectorPattern, len(s.patterns))
	copy(result, s.patterns)

	return result
}

// Compile parses stylesheet source into a Stylesheet. Compilation is
// all-or-nothing: the first failing clause aborts with a ClauseError
// naming its selector, and no partial stylesheet is exposed. Duplicate
// literal selectors are rejected rather than silently shadowed.
func Compile(source string, opts ...CompileOption) (*Stylesheet, error) {
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	tokens, err := tok.NewStyleTokenizer(source, tok.TokenizerOptions{
		SkipWhitespace: true,
		SkipComments:   true,
	}).AllTokens()
	if err != nil {
		return nil, err
	}

	sourceLines := strings.Split(source, "\n")
	entities := parser.ToEntities(tokens)
	pctx := pc.NewParseContext[parser.Entity]()

	sheet := &Stylesheet{
		literals: map[string]*clause{},
	}

	i := 0
	for i < len(entities) {
		pattern, n, err := parseSelector(entities[i:])
		if err != nil {
			return nil, err
		}

		i += n

		mods := []parser.ModifierInvocation{}

		for {
			if i >= len(entities) {
				return nil, &ClauseError{Selector: pattern, Cause: errAt(ErrExpectedEnd, lastPos(entities))}
			}

			if entities[i].Val.Original.Type == tok.END {
				i++
				break
			}

			n, inv, err := parser.ParseInvocation(pctx, entities[i:])
			if err != nil {
				cause := err
				if errors.Is(cause, pc.ErrNotMatch) {
					cause = errAt(ErrExpectedEnd, entities[i].Val.Original.Position)
				}

				return nil, &ClauseError{Selector: pattern, Cause: cause}
			}

			inv.Meta = annotation.Annotate(cfg.ann, cfg.file, cfg.module, inv.Pos.Line, sourceLines)
			mods = append(mods, inv)
			i += n
		}

		entry := &clause{pattern: pattern, mods: mods}

		if pattern.IsParametric() {
			sheet.parametric = append(sheet.parametric, entry)
		} else {
			if _, exists := sheet.literals[pattern.Prefix]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSelector, pattern.Prefix)
			}
			sheet.literals[pattern.Prefix] = entry
		}

		sheet.patterns = append(sheet.patterns, pattern)
	}

	return sheet, nil
}

// parseSelector parses `"literal"` or `"prefix" <> binding` followed by
// the do keyword.
func parseSelector(t []pc.Token[parser.Entity]) (SelectorPattern, int, error) {
	var pattern SelectorPattern

	if len(t) == 0 || t[0].Val.Original.Type != tok.STRING {
		pos := lastPos(t)
		if len(t) > 0 {
			pos = t[0].Val.Original.Position
		}

		return pattern, 0, errAt(ErrExpectedSelector, pos)
	}

	prefix, err := parser.UnquoteString(t[0].Val.Original.Value)
	if err != nil {
		return pattern, 0, errAt(err, t[0].Val.Original.Position)
	}

	pattern.Prefix = prefix
	i := 1

	if i < len(t) && t[i].Val.Original.Type == tok.CONCAT {
		i++

		if i >= len(t) || t[i].Val.Original.Type != tok.IDENT {
			return pattern, 0, errAt(ErrExpectedBinding, t[i-1].Val.Original.Position)
		}

		pattern.Variable = t[i].Val.Original.Value
		i++
	}

	if i >= len(t) || t[i].Val.Original.Type != tok.DO {
		pos := lastPos(t)
		if i < len(t) {
			pos = t[i].Val.Original.Position
		}

		return pattern, 0, errAt(ErrExpectedDo, pos)
	}

	return pattern, i + 1, nil
}

func errAt(err error, pos tok.Position) error {
	return fmt.Errorf("%w at line %d, column %d", err, pos.Line, pos.Column)
}

func lastPos(t []pc.Token[parser.Entity]) tok.Position {
	if len(t) == 0 {
		return tok.Position{}
	}

	return t[len(t)-1].Val.Original.Position
}
