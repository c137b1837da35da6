package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NduatiK/modsheet/annotation"
	tok "github.com/NduatiK/modsheet/tokenizer"
)

// Argument is one typed argument expression of a modifier invocation.
type Argument interface {
	fmt.Stringer
	argument()
}

// NumberArg is a numeric literal argument. Raw preserves the literal
// text so serialization round-trips.
type NumberArg struct {
	Raw     string
	IsFloat bool
	Int     int64
	Float   float64
}

func (NumberArg) argument() {}

func (a NumberArg) String() string { return a.Raw }

// StringArg is a string literal argument. Value is unquoted.
type StringArg struct {
	Value string
}

func (StringArg) argument() {}

func (a StringArg) String() string { return strconv.Quote(a.Value) }

// BoolArg is a boolean literal argument.
type BoolArg struct {
	Value bool
}

func (BoolArg) argument() {}

func (a BoolArg) String() string { return strconv.FormatBool(a.Value) }

// MemberArg is a dotted enum-like member reference such as .red, or a
// member call such as .system(.title).
type MemberArg struct {
	Name string
	Args []Argument
}

func (MemberArg) argument() {}

func (a MemberArg) String() string {
	if a.Args == nil {
		return "." + a.Name
	}
	return "." + a.Name + "(" + formatArgs(a.Args) + ")"
}

// NestedArg is a nested modifier-shaped invocation used as an argument,
// such as font(.body).
type NestedArg struct {
	Name string
	Args []Argument
}

func (NestedArg) argument() {}

func (a NestedArg) String() string { return a.Name + "(" + formatArgs(a.Args) + ")" }

// VariableArg is an unresolved #{...} interpolation placeholder. Expr is
// either a bound pattern variable name or a runtime expression.
type VariableArg struct {
	Expr string
}

func (VariableArg) argument() {}

func (a VariableArg) String() string { return "#{" + a.Expr + "}" }

func formatArgs(args []Argument) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}

	return strings.Join(parts, ", ")
}

// ModifierInvocation is a named modifier with its ordered argument list,
// before any per-modifier validation.
type ModifierInvocation struct {
	Name string
	Args []Argument
	Meta annotation.Metadata
	Pos  tok.Position
}

// String renders the canonical serialized form, without metadata.
func (m ModifierInvocation) String() string {
	return m.Name + "(" + formatArgs(m.Args) + ")"
}

// ModifierValue is a typed, validated modifier produced by a registry
// sub-parser.
type ModifierValue interface {
	ModifierName() string
}

// TypedModifier is the value produced by declaratively built
// sub-parsers. Custom sub-parsers are free to return their own types.
type TypedModifier struct {
	Name string
	Args []Argument
	Meta annotation.Metadata
}

func (m *TypedModifier) ModifierName() string { return m.Name }

func (m *TypedModifier) String() string { return m.Name + "(" + formatArgs(m.Args) + ")" }

// UnquoteString strips the surrounding quotes of a STRING token value
// and resolves backslash escapes.
func UnquoteString(raw string) (string, error) {
	value, err := strconv.Unquote(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedString, raw)
	}

	return value, nil
}
