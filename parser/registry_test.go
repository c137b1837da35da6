package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	pc "github.com/shibukawa/parsercombinator"

	"github.com/NduatiK/modsheet/annotation"
)

func TestRegistryParseInline(t *testing.T) {
	registry := NewRegistry(
		NewModifier("buttonStyle", ArgSpec{Name: "style", Kind: KindMember}),
	)

	value, err := registry.Parse(`{buttonStyle, file: "a.ex", line: 3}(.bordered)`)
	assert.NoError(t, err)

	modifier, ok := value.(*TypedModifier)
	assert.True(t, ok)
	assert.Equal(t, "buttonStyle", modifier.ModifierName())
	assert.Equal(t, []Argument{MemberArg{Name: "bordered"}}, modifier.Args)
	assert.Equal(t, annotation.Metadata{File: "a.ex", Line: 3}, modifier.Meta)
}

func TestRegistryUnknownModifier(t *testing.T) {
	registry := NewRegistry(
		NewModifier("color", ArgSpec{Name: "color", Kind: KindMember}),
	)

	_, err := registry.Parse(`{unknownMod, line: 1}()`)

	var unknown *UnknownModifierError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "unknownMod", unknown.Name)
	assert.Equal(t, 1, unknown.Meta.Line)
	assert.Contains(t, err.Error(), "unknown modifier unknownMod")
}

func TestRegistryDeclarationOrderWins(t *testing.T) {
	first := taggedParser{name: "size", tag: "first"}
	second := taggedParser{name: "size", tag: "second"}

	value, err := NewRegistry(first, second).Parse(`{size}(4)`)
	assert.NoError(t, err)
	assert.Equal(t, "first", value.(taggedValue).tag)

	// Reversing the declaration reverses the winner.
	value, err = NewRegistry(second, first).Parse(`{size}(4)`)
	assert.NoError(t, err)
	assert.Equal(t, "second", value.(taggedValue).tag)
}

// taggedParser matches a modifier name and records which declaration
// produced the value, for declaration-order tests.
type taggedParser struct {
	name string
	tag  string
}

type taggedValue struct {
	name string
	tag  string
}

func (v taggedValue) ModifierName() string { return v.name }

func (p taggedParser) Name() string { return p.name }

func (p taggedParser) Parse(pctx *pc.ParseContext[Entity], t []pc.Token[Entity]) (int, ModifierValue, error) {
	name, meta, consumed, err := parseMetadataEntities(t)
	if err != nil || name != p.name {
		return 0, nil, pc.ErrNotMatch
	}

	n, _, err := ParseArgumentList(pctx, t[consumed:])
	if err != nil {
		return 0, nil, &ArgumentError{Name: p.name, Meta: meta, Cause: err}
	}

	return consumed + n, taggedValue{name: p.name, tag: p.tag}, nil
}

func TestStructuralErrorBeatsUnknownModifier(t *testing.T) {
	registry := NewRegistry(
		// Matches the name but rejects the boolean argument.
		NewModifier("foo", ArgSpec{Name: "style", Kind: KindMember}),
		// Never matches the name, fails generically.
		NewModifier("bar", ArgSpec{Name: "value", Kind: KindNumber}),
	)

	_, err := registry.Parse(`{foo, line: 8}(true)`)

	var argErr *ArgumentError
	assert.True(t, errors.As(err, &argErr))
	assert.Equal(t, "foo", argErr.Name)
	assert.Equal(t, 8, argErr.Meta.Line)
	assert.IsError(t, err, ErrInvalidArgument)
}

func TestLaterStructuralErrorTakesPrecedence(t *testing.T) {
	shared := "style"
	registry := NewRegistry(
		NewModifier(shared, ArgSpec{Name: "a", Kind: KindMember}),
		NewModifier(shared, ArgSpec{Name: "a", Kind: KindString}),
	)

	_, err := registry.Parse(`{style}(42)`)

	var argErr *ArgumentError
	assert.True(t, errors.As(err, &argErr))
	// Both are structural; the second sub-parser's error is raised.
	assert.Contains(t, argErr.Cause.Error(), "expected string")
}

func TestRegistryExactlyOneOutcome(t *testing.T) {
	registry := NewRegistry(
		NewModifier("color", ArgSpec{Name: "color", Kind: KindMember}),
		NewModifier("height", ArgSpec{Name: "value", Kind: KindNumber}),
	)

	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"first parser", `{color}(.red)`, false},
		{"second parser", `{height}(42)`, false},
		{"bare form", `height(42)`, false},
		{"unknown", `{shadow}(4)`, true},
		{"structural", `{height}(.red)`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := registry.Parse(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, value)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, value)
			}
		})
	}
}

func TestRegistryMetadataFailureDegradesGracefully(t *testing.T) {
	registry := NewRegistry(
		NewModifier("color", ArgSpec{Name: "color", Kind: KindMember}),
	)

	// Bare invocation has no metadata block at all; parse still works.
	value, err := registry.Parse(`color(.red)`)
	assert.NoError(t, err)

	modifier := value.(*TypedModifier)
	assert.True(t, modifier.Meta.IsZero())
}

func TestModifierArityValidation(t *testing.T) {
	parser := NewModifier("padding",
		ArgSpec{Name: "length", Kind: KindNumber},
		ArgSpec{Name: "edge", Kind: KindMember, Optional: true},
	)
	registry := NewRegistry(parser)

	_, err := registry.Parse(`{padding}(1, .top, 3)`)
	assert.IsError(t, err, ErrInvalidArity)

	_, err = registry.Parse(`{padding}()`)
	assert.IsError(t, err, ErrInvalidArity)

	value, err := registry.Parse(`{padding}(4)`)
	assert.NoError(t, err)
	assert.Equal(t, "padding", value.ModifierName())

	value, err = registry.Parse(`{padding}(4, .top)`)
	assert.NoError(t, err)
	assert.Equal(t, "padding", value.ModifierName())
}

func TestMemberWhitelist(t *testing.T) {
	registry := NewRegistry(
		NewModifier("color", ArgSpec{Name: "color", Kind: KindMember, Members: []string{"red", "green", "blue"}}),
	)

	_, err := registry.Parse(`{color}(.magenta)`)
	assert.IsError(t, err, ErrInvalidArgument)

	value, err := registry.Parse(`{color}(.green)`)
	assert.NoError(t, err)
	assert.Equal(t, "color", value.ModifierName())
}

func TestCustomModifierParser(t *testing.T) {
	registry := NewRegistry(rotationParser{})

	value, err := registry.Parse(`{rotate}(90)`)
	assert.NoError(t, err)

	rotation, ok := value.(Rotation)
	assert.True(t, ok)
	assert.Equal(t, int64(90), rotation.Degrees)
}

// Rotation is a custom typed modifier used by tests.
type Rotation struct {
	Degrees int64
}

func (Rotation) ModifierName() string { return "rotate" }

type rotationParser struct{}

func (rotationParser) Name() string { return "rotate" }

func (rotationParser) Parse(pctx *pc.ParseContext[Entity], t []pc.Token[Entity]) (int, ModifierValue, error) {
	name, meta, consumed, err := parseMetadataEntities(t)
	if err != nil || name != "rotate" {
		return 0, nil, pc.ErrNotMatch
	}

	n, args, err := ParseArgumentList(pctx, t[consumed:])
	if err != nil {
		return 0, nil, &ArgumentError{Name: "rotate", Meta: meta, Cause: err}
	}

	if len(args) != 1 {
		return 0, nil, &ArgumentError{Name: "rotate", Meta: meta, Cause: ErrInvalidArity}
	}

	number, ok := args[0].(NumberArg)
	if !ok || number.IsFloat {
		return 0, nil, &ArgumentError{Name: "rotate", Meta: meta, Cause: ErrInvalidArgument}
	}

	return consumed + n, Rotation{Degrees: number.Int}, nil
}
