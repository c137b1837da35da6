package parser

import (
	"fmt"
	"slices"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/NduatiK/modsheet/annotation"
	tok "github.com/NduatiK/modsheet/tokenizer"
)

// ArgKind restricts the accepted shape of one declared argument.
type ArgKind int

const (
	KindAny ArgKind = iota
	KindNumber
	KindString
	KindBool
	KindMember
	KindNested
)

// String returns the string representation of ArgKind
func (k ArgKind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindMember:
		return "member"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// ArgSpec declares one argument position of a modifier.
type ArgSpec struct {
	Name     string
	Kind     ArgKind
	Optional bool
	// Members whitelists member names for KindMember arguments.
	// Empty means any member is accepted.
	Members []string
}

// NewModifier declaratively builds a sub-parser for one modifier. The
// generated parser accepts both the inline serialized form
// {name, file: ..., line: ...}(args...) and the bare form name(args...)
// produced by stylesheet resolution, validates arity and argument
// kinds, and yields a *TypedModifier.
func NewModifier(name string, args ...ArgSpec) ModifierParser {
	minArity := 0
	for _, spec := range args {
		if !spec.Optional {
			minArity++
		}
	}

	return &declaredModifier{
		name:     name,
		specs:    args,
		minArity: minArity,
	}
}

type declaredModifier struct {
	name     string
	specs    []ArgSpec
	minArity int
}

func (d *declaredModifier) Name() string { return d.name }

func (d *declaredModifier) Parse(pctx *pc.ParseContext[Entity], t []pc.Token[Entity]) (int, ModifierValue, error) {
	if len(t) == 0 {
		return 0, nil, pc.ErrNotMatch
	}

	var (
		meta     annotation.Metadata
		consumed int
	)

	switch t[0].Val.Original.Type {
	case tok.OPENED_BRACE:
		name, parsed, n, err := parseMetadataEntities(t)
		if err != nil {
			return 0, nil, pc.ErrNotMatch
		}
		if name != d.name {
			return 0, nil, pc.ErrNotMatch
		}

		meta = parsed
		consumed = n

	case tok.IDENT:
		if t[0].Val.Original.Value != d.name {
			return 0, nil, pc.ErrNotMatch
		}

		consumed = 1

	default:
		return 0, nil, pc.ErrNotMatch
	}

	// Name matched; anything wrong from here on is structural.
	if consumed >= len(t) || t[consumed].Val.Original.Type != tok.OPENED_PARENS {
		pos := t[len(t)-1].Val.Original.Position
		if consumed < len(t) {
			pos = t[consumed].Val.Original.Position
		}

		return 0, nil, &ArgumentError{Name: d.name, Meta: meta, Cause: errAt(ErrExpectedArgumentList, pos)}
	}

	n, args, err := ParseArgumentList(pctx, t[consumed:])
	if err != nil {
		return 0, nil, &ArgumentError{Name: d.name, Meta: meta, Cause: err}
	}

	consumed += n

	if err := d.validate(args); err != nil {
		return 0, nil, &ArgumentError{Name: d.name, Meta: meta, Cause: err}
	}

	return consumed, &TypedModifier{Name: d.name, Args: args, Meta: meta}, nil
}

func (d *declaredModifier) validate(args []Argument) error {
	if len(args) < d.minArity || len(args) > len(d.specs) {
		return fmt.Errorf("%w: %s takes %d-%d, got %d",
			ErrInvalidArity, d.name, d.minArity, len(d.specs), len(args))
	}

	for i, arg := range args {
		spec := d.specs[i]

		if err := checkKind(spec, arg); err != nil {
			return fmt.Errorf("%w: argument %s of %s: %v", ErrInvalidArgument, spec.Name, d.name, err)
		}
	}

	return nil
}

func checkKind(spec ArgSpec, arg Argument) error {
	// Unresolved interpolations are checked after substitution, not here.
	if _, ok := arg.(VariableArg); ok {
		return nil
	}

	switch spec.Kind {
	case KindAny:
		return nil

	case KindNumber:
		if _, ok := arg.(NumberArg); !ok {
			return fmt.Errorf("expected number, got %s", arg)
		}

	case KindString:
		if _, ok := arg.(StringArg); !ok {
			return fmt.Errorf("expected string, got %s", arg)
		}

	case KindBool:
		if _, ok := arg.(BoolArg); !ok {
			return fmt.Errorf("expected boolean, got %s", arg)
		}

	case KindMember:
		member, ok := arg.(MemberArg)
		if !ok {
			return fmt.Errorf("expected member reference, got %s", arg)
		}
		if len(spec.Members) > 0 && !slices.Contains(spec.Members, member.Name) {
			return fmt.Errorf("unsupported member .%s", member.Name)
		}

	case KindNested:
		if _, ok := arg.(NestedArg); !ok {
			return fmt.Errorf("expected nested invocation, got %s", arg)
		}
	}

	return nil
}
