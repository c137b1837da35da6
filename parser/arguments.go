package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pc "github.com/shibukawa/parsercombinator"

	tok "github.com/NduatiK/modsheet/tokenizer"
)

// parseArgument parses a single argument expression: a literal, a
// dotted member reference, a nested invocation, or an interpolation
// placeholder. A failed attempt never consumes input.
func parseArgument(pctx *pc.ParseContext[Entity], t []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
	if len(t) == 0 {
		return 0, nil, pc.ErrNotMatch
	}

	first := t[0].Val.Original

	switch first.Type {
	case tok.NUMBER:
		arg, err := numberArg(first.Value, first.Position)
		if err != nil {
			return 0, nil, err
		}

		return 1, []pc.Token[Entity]{argToken(arg, t[0])}, nil

	case tok.MINUS:
		if len(t) < 2 || t[1].Val.Original.Type != tok.NUMBER {
			return 0, nil, pc.ErrNotMatch
		}

		arg, err := numberArg("-"+t[1].Val.Original.Value, first.Position)
		if err != nil {
			return 0, nil, err
		}

		return 2, []pc.Token[Entity]{argToken(arg, t[0])}, nil

	case tok.STRING:
		value, err := UnquoteString(first.Value)
		if err != nil {
			return 0, nil, errAt(err, first.Position)
		}

		return 1, []pc.Token[Entity]{argToken(StringArg{Value: value}, t[0])}, nil

	case tok.BOOLEAN:
		return 1, []pc.Token[Entity]{argToken(BoolArg{Value: first.Value == "true"}, t[0])}, nil

	case tok.DOT:
		if len(t) < 2 || t[1].Val.Original.Type != tok.IDENT {
			return 0, nil, errAt(ErrExpectedMemberName, first.Position)
		}

		name := t[1].Val.Original.Value
		consumed := 2

		var args []Argument
		if len(t) > consumed && t[consumed].Val.Original.Type == tok.OPENED_PARENS {
			n, list, err := ParseArgumentList(pctx, t[consumed:])
			if err != nil {
				return 0, nil, err
			}

			consumed += n
			args = list
		}

		return consumed, []pc.Token[Entity]{argToken(MemberArg{Name: name, Args: args}, t[0])}, nil

	case tok.IDENT:
		if len(t) < 2 || t[1].Val.Original.Type != tok.OPENED_PARENS {
			return 0, nil, pc.ErrNotMatch
		}

		n, list, err := ParseArgumentList(pctx, t[1:])
		if err != nil {
			return 0, nil, err
		}

		return 1 + n, []pc.Token[Entity]{argToken(NestedArg{Name: first.Value, Args: list}, t[0])}, nil

	case tok.INTERP_START:
		depth := 1
		parts := make([]string, 0, 4)

		for i := 1; i < len(t); i++ {
			current := t[i].Val.Original

			switch current.Type {
			case tok.OPENED_BRACE, tok.INTERP_START:
				depth++
			case tok.CLOSED_BRACE:
				depth--
				if depth == 0 {
					arg := VariableArg{Expr: strings.Join(parts, " ")}
					return i + 1, []pc.Token[Entity]{argToken(arg, t[0])}, nil
				}
			}

			parts = append(parts, current.Value)
		}

		return 0, nil, errAt(ErrUnclosedInterpolation, first.Position)
	}

	return 0, nil, pc.ErrNotMatch
}

// ParseArgumentList consumes a parenthesized, comma-separated argument
// list, including both parens. Empty lists are allowed.
func ParseArgumentList(pctx *pc.ParseContext[Entity], t []pc.Token[Entity]) (int, []Argument, error) {
	if len(t) == 0 || t[0].Val.Original.Type != tok.OPENED_PARENS {
		return 0, nil, pc.ErrNotMatch
	}

	args := []Argument{}
	i := 1

	if i < len(t) && t[i].Val.Original.Type == tok.CLOSED_PARENS {
		return i + 1, args, nil
	}

	for {
		if i >= len(t) {
			return 0, nil, errAt(ErrExpectedArgument, t[len(t)-1].Val.Original.Position)
		}

		n, parsed, err := parseArgument(pctx, t[i:])
		if err != nil {
			if errors.Is(err, pc.ErrNotMatch) {
				return 0, nil, errAt(ErrExpectedArgument, t[i].Val.Original.Position)
			}

			return 0, nil, err
		}

		arg, ok := parsed[0].Val.NewValue.(Argument)
		if !ok {
			return 0, nil, errAt(ErrExpectedArgument, t[i].Val.Original.Position)
		}

		args = append(args, arg)
		i += n

		if i >= len(t) {
			return 0, nil, errAt(ErrExpectedCommaOrParen, t[len(t)-1].Val.Original.Position)
		}

		switch t[i].Val.Original.Type {
		case tok.COMMA:
			i++
		case tok.CLOSED_PARENS:
			return i + 1, args, nil
		default:
			return 0, nil, errAt(ErrExpectedCommaOrParen, t[i].Val.Original.Position)
		}
	}
}

// ParseInvocation parses one bare modifier invocation name(args...)
// into a generic ModifierInvocation without per-modifier validation.
func ParseInvocation(pctx *pc.ParseContext[Entity], t []pc.Token[Entity]) (int, ModifierInvocation, error) {
	if len(t) == 0 || t[0].Val.Original.Type != tok.IDENT {
		return 0, ModifierInvocation{}, pc.ErrNotMatch
	}

	name := t[0].Val.Original

	if len(t) < 2 || t[1].Val.Original.Type != tok.OPENED_PARENS {
		return 0, ModifierInvocation{}, pc.ErrNotMatch
	}

	n, args, err := ParseArgumentList(pctx, t[1:])
	if err != nil {
		return 0, ModifierInvocation{}, err
	}

	return 1 + n, ModifierInvocation{
		Name: name.Value,
		Args: args,
		Pos:  name.Position,
	}, nil
}

func numberArg(raw string, pos tok.Position) (Argument, error) {
	if strings.ContainsAny(raw, ".eE") {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errAt(ErrInvalidNumber, pos)
		}

		return NumberArg{Raw: raw, IsFloat: true, Float: value}, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errAt(ErrInvalidNumber, pos)
	}

	return NumberArg{Raw: raw, Int: value}, nil
}

func argToken(arg Argument, from pc.Token[Entity]) pc.Token[Entity] {
	return pc.Token[Entity]{
		Type: "argument",
		Pos:  from.Pos,
		Val: Entity{
			Original:  from.Val.Original,
			NewValue:  arg,
			rawTokens: from.Val.rawTokens,
		},
		Raw: arg.String(),
	}
}

func errAt(err error, pos tok.Position) error {
	return fmt.Errorf("%w at line %d, column %d", err, pos.Line, pos.Column)
}
