package stylesheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NduatiK/modsheet/parser"
)

// Resolve matches a class name against the compiled patterns and
// returns the clause's modifier sequence with the bound variable and
// all #{...} interpolations substituted. Literal selectors win over
// parametric ones; parametric patterns are tried in declaration order.
//
// params supplies values for runtime expressions inside interpolations;
// the bound pattern variable is added to them automatically.
func (s *Stylesheet) Resolve(className string, params map[string]any) ([]parser.ModifierInvocation, error) {
	matched, binding, ok := s.match(className)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoMatchingSelector, className)
	}

	env := make(map[string]any, len(params)+1)
	for key, value := range params {
		env[key] = value
	}
	if matched.pattern.IsParametric() {
		env[matched.pattern.Variable] = binding
	}

	resolved := make([]parser.ModifierInvocation, 0, len(matched.mods))

	for _, inv := range matched.mods {
		args, err := substituteArgs(inv.Args, matched.pattern.Variable, binding, env)
		if err != nil {
			return nil, fmt.Errorf("resolving %s for class %q: %w", inv.Name, className, err)
		}

		resolved = append(resolved, parser.ModifierInvocation{
			Name: inv.Name,
			Args: args,
			Meta: inv.Meta,
			Pos:  inv.Pos,
		})
	}

	return resolved, nil
}

func (s *Stylesheet) match(className string) (*clause, string, bool) {
	if entry, ok := s.literals[className]; ok {
		return entry, "", true
	}

	for _, entry := range s.parametric {
		if binding, ok := entry.pattern.Match(className); ok {
			return entry, binding, true
		}
	}

	return nil, "", false
}

func substituteArgs(args []parser.Argument, variable string, binding string, env map[string]any) ([]parser.Argument, error) {
	result := make([]parser.Argument, len(args))

	for i, arg := range args {
		substituted, err := substituteArg(arg, variable, binding, env)
		if err != nil {
			return nil, err
		}

		result[i] = substituted
	}

	return result, nil
}

func substituteArg(arg parser.Argument, variable string, binding string, env map[string]any) (parser.Argument, error) {
	switch a := arg.(type) {
	case parser.VariableArg:
		expr := strings.TrimSpace(a.Expr)

		// The common case binds the pattern variable directly and
		// re-reads the matched remainder as a literal.
		if variable != "" && expr == variable {
			return literalArgument(binding), nil
		}

		value, err := evalExpression(expr, env)
		if err != nil {
			return nil, err
		}

		return argumentFromValue(value)

	case parser.MemberArg:
		if a.Args == nil {
			return a, nil
		}

		nested, err := substituteArgs(a.Args, variable, binding, env)
		if err != nil {
			return nil, err
		}

		return parser.MemberArg{Name: a.Name, Args: nested}, nil

	case parser.NestedArg:
		nested, err := substituteArgs(a.Args, variable, binding, env)
		if err != nil {
			return nil, err
		}

		return parser.NestedArg{Name: a.Name, Args: nested}, nil

	default:
		return arg, nil
	}
}

// literalArgument re-reads a bound pattern remainder the way the
// tokenizer would: numbers and booleans become typed literals, anything
// else stays a string.
func literalArgument(text string) parser.Argument {
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return parser.NumberArg{Raw: text, Int: value}
	}

	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return parser.NumberArg{Raw: text, IsFloat: true, Float: value}
	}

	if text == "true" || text == "false" {
		return parser.BoolArg{Value: text == "true"}
	}

	return parser.StringArg{Value: text}
}

func argumentFromValue(value any) (parser.Argument, error) {
	switch v := value.(type) {
	case int64:
		return parser.NumberArg{Raw: strconv.FormatInt(v, 10), Int: v}, nil
	case uint64:
		return parser.NumberArg{Raw: strconv.FormatUint(v, 10), Int: int64(v)}, nil
	case float64:
		return parser.NumberArg{Raw: strconv.FormatFloat(v, 'g', -1, 64), IsFloat: true, Float: v}, nil
	case bool:
		return parser.BoolArg{Value: v}, nil
	case string:
		return parser.StringArg{Value: v}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInterpType, value)
	}
}
