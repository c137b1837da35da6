package stylesheet

import (
	"fmt"
	"unicode"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/decls"
)

// evalExpression evaluates a #{...} runtime expression against the
// resolution environment. Bare identifiers are looked up directly;
// everything else is compiled and evaluated as a CEL expression with
// one variable declared per environment entry.
func evalExpression(expr string, env map[string]any) (any, error) {
	if isIdentifier(expr) {
		value, ok := env[expr]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnboundVariable, expr)
		}

		return normalizeValue(value), nil
	}

	var vars []*decls.VariableDecl
	for key, value := range env {
		vars = append(vars, decls.NewVariable(key, celType(value)))
	}

	celEnv, err := cel.NewEnv(
		cel.HomogeneousAggregateLiterals(),
		cel.EagerlyValidateDeclarations(true),
		cel.VariableDecls(vars...),
	)
	if err != nil {
		return nil, fmt.Errorf("building expression environment: %w", err)
	}

	ast, issues := celEnv.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compiling expression %q: %w", expr, issues.Err())
	}

	program, err := celEnv.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("building expression program: %w", err)
	}

	out, _, err := program.Eval(normalizeEnv(env))
	if err != nil {
		return nil, fmt.Errorf("evaluating expression %q: %w", expr, err)
	}

	return out.Value(), nil
}

func celType(value any) *cel.Type {
	switch value.(type) {
	case string:
		return cel.StringType
	case int, int32, int64:
		return cel.IntType
	case uint, uint32, uint64:
		return cel.UintType
	case float32, float64:
		return cel.DoubleType
	case bool:
		return cel.BoolType
	default:
		return cel.DynType
	}
}

func normalizeEnv(env map[string]any) map[string]any {
	normalized := make(map[string]any, len(env))
	for key, value := range env {
		normalized[key] = normalizeValue(value)
	}

	return normalized
}

// normalizeValue widens small integer and float types so the argument
// conversion after evaluation only sees int64/uint64/float64.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return uint64(v)
	case uint32:
		return uint64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

func isIdentifier(expr string) bool {
	for i, r := range expr {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return expr != ""
}
