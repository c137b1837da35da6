package parser

import (
	"strconv"
	"strings"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/NduatiK/modsheet/annotation"
	tok "github.com/NduatiK/modsheet/tokenizer"
)

// ParseMetadata parses the {name, key: value, ...} annotation header
// that prefixes an inline modifier. It is run speculatively against a
// copy of the cursor to extract the modifier name for error
// attribution; failure degrades to empty metadata and never fails the
// surrounding parse.
//
// Recognized keys are file, line, module and source. Unknown keys are
// skipped.
func ParseMetadata(tokens []tok.Token) (string, annotation.Metadata, int, error) {
	return parseMetadataEntities(ToEntities(tokens))
}

func parseMetadataEntities(t []pc.Token[Entity]) (string, annotation.Metadata, int, error) {
	var meta annotation.Metadata

	if len(t) == 0 || t[0].Val.Original.Type != tok.OPENED_BRACE {
		return "", meta, 0, pc.ErrNotMatch
	}
	if len(t) < 2 || t[1].Val.Original.Type != tok.IDENT {
		return "", meta, 0, errAt(ErrExpectedModifierName, t[0].Val.Original.Position)
	}

	name := t[1].Val.Original.Value
	i := 2

	for {
		if i >= len(t) {
			return "", meta, 0, errAt(ErrUnclosedMetadata, t[len(t)-1].Val.Original.Position)
		}

		switch t[i].Val.Original.Type {
		case tok.CLOSED_BRACE:
			return name, meta, i + 1, nil

		case tok.COMMA:
			i++

			if i >= len(t) || t[i].Val.Original.Type != tok.IDENT {
				return "", meta, 0, errAt(ErrUnexpectedMetadataKey, t[i-1].Val.Original.Position)
			}

			key := t[i].Val.Original.Value
			i++

			if i >= len(t) || t[i].Val.Original.Type != tok.COLON {
				return "", meta, 0, errAt(ErrUnexpectedMetadataKey, t[i-1].Val.Original.Position)
			}

			i++

			value, consumed, err := metadataValue(t[i:])
			if err != nil {
				return "", meta, 0, err
			}

			i += consumed

			switch key {
			case "file":
				meta.File = value
			case "line":
				line, err := strconv.Atoi(value)
				if err != nil {
					return "", meta, 0, errAt(ErrInvalidNumber, t[i-1].Val.Original.Position)
				}
				meta.Line = line
			case "module":
				meta.Module = value
			case "source":
				meta.Source = value
			default:
				// unknown annotation keys are informational noise
			}

		default:
			return "", meta, 0, errAt(ErrUnclosedMetadata, t[i].Val.Original.Position)
		}
	}
}

// metadataValue consumes one annotation value: a string, a number, a
// boolean, or a possibly dotted identifier (module paths).
func metadataValue(t []pc.Token[Entity]) (string, int, error) {
	if len(t) == 0 {
		return "", 0, errAt(ErrUnclosedMetadata, tok.Position{})
	}

	first := t[0].Val.Original

	switch first.Type {
	case tok.STRING:
		value, err := UnquoteString(first.Value)
		if err != nil {
			return "", 0, errAt(err, first.Position)
		}

		return value, 1, nil

	case tok.NUMBER, tok.BOOLEAN:
		return first.Value, 1, nil

	case tok.IDENT:
		parts := []string{first.Value}
		i := 1

		for i+1 < len(t) &&
			t[i].Val.Original.Type == tok.DOT &&
			t[i+1].Val.Original.Type == tok.IDENT {
			parts = append(parts, t[i+1].Val.Original.Value)
			i += 2
		}

		return strings.Join(parts, "."), i, nil
	}

	return "", 0, errAt(ErrUnexpectedMetadataKey, first.Position)
}
