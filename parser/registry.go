package parser

import (
	"errors"

	pc "github.com/shibukawa/parsercombinator"

	tok "github.com/NduatiK/modsheet/tokenizer"
)

// ModifierParser is one member of the registry, responsible for a
// single modifier's grammar. Parse must not consume input on failure;
// the registry retries siblings from the same cursor position.
type ModifierParser interface {
	Name() string
	Parse(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (consumed int, value ModifierValue, err error)
}

// Registry is an ordered collection of per-modifier sub-parsers. It is
// built once at registration time and immutable afterward, so a single
// Registry may serve concurrent parses.
type Registry struct {
	parsers []ModifierParser
}

// NewRegistry builds a registry from sub-parsers in declaration order.
// Declaration order is the tie-break when two parsers could match the
// same input.
func NewRegistry(parsers ...ModifierParser) *Registry {
	owned := make([]ModifierParser, len(parsers))
	copy(owned, parsers)

	return &Registry{parsers: owned}
}

// Parse tokenizes an inline modifier text and parses it through the
// registry.
func (r *Registry) Parse(input string) (ModifierValue, error) {
	tokens, err := tok.NewStyleTokenizer(input, tok.TokenizerOptions{
		SkipWhitespace: true,
		SkipComments:   true,
	}).AllTokens()
	if err != nil {
		return nil, err
	}

	return r.ParseTokens(tokens)
}

// ParseTokens attempts each sub-parser in declaration order against the
// same cursor position and returns the first success. On total failure
// it reports the single most diagnostic error: the latest structural
// ArgumentError if any sub-parser matched the name but rejected the
// arguments, otherwise "unknown modifier" with the metadata extracted
// up front.
func (r *Registry) ParseTokens(tokens []tok.Token) (ModifierValue, error) {
	// Best-effort name extraction for error attribution. Runs on its
	// own cursor copy; the entities below start from the same position.
	name, meta, _, metaErr := ParseMetadata(tokens)
	if metaErr != nil {
		name = ""
	}

	entities := ToEntities(tokens)
	pctx := pc.NewParseContext[Entity]()

	var structural *ArgumentError

	for _, p := range r.parsers {
		_, value, err := p.Parse(pctx, entities)
		if err == nil {
			return value, nil
		}

		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			// A name-matched-but-malformed-arguments failure is more
			// diagnostic than "no parser recognized this input"; a
			// newer structural error supersedes an older one.
			structural = argErr
		}
	}

	if structural != nil {
		return nil, structural
	}

	if name == "" && len(tokens) > 0 && tokens[0].Type == tok.IDENT {
		name = tokens[0].Value
	}

	return nil, &UnknownModifierError{Name: name, Meta: meta}
}
