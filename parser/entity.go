package parser

import (
	pc "github.com/shibukawa/parsercombinator"

	tok "github.com/NduatiK/modsheet/tokenizer"
)

// Entity is the value carried by parser tokens. Original is the token
// from the tokenizer; NewValue holds the AST node built for a reduced
// token group.
type Entity struct {
	Original  tok.Token
	NewValue  any
	rawTokens []tok.Token
}

func (e *Entity) RawTokens() []tok.Token {
	result := make([]tok.Token, 0, len(e.rawTokens))
	result = append(result, e.rawTokens...)

	return result
}

// ToEntities converts tokenizer output into parser tokens. EOF is
// dropped so slice exhaustion marks end of input.
func ToEntities(tokens []tok.Token) []pc.Token[Entity] {
	results := make([]pc.Token[Entity], 0, len(tokens))

	for _, token := range tokens {
		if token.Type == tok.EOF {
			continue
		}

		entity := Entity{
			Original:  token,
			rawTokens: []tok.Token{token},
		}
		pcToken := pc.Token[Entity]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: entity,
			Raw: token.Value,
		}
		results = append(results, pcToken)
	}

	return results
}
