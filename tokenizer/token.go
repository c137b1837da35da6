package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrInvalidNumber      = errors.New("invalid number format")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	IDENT   // identifiers and modifier names
	STRING  // string literals ("text")
	NUMBER  // numeric literals
	BOOLEAN // true, false

	// Keywords
	DO  // do keyword opening a clause body
	END // end keyword closing a clause body

	// Punctuation
	OPENED_PARENS // (
	CLOSED_PARENS // )
	OPENED_BRACE  // {
	CLOSED_BRACE  // }
	COMMA         // ,
	DOT           // .
	COLON         // :
	MINUS         // -

	// Stylesheet operators
	CONCAT       // <> selector pattern concatenation
	INTERP_START // #{ interpolation opening

	// Comments
	LINE_COMMENT // # line comment

	// Others
	OTHER // unrecognized characters
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case IDENT:
		return "IDENT"
	case STRING:
		return "STRING"
	case NUMBER:
		return "NUMBER"
	case BOOLEAN:
		return "BOOLEAN"
	case DO:
		return "DO"
	case END:
		return "END"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case OPENED_BRACE:
		return "OPENED_BRACE"
	case CLOSED_BRACE:
		return "CLOSED_BRACE"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case COLON:
		return "COLON"
	case MINUS:
		return "MINUS"
	case CONCAT:
		return "CONCAT"
	case INTERP_START:
		return "INTERP_START"
	case LINE_COMMENT:
		return "LINE_COMMENT"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
