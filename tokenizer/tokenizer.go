package tokenizer

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// TokenIterator uses the Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// StyleTokenizer tokenizes stylesheet and inline modifier sources
type StyleTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
	SkipComments   bool
}

// NewStyleTokenizer creates a new StyleTokenizer
func NewStyleTokenizer(input string, options ...TokenizerOptions) *StyleTokenizer {
	opts := TokenizerOptions{
		SkipWhitespace: false,
		SkipComments:   false,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	return &StyleTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens
func (t *StyleTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{
			input:    t.input,
			position: 0,
			line:     1,
			column:   1,
			options:  t.options,
		}

		tokenizer.readChar()

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				if !yield(Token{}, err) {
					return
				}
				continue
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}
			if t.options.SkipComments && token.Type == LINE_COMMENT {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice
func (t *StyleTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			break
		}
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int
	line     int
	column   int
	current  rune
	options  TokenizerOptions
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	switch t.current {
	case 0:
		return t.newToken(EOF, ""), nil
	case ' ', '\t', '\r', '\n':
		return t.readWhitespace(), nil
	case '(':
		token := t.newToken(OPENED_PARENS, string(t.current))
		t.readChar()
		return token, nil
	case ')':
		token := t.newToken(CLOSED_PARENS, string(t.current))
		t.readChar()
		return token, nil
	case '{':
		token := t.newToken(OPENED_BRACE, string(t.current))
		t.readChar()
		return token, nil
	case '}':
		token := t.newToken(CLOSED_BRACE, string(t.current))
		t.readChar()
		return token, nil
	case ',':
		token := t.newToken(COMMA, string(t.current))
		t.readChar()
		return token, nil
	case '.':
		token := t.newToken(DOT, string(t.current))
		t.readChar()
		return token, nil
	case ':':
		token := t.newToken(COLON, string(t.current))
		t.readChar()
		return token, nil
	case '-':
		token := t.newToken(MINUS, string(t.current))
		t.readChar()
		return token, nil
	case '"':
		return t.readString()
	case '<':
		if t.peekChar() == '>' {
			t.readChar()
			t.readChar()
			return t.newToken(CONCAT, "<>"), nil
		}
		return t.readOther()
	case '#':
		if t.peekChar() == '{' {
			t.readChar()
			t.readChar()
			return t.newToken(INTERP_START, "#{"), nil
		}
		return t.readLineComment(), nil
	default:
		if unicode.IsLetter(t.current) || t.current == '_' {
			return t.readWord(), nil
		} else if unicode.IsDigit(t.current) {
			return t.readNumber()
		}
		return t.readOther()
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.position >= len(t.input) {
		t.current = 0
		t.position++
		return
	}

	t.current = rune(t.input[t.position])
	t.position++

	if t.current == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

// peekChar looks ahead at the next character
func (t *tokenizer) peekChar() rune {
	if t.position >= len(t.input) {
		return 0
	}
	return rune(t.input[t.position])
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	var builder strings.Builder
	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	for unicode.IsSpace(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{
		Type:  WHITESPACE,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}
}

// readWord reads identifiers and keywords
func (t *tokenizer) readWord() Token {
	var builder strings.Builder
	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	for unicode.IsLetter(t.current) || unicode.IsDigit(t.current) || t.current == '_' {
		builder.WriteRune(t.current)
		t.readChar()
	}

	word := builder.String()

	return Token{
		Type:  getKeywordTokenType(word),
		Value: word,
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}
}

// readString reads double-quoted string literals
func (t *tokenizer) readString() (Token, error) {
	var builder strings.Builder
	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	builder.WriteRune('"') // include opening quote
	t.readChar()

	for t.current != 0 && t.current != '"' {
		if t.current == '\\' {
			builder.WriteRune(t.current)
			t.readChar()
			if t.current != 0 {
				builder.WriteRune(t.current)
				t.readChar()
			}
		} else {
			builder.WriteRune(t.current)
			t.readChar()
		}
	}

	if t.current == 0 {
		return Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedString, startLine, startColumn)
	}

	builder.WriteRune('"') // include closing quote
	t.readChar()

	return Token{
		Type:  STRING,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}, nil
}

// readNumber reads numeric literals
func (t *tokenizer) readNumber() (Token, error) {
	var builder strings.Builder
	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	// Integer part
	for unicode.IsDigit(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	// Decimal point
	if t.current == '.' && unicode.IsDigit(t.peekChar()) {
		builder.WriteRune(t.current)
		t.readChar()

		for unicode.IsDigit(t.current) {
			builder.WriteRune(t.current)
			t.readChar()
		}
	}

	// Exponential part
	if t.current == 'e' || t.current == 'E' {
		builder.WriteRune(t.current)
		t.readChar()

		if t.current == '+' || t.current == '-' {
			builder.WriteRune(t.current)
			t.readChar()
		}

		if !unicode.IsDigit(t.current) {
			return Token{}, fmt.Errorf("%w: invalid exponent at line %d, column %d", ErrInvalidNumber, startLine, startColumn)
		}

		for unicode.IsDigit(t.current) {
			builder.WriteRune(t.current)
			t.readChar()
		}
	}

	return Token{
		Type:  NUMBER,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}, nil
}

// readLineComment reads a comment from '#' to end of line
func (t *tokenizer) readLineComment() Token {
	var builder strings.Builder
	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	for t.current != 0 && t.current != '\n' {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{
		Type:  LINE_COMMENT,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}
}

// readOther reads other characters
func (t *tokenizer) readOther() (Token, error) {
	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1
	char := t.current

	t.readChar()

	return Token{
		Type:  OTHER,
		Value: string(char),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}, nil
}

// newToken creates a new token
func (t *tokenizer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Position: Position{
			Line:   t.line,
			Column: t.column - len([]rune(value)),
			Offset: t.position - len(value),
		},
	}
}

// getKeywordTokenType returns the TokenType corresponding to a keyword
func getKeywordTokenType(word string) TokenType {
	switch word {
	case "do":
		return DO
	case "end":
		return END
	case "true", "false":
		return BOOLEAN
	default:
		return IDENT
	}
}
