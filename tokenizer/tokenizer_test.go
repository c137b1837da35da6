package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenIterator(t *testing.T) {
	src := `"color-red" do color(.red) end`
	tokenizer := NewStyleTokenizer(src)

	expectedTypes := []TokenType{
		STRING, WHITESPACE, DO, WHITESPACE, IDENT, OPENED_PARENS, DOT, IDENT,
		CLOSED_PARENS, WHITESPACE, END, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, token.Type)

		if token.Type == EOF {
			break
		}
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestTokenIteratorWithOptions(t *testing.T) {
	src := "\"h-\" <> height do # bind suffix\n  height(#{height})\nend"
	tokenizer := NewStyleTokenizer(src, TokenizerOptions{
		SkipWhitespace: true,
		SkipComments:   true,
	})

	expectedTypes := []TokenType{
		STRING, CONCAT, IDENT, DO,
		IDENT, OPENED_PARENS, INTERP_START, IDENT, CLOSED_BRACE, CLOSED_PARENS,
		END, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, token.Type)

		if token.Type == EOF {
			break
		}
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestMetadataBlockTokens(t *testing.T) {
	src := `{buttonStyle, file: "a.ex", line: 3}(.bordered)`
	tokenizer := NewStyleTokenizer(src, TokenizerOptions{SkipWhitespace: true})

	tokens, err := tokenizer.AllTokens()
	assert.NoError(t, err)

	expectedTypes := []TokenType{
		OPENED_BRACE, IDENT, COMMA, IDENT, COLON, STRING, COMMA, IDENT, COLON, NUMBER,
		CLOSED_BRACE, OPENED_PARENS, DOT, IDENT, CLOSED_PARENS, EOF,
	}

	actualTypes := make([]TokenType, 0, len(tokens))
	for _, token := range tokens {
		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		value string
	}{
		{"integer", "42", "42"},
		{"decimal", "4.5", "4.5"},
		{"exponent", "1.5e10", "1.5e10"},
		{"signed exponent", "2e-3", "2e-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewStyleTokenizer(tt.src).AllTokens()
			assert.NoError(t, err)
			assert.Equal(t, NUMBER, tokens[0].Type)
			assert.Equal(t, tt.value, tokens[0].Value)
		})
	}
}

func TestInvalidExponent(t *testing.T) {
	_, err := NewStyleTokenizer("1e+x").AllTokens()

	assert.IsError(t, err, ErrInvalidNumber)
}

func TestUnterminatedString(t *testing.T) {
	_, err := NewStyleTokenizer(`"color-red do`).AllTokens()

	assert.IsError(t, err, ErrUnterminatedString)
}

func TestLineCommentVersusInterpolation(t *testing.T) {
	src := "# whole line comment\n#{height}"
	tokens, err := NewStyleTokenizer(src, TokenizerOptions{SkipWhitespace: true}).AllTokens()
	assert.NoError(t, err)

	expectedTypes := []TokenType{LINE_COMMENT, INTERP_START, IDENT, CLOSED_BRACE, EOF}

	actualTypes := make([]TokenType, 0, len(tokens))
	for _, token := range tokens {
		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestPositionTracking(t *testing.T) {
	src := "color(.red)\nheight(42)"
	tokens, err := NewStyleTokenizer(src, TokenizerOptions{SkipWhitespace: true}).AllTokens()
	assert.NoError(t, err)

	// height starts line 2, column 1
	var height Token
	for _, token := range tokens {
		if token.Value == "height" {
			height = token
		}
	}

	assert.Equal(t, 2, height.Position.Line)
	assert.Equal(t, 1, height.Position.Column)
	assert.Equal(t, 12, height.Position.Offset)
}

func TestStringEscapes(t *testing.T) {
	tokens, err := NewStyleTokenizer(`"say \"hi\""`).AllTokens()
	assert.NoError(t, err)

	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, `"say \"hi\""`, tokens[0].Value)
}
