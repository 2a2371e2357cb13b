package scanner_test

import (
	"testing"

	"github.com/jmahotiedu/rift/lang/scanner"
	"github.com/jmahotiedu/rift/lang/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, errs := scanner.ScanTokens(`(){},.-+;*% ! != = == < <= > >= /`)
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.PERCENT, token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.SLASH,
		token.EOF,
	}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, errs := scanner.ScanTokens("1 // a comment\n2")
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
	require.Equal(t, 1.0, toks[0].Literal)
	require.Equal(t, 2.0, toks[1].Literal)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanNumbers(t *testing.T) {
	toks, errs := scanner.ScanTokens("123 1.5 3.")
	require.Empty(t, errs)
	require.Equal(t, 123.0, toks[0].Literal)
	require.Equal(t, 1.5, toks[1].Literal)
	// the trailing '.' is not consumed since it is not followed by a digit
	require.Equal(t, 3.0, toks[2].Literal)
	require.Equal(t, token.DOT, toks[3].Kind)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, errs := scanner.ScanTokens("let x = foo")
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{token.LET, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.EOF}, kinds(toks))
}

func TestScanStringEscapes(t *testing.T) {
	toks, errs := scanner.ScanTokens(`"a\nb\tc\\d\"e\qf"`)
	require.Empty(t, errs)
	require.Equal(t, "a\nb\tc\\d\"e\\qf", toks[0].Literal)
}

func TestScanMultilineString(t *testing.T) {
	toks, errs := scanner.ScanTokens("\"a\nb\"\nprint")
	require.Empty(t, errs)
	require.Equal(t, "a\nb", toks[0].Literal)
	require.Equal(t, token.PRINT, toks[1].Kind)
	require.Equal(t, 3, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := scanner.ScanTokens(`"hello`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "unterminated string")
	require.Contains(t, errs[0].Error(), "Scan error")
}

func TestScanUnexpectedCharacterContinues(t *testing.T) {
	toks, errs := scanner.ScanTokens("1 @ 2 # 3")
	require.Len(t, errs, 2)
	require.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
}

func TestRelexingLexemesPreservesKinds(t *testing.T) {
	source := `class Box { init(v) { this.value = v; } get() { return this.value; } }`
	toks, errs := scanner.ScanTokens(source)
	require.Empty(t, errs)

	var lexemes string
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			continue
		}
		lexemes += tk.Lexeme + " "
	}
	retoks, errs2 := scanner.ScanTokens(lexemes)
	require.Empty(t, errs2)
	require.Equal(t, kinds(toks), kinds(retoks))
}
