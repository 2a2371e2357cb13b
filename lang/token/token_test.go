package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String(), "missing string representation of kind %d", k)
	}
}

func TestKindGoString(t *testing.T) {
	require.Equal(t, "'('", LEFT_PAREN.GoString())
	require.Equal(t, "'class'", CLASS.GoString())
	require.Equal(t, "identifier", IDENTIFIER.GoString())
	require.Equal(t, "end of file", EOF.GoString())
}

func TestKeywords(t *testing.T) {
	for lexeme, want := range Keywords {
		require.Equal(t, lexeme, want.String())
	}
	require.Len(t, Keywords, int(WHILE-AND)+1)
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IDENTIFIER, Lexeme: "x", Line: 1, Column: 1}
	require.Equal(t, `Token(identifier, "x")`, tok.String())
}
