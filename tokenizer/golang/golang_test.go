package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SS-S3/repo-quality-tool/types"
)

func TestTokenize_Declaration(t *testing.T) {
	tokens, err := New().Tokenize("var x = 1 // one\n")
	require.NoError(t, err)

	assert.Equal(t, []types.Token{
		{Kind: types.KindKeyword, Value: "var"},
		{Kind: types.KindIdentifier, Value: "x"},
		{Kind: types.KindPunctuator, Value: "="},
		{Kind: types.KindNumeric, Value: "1"},
		{Kind: types.KindComment, Value: "// one"},
		{Kind: types.KindWhitespace, Value: "\n"},
	}, tokens)
}

func TestTokenize_Function(t *testing.T) {
	src := "package p\n\nfunc f(s string) rune { return 'a' }\n"
	tokens, err := New().Tokenize(src)
	require.NoError(t, err)

	counts := make(map[types.Kind]int)
	for _, tok := range tokens {
		counts[tok.Kind]++
	}
	assert.Equal(t, 3, counts[types.KindKeyword])    // package func return
	assert.Equal(t, 5, counts[types.KindIdentifier]) // p f s string rune
	assert.Equal(t, 1, counts[types.KindString])     // 'a'
	assert.Equal(t, 4, counts[types.KindPunctuator]) // ( ) { }
}

func TestTokenize_ExplicitSemicolon(t *testing.T) {
	tokens, err := New().Tokenize("a; b")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, types.Token{Kind: types.KindPunctuator, Value: ";"}, tokens[1])
}

func TestTokenize_Error(t *testing.T) {
	tokens, err := New().Tokenize("x := \"open\n")
	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.True(t, types.IsTokenizationError(err))

	var terr *types.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 1, terr.Line)
}
