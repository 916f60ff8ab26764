package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textkit/pkg/document"
	"github.com/yaklabco/textkit/pkg/token"
)

// wordLexer is a minimal test lexer: space runs and word runs. Lines
// beginning inside a "carried" construct are simulated by treating a
// trailing backslash as a continuation marker.
type wordLexer struct{}

func (wordLexer) TokenizeLine(line []byte, lineStart int, st token.LexState) ([]token.Token, token.LexState) {
	var tokens []token.Token
	pos := 0
	for pos < len(line) {
		start := pos
		kind := token.KindOther
		if line[pos] == ' ' {
			kind = token.KindWhitespace
			for pos < len(line) && line[pos] == ' ' {
				pos++
			}
		} else {
			for pos < len(line) && line[pos] != ' ' {
				pos++
			}
		}
		tokens = append(tokens, token.Token{
			Kind:  kind,
			Start: lineStart + start,
			End:   lineStart + pos,
		})
	}
	next := token.LexState(0)
	if len(line) > 0 && line[len(line)-1] == '\\' {
		next = 1
	}
	return tokens, next
}

func TestCacheTracksRevision(t *testing.T) {
	t.Parallel()

	doc := document.New("ab cd")
	cache := token.NewCache(doc, wordLexer{})

	line := cache.Line(0)
	require.Len(t, line, 3)
	assert.Equal(t, token.KindOther, line[0].Kind)

	// Edit the document; the cache must re-lex.
	require.NoError(t, doc.Insert(0, "x"))
	line = cache.Line(0)
	require.Len(t, line, 3)
	assert.Equal(t, 3, line[0].End-line[0].Start)
}

func TestCacheOffsetsAreDocumentAbsolute(t *testing.T) {
	t.Parallel()

	doc := document.New("ab\ncd ef")
	cache := token.NewCache(doc, wordLexer{})

	second := cache.Line(1)
	require.Len(t, second, 3)
	assert.Equal(t, 3, second[0].Start)
	assert.Equal(t, 5, second[0].End)

	tok, ok := cache.AtOffset(6)
	require.True(t, ok)
	assert.Equal(t, token.KindOther, tok.Kind)
	assert.Equal(t, 6, tok.Start)
}

func TestCacheCarryStates(t *testing.T) {
	t.Parallel()

	doc := document.New("ab\\\ncd\nef")
	cache := token.NewCache(doc, wordLexer{})

	states := cache.CarryStates()
	require.Len(t, states, 3)
	assert.Equal(t, token.LexState(1), states[0])
	assert.Equal(t, token.LexState(0), states[1])
	assert.Equal(t, token.LexState(0), states[2])
}

func TestCacheOutOfRange(t *testing.T) {
	t.Parallel()

	doc := document.New("ab")
	cache := token.NewCache(doc, wordLexer{})

	assert.Nil(t, cache.Line(-1))
	assert.Nil(t, cache.Line(5))

	_, ok := cache.AtOffset(99)
	assert.False(t, ok)
}
