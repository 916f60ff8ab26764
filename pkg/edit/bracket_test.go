package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textkit/pkg/lang"
)

func TestMatchingBracket(t *testing.T) {
	t.Parallel()

	e, _ := newEditor(t, "a(b[c]d)e", lang.CLike)

	tests := []struct {
		name string
		offs int
		want int
	}{
		{"open paren to close", 1, 7},
		{"close paren to open", 7, 1},
		{"open square to close", 3, 5},
		{"close square to open", 5, 3},
		{"identifier is no bracket", 0, -1},
		{"out of range", 99, -1},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.MatchingBracket(tt.offs))
		})
	}
}

func TestMatchingBracketNested(t *testing.T) {
	t.Parallel()

	e, _ := newEditor(t, "{ { } }", lang.CLike)
	assert.Equal(t, 6, e.MatchingBracket(0))
	assert.Equal(t, 4, e.MatchingBracket(2))
	assert.Equal(t, 0, e.MatchingBracket(6))
}

func TestMatchingBracketAcrossLines(t *testing.T) {
	t.Parallel()

	e, _ := newEditor(t, "f(\n\tx\n)", lang.CLike)
	assert.Equal(t, 6, e.MatchingBracket(1))
	assert.Equal(t, 1, e.MatchingBracket(6))
}

func TestMatchingBracketIgnoresStrings(t *testing.T) {
	t.Parallel()

	// The paren inside the string literal takes no part in the balance.
	e, _ := newEditor(t, `("(")`, lang.CLike)
	assert.Equal(t, 4, e.MatchingBracket(0))
	assert.Equal(t, -1, e.MatchingBracket(2), "bracket inside a string never matches")
}

func TestGoToMatchingBracket(t *testing.T) {
	t.Parallel()

	t.Run("bracket before the caret wins", func(t *testing.T) {
		t.Parallel()

		e, _ := newEditor(t, "f(x)", lang.CLike)
		e.SetCaret(2)
		require.NoError(t, e.GoToMatchingBracket())
		assert.Equal(t, 4, e.Dot(), "caret lands just past the match")
	})

	t.Run("falls back to the bracket at the caret", func(t *testing.T) {
		t.Parallel()

		e, _ := newEditor(t, "(x)", lang.CLike)
		e.SetCaret(0)
		require.NoError(t, e.GoToMatchingBracket())
		assert.Equal(t, 3, e.Dot())
	})

	t.Run("no bracket rings the bell", func(t *testing.T) {
		t.Parallel()

		e, b := newEditor(t, "abc", lang.CLike)
		e.SetCaret(1)
		require.NoError(t, e.GoToMatchingBracket())
		assert.Equal(t, 1, e.Dot())
		assert.Equal(t, 1, b.rings)
	})

	t.Run("unbalanced bracket rings the bell", func(t *testing.T) {
		t.Parallel()

		e, b := newEditor(t, "(x", lang.CLike)
		e.SetCaret(1)
		require.NoError(t, e.GoToMatchingBracket())
		assert.Equal(t, 1, e.Dot())
		assert.Equal(t, 1, b.rings)
	})
}
