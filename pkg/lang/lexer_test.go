package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textkit/pkg/lang"
	"github.com/yaklabco/textkit/pkg/token"
)

// lexLine runs one line through a fresh lexer from the zero state.
func lexLine(t *testing.T, l *lang.Language, line string) []token.Token {
	t.Helper()
	tokens, _ := l.NewLexer().TokenizeLine([]byte(line), 0, 0)
	require.True(t, token.Validate(tokens, 0, len(line)), "stream must cover the line")
	return tokens
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestCLikeLexer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []token.Kind
	}{
		{
			name: "identifiers and separators",
			line: "foo(bar);",
			want: []token.Kind{
				token.KindIdentifier, token.KindSeparator,
				token.KindIdentifier, token.KindSeparator,
				token.KindOperator,
			},
		},
		{
			name: "dollar is an identifier char",
			line: "$x = 1",
			want: []token.Kind{
				token.KindIdentifier, token.KindWhitespace,
				token.KindOperator, token.KindWhitespace,
				token.KindIdentifier,
			},
		},
		{
			name: "line comment swallows the rest",
			line: "x // y \"z\"",
			want: []token.Kind{
				token.KindIdentifier, token.KindWhitespace,
				token.KindCommentEOL,
			},
		},
		{
			name: "closed block comment",
			line: "a /* b */ c",
			want: []token.Kind{
				token.KindIdentifier, token.KindWhitespace,
				token.KindCommentMultiline, token.KindWhitespace,
				token.KindIdentifier,
			},
		},
		{
			name: "terminated string",
			line: `x = "hi"`,
			want: []token.Kind{
				token.KindIdentifier, token.KindWhitespace,
				token.KindOperator, token.KindWhitespace,
				token.KindLiteralStringDouble,
			},
		},
		{
			name: "unterminated string is an error literal",
			line: `"hi`,
			want: []token.Kind{token.KindErrorStringDouble},
		},
		{
			name: "escaped quote stays inside the literal",
			line: `"a\"b"`,
			want: []token.Kind{token.KindLiteralStringDouble},
		},
		{
			name: "char literals",
			line: `'a' 'b`,
			want: []token.Kind{
				token.KindLiteralChar, token.KindWhitespace,
				token.KindErrorChar,
			},
		},
		{
			name: "unterminated backquote stays valid",
			line: "`raw",
			want: []token.Kind{token.KindLiteralBackquote},
		},
		{
			name: "operator runs coalesce",
			line: "a+=b",
			want: []token.Kind{
				token.KindIdentifier, token.KindOperator,
				token.KindIdentifier,
			},
		},
		{
			name: "lone slash is an operator",
			line: "a/b",
			want: []token.Kind{
				token.KindIdentifier, token.KindOperator,
				token.KindIdentifier,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := lexLine(t, lang.CLike, tc.line)
			assert.Equal(t, tc.want, kinds(got))
		})
	}
}

func TestCLikeBlockCommentCarry(t *testing.T) {
	t.Parallel()

	lexer := lang.CLike.NewLexer()

	tokens, st := lexer.TokenizeLine([]byte("a /* open"), 0, 0)
	require.NotZero(t, st, "comment must carry to the next line")
	assert.Equal(t, token.KindCommentMultiline, tokens[len(tokens)-1].Kind)

	tokens, st = lexer.TokenizeLine([]byte("still open"), 10, st)
	require.NotZero(t, st)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.KindCommentMultiline, tokens[0].Kind)

	tokens, st = lexer.TokenizeLine([]byte("done */ x"), 21, st)
	assert.Zero(t, st)
	assert.Equal(t, token.KindCommentMultiline, tokens[0].Kind)
	assert.Equal(t, token.KindIdentifier, tokens[len(tokens)-1].Kind)
}

func TestMarkupLexer(t *testing.T) {
	t.Parallel()

	got := lexLine(t, lang.Markup, `<div class="x">text</div>`)
	assert.Equal(t, []token.Kind{
		token.KindMarkupTagDelimiter, // <
		token.KindMarkupTagName,      // div
		token.KindWhitespace,
		token.KindMarkupTagAttribute, // class
		token.KindOperator,           // =
		token.KindLiteralStringDouble,
		token.KindMarkupTagDelimiter, // >
		token.KindOther,              // text
		token.KindMarkupTagDelimiter, // </
		token.KindMarkupTagName,      // div
		token.KindMarkupTagDelimiter, // >
	}, kinds(got))

	t.Run("self closing", func(t *testing.T) {
		t.Parallel()

		got := lexLine(t, lang.Markup, "<br/>")
		assert.Equal(t, []token.Kind{
			token.KindMarkupTagDelimiter,
			token.KindMarkupTagName,
			token.KindMarkupTagDelimiter, // />
		}, kinds(got))
	})

	t.Run("bbcode delimiters", func(t *testing.T) {
		t.Parallel()

		got := lexLine(t, lang.BBCode, "[b]bold[/b]")
		assert.Equal(t, []token.Kind{
			token.KindMarkupTagDelimiter, // [
			token.KindMarkupTagName,      // b
			token.KindMarkupTagDelimiter, // ]
			token.KindOther,              // bold
			token.KindMarkupTagDelimiter, // [/
			token.KindMarkupTagName,      // b
			token.KindMarkupTagDelimiter, // ]
		}, kinds(got))
	})
}

func TestPlainLexer(t *testing.T) {
	t.Parallel()

	got := lexLine(t, lang.Plain, "some text  here")
	assert.Equal(t, []token.Kind{
		token.KindOther, token.KindWhitespace,
		token.KindOther, token.KindWhitespace,
		token.KindOther,
	}, kinds(got))
}

func TestLanguageAt(t *testing.T) {
	t.Parallel()

	sub := &lang.Language{Name: "sub"}
	main := &lang.Language{Name: "main", Embedded: []*lang.Language{sub}}

	assert.Same(t, main, main.At(0))
	assert.Same(t, sub, main.At(1))
	assert.Same(t, main, main.At(2), "out of range falls back to main")
	assert.Same(t, main, main.At(-1))
}

func TestIsIdentifierChar(t *testing.T) {
	t.Parallel()

	assert.True(t, lang.CLike.IsIdentifierChar(0, 'a'))
	assert.True(t, lang.CLike.IsIdentifierChar(0, '_'))
	assert.True(t, lang.CLike.IsIdentifierChar(0, '9'))
	assert.True(t, lang.CLike.IsIdentifierChar(0, '$'))
	assert.False(t, lang.CLike.IsIdentifierChar(0, '-'))
	assert.False(t, lang.Plain.IsIdentifierChar(0, '$'))
}

func TestLineCommentStartAndEnd(t *testing.T) {
	t.Parallel()

	start, end, ok := lang.CLike.LineCommentStartAndEnd(0)
	require.True(t, ok)
	assert.Equal(t, "//", start)
	assert.Equal(t, "", end)

	_, _, ok = lang.Plain.LineCommentStartAndEnd(0)
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	t.Parallel()

	l, err := lang.Get("clike")
	require.NoError(t, err)
	assert.Same(t, lang.CLike, l)

	_, err = lang.Get("cobol")
	assert.Error(t, err)

	assert.Contains(t, lang.Names(), "markup")
}

func BenchmarkCLikeTokenizeLine(b *testing.B) {
	line := []byte(`for (int i = 0; i < n; i++) { total += prices[i] * 1.07; } // tally`)
	lexer := lang.CLike.NewLexer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		lexer.TokenizeLine(line, 0, 0)
	}
}

func FuzzCLikeTokenizeLine(f *testing.F) {
	f.Add("foo(bar); // x")
	f.Add(`"unterminated`)
	f.Add("/* open")
	f.Add("a+=b`tick`")
	f.Fuzz(func(t *testing.T, line string) {
		if len(line) > 4096 {
			t.Skip()
		}
		for _, st := range []token.LexState{0, 1} {
			tokens, _ := lang.CLike.NewLexer().TokenizeLine([]byte(line), 0, st)
			if !token.Validate(tokens, 0, len(line)) {
				t.Fatalf("stream does not cover line %q from state %d", line, st)
			}
		}
	})
}
