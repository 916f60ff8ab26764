// Package lang provides language descriptors for the editing core: the
// per-language identifier predicate, comment markers, markup flags, and
// the lexer that produces each language's token stream. A document's
// tokens carry a language index so embedded sub-languages on the same
// line resolve to their own rules.
package lang

import (
	"fmt"

	"github.com/yaklabco/textkit/pkg/token"
)

// Language describes one language's editing rules. Descriptors are
// immutable after registration.
type Language struct {
	// Name is the registry key ("clike", "markup", "plain", ...).
	Name string

	// ExtraIdentifierChars are characters beyond letters, digits and
	// underscore that count as identifier characters (e.g. "$").
	ExtraIdentifierChars string

	// CurlyBracesDenoteCodeBlocks enables brace-based auto-indent,
	// auto-close-curly and brace folding.
	CurlyBracesDenoteCodeBlocks bool

	// LineCommentStart and LineCommentEnd are the toggle-comment
	// markers. An empty LineCommentStart means the language has no line
	// comments; LineCommentEnd is optional ("" for none).
	LineCommentStart string
	LineCommentEnd   string

	// IsMarkup marks SGML-style languages (HTML, XML, BBCode).
	IsMarkup bool

	// CompleteMarkupCloseTags enables closing-tag auto-completion.
	CompleteMarkupCloseTags bool

	// Embedded lists sub-languages addressable by language index > 0
	// (e.g. script inside markup).
	Embedded []*Language

	// NewLexer creates a fresh lexer for this language.
	NewLexer func() token.Lexer
}

// At resolves a language index to its descriptor: 0 is the language
// itself, n > 0 the (n-1)th embedded sub-language. Out-of-range indices
// fall back to the main language, matching the original's lenient
// behavior for stale token streams.
func (l *Language) At(index int) *Language {
	if index <= 0 || index > len(l.Embedded) {
		return l
	}
	return l.Embedded[index-1]
}

// IsIdentifierChar reports whether ch is an identifier character for the
// sub-language at the given index: letters, digits, underscore, plus the
// language's extra characters.
func (l *Language) IsIdentifierChar(index int, ch byte) bool {
	sub := l.At(index)
	if isWordByte(ch) {
		return true
	}
	for i := 0; i < len(sub.ExtraIdentifierChars); i++ {
		if sub.ExtraIdentifierChars[i] == ch {
			return true
		}
	}
	return false
}

// LineCommentStartAndEnd returns the line comment markers for the
// sub-language at the given index, or ok=false when it has none.
func (l *Language) LineCommentStartAndEnd(index int) (start, end string, ok bool) {
	sub := l.At(index)
	if sub.LineCommentStart == "" {
		return "", "", false
	}
	return sub.LineCommentStart, sub.LineCommentEnd, true
}

// isWordByte reports the universal identifier characters.
func isWordByte(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// registry holds the built-in languages. Registration happens at init
// time only; lookups are read-only afterwards.
var registry = map[string]*Language{}

func register(l *Language) *Language {
	registry[l.Name] = l
	return l
}

// Get returns the registered language with the given name.
func Get(name string) (*Language, error) {
	l, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("lang: unknown language %q", name)
	}
	return l, nil
}

// Names returns the registered language names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Built-in languages.
var (
	// Plain treats every character as unclassified text. It is the
	// fallback when detection fails.
	Plain = register(&Language{
		Name:     "plain",
		NewLexer: func() token.Lexer { return plainLexer{} },
	})

	// CLike covers brace-block languages with //-style comments
	// (C, Go, Java, JavaScript, ...).
	CLike = register(&Language{
		Name:                        "clike",
		ExtraIdentifierChars:        "$",
		CurlyBracesDenoteCodeBlocks: true,
		LineCommentStart:            "//",
		NewLexer:                    func() token.Lexer { return &clikeLexer{} },
	})

	// Markup covers SGML-style tag languages (HTML, XML).
	Markup = register(&Language{
		Name:                    "markup",
		IsMarkup:                true,
		CompleteMarkupCloseTags: true,
		NewLexer:                func() token.Lexer { return &markupLexer{open: '<', close: '>'} },
	})

	// BBCode is square-bracket markup ([b]...[/b]).
	BBCode = register(&Language{
		Name:                    "bbcode",
		IsMarkup:                true,
		CompleteMarkupCloseTags: true,
		NewLexer:                func() token.Lexer { return &markupLexer{open: '[', close: ']'} },
	})
)
