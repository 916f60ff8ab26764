// Package token defines the lexical token stream model: typed spans of
// document text, produced per line by a language lexer and consumed by
// the navigation and editing engines.
package token

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies a lexical token. The set is closed: classification
// sites switch exhaustively over it rather than subclassing.
type Kind uint16

// Token kinds cover every byte of a lexed line.
const (
	KindNull Kind = iota

	KindIdentifier
	KindWhitespace
	KindOperator
	KindSeparator // braces, brackets, parens

	KindLiteralStringDouble // "..." terminated
	KindErrorStringDouble   // "... unterminated or invalid
	KindLiteralChar         // '...' terminated
	KindErrorChar           // '... unterminated or invalid
	KindLiteralBackquote    // `...`

	KindCommentEOL       // line comment to end of line
	KindCommentMultiline // block comment (may span lines)

	KindMarkupTagDelimiter // '<', '</', '>', '/>', '[', '[/', ']'
	KindMarkupTagName
	KindMarkupTagAttribute

	KindOther
)

// IsComment returns true for comment token kinds.
func (k Kind) IsComment() bool {
	switch k {
	case KindCommentEOL, KindCommentMultiline:
		return true
	default:
		return false
	}
}

// IsStringLiteral returns true for string/char/backtick literal kinds,
// valid or invalid.
func (k Kind) IsStringLiteral() bool {
	switch k {
	case KindLiteralStringDouble, KindErrorStringDouble,
		KindLiteralChar, KindErrorChar, KindLiteralBackquote:
		return true
	default:
		return false
	}
}

// Token represents a classified span of document text.
// Tokens within a line are contiguous and non-overlapping, covering the
// line's text (terminator excluded). Token streams are rebuilt whenever
// the underlying line changes; they are never patched in place.
type Token struct {
	// Kind classifies what this token represents.
	Kind Kind

	// Lang identifies which embedded sub-language's rules apply
	// (identifier chars, comment markers) for mixed-language documents.
	Lang int

	// Start is the document byte offset where the token begins (inclusive).
	Start int

	// End is the document byte offset where the token ends (exclusive).
	End int
}

// Text returns the token's source text from the document content.
func (t Token) Text(content []byte) string {
	if t.Start < 0 || t.End > len(content) || t.Start > t.End {
		return ""
	}
	return string(content[t.Start:t.End])
}

// Len returns the token length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Contains reports whether the token covers the given offset.
func (t Token) Contains(offset int) bool {
	return offset >= t.Start && offset < t.End
}

// IsSingleChar reports whether the token is exactly the one given byte.
func (t Token) IsSingleChar(content []byte, ch byte) bool {
	return t.Len() == 1 && t.Start < len(content) && content[t.Start] == ch
}

// IsLeftCurly reports whether the token is a '{' separator.
func (t Token) IsLeftCurly(content []byte) bool {
	return t.Kind == KindSeparator && t.IsSingleChar(content, '{')
}

// EndsWith reports whether the token's last byte is ch.
func (t Token) EndsWith(content []byte, ch byte) bool {
	return t.Len() > 0 && t.End-1 < len(content) && content[t.End-1] == ch
}

// At locates the token covering offset in a line's token stream.
// An offset at the line's end (one past the last token) resolves to the
// last token, mirroring a caret sitting at end of line. Returns the
// zero Token and false when the stream is empty or the offset is outside
// the stream's span.
func At(tokens []Token, offset int) (Token, bool) {
	if len(tokens) == 0 {
		return Token{}, false
	}
	for _, t := range tokens {
		if t.Contains(offset) {
			return t, true
		}
	}
	if last := tokens[len(tokens)-1]; offset == last.End {
		return last, true
	}
	return Token{}, false
}

// LastNonCommentNonWhitespace returns the last token of a line that is
// neither whitespace nor a comment, or false if there is none.
func LastNonCommentNonWhitespace(tokens []Token) (Token, bool) {
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if t.Kind == KindWhitespace || t.Kind.IsComment() {
			continue
		}
		return t, true
	}
	return Token{}, false
}

// Validate checks that a token stream is contiguous and covers exactly
// [start, end). Used by lexer tests; production code trusts its lexers.
func Validate(tokens []Token, start, end int) bool {
	if len(tokens) == 0 {
		return start == end
	}
	if tokens[0].Start != start || tokens[len(tokens)-1].End != end {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Start != tokens[i-1].End {
			return false
		}
	}
	return true
}
