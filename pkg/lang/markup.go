package lang

import (
	"github.com/yaklabco/textkit/pkg/token"
)

// Lexer carry states for markupLexer.
const (
	markupStateText     token.LexState = 0
	markupStateNeedName token.LexState = 1 // inside a tag, name not yet seen
	markupStateInTag    token.LexState = 2 // inside a tag, name seen
)

// markupLexer scans SGML-style tag languages. The delimiter bytes are
// parameterized so the same scanner serves angle-bracket markup (HTML,
// XML) and square-bracket markup (BBCode).
type markupLexer struct {
	open  byte // '<' or '['
	close byte // '>' or ']'
}

// TokenizeLine implements token.Lexer.
func (m *markupLexer) TokenizeLine(line []byte, lineStart int, st token.LexState) ([]token.Token, token.LexState) {
	s := &clikeScanner{line: line, base: lineStart}

	for s.pos < len(line) {
		if st == markupStateText {
			st = m.scanText(s)
			continue
		}
		st = m.scanInTag(s, st)
	}

	return s.tokens, st
}

// scanText consumes text content up to the next tag opener. The opener
// (with an optional '/' for closing tags) lexes as a tag delimiter.
func (m *markupLexer) scanText(s *clikeScanner) token.LexState {
	ch := s.line[s.pos]
	if ch == m.open {
		start := s.pos
		s.pos++
		if s.pos < len(s.line) && s.line[s.pos] == '/' {
			s.pos++
		}
		s.emit(token.KindMarkupTagDelimiter, start, s.pos)
		return markupStateNeedName
	}
	if isSpaceByte(ch) {
		s.consumeRun(token.KindWhitespace, isSpaceByte)
		return markupStateText
	}
	start := s.pos
	for s.pos < len(s.line) && s.line[s.pos] != m.open && !isSpaceByte(s.line[s.pos]) {
		s.pos++
	}
	s.emit(token.KindOther, start, s.pos)
	return markupStateText
}

// scanInTag consumes one token inside a tag. The first identifier run
// after the opener is the tag name; later runs are attribute names.
func (m *markupLexer) scanInTag(s *clikeScanner, st token.LexState) token.LexState {
	ch := s.line[s.pos]
	switch {
	case ch == m.close:
		s.emit(token.KindMarkupTagDelimiter, s.pos, s.pos+1)
		s.pos++
		return markupStateText
	case ch == '/' && s.pos+1 < len(s.line) && s.line[s.pos+1] == m.close:
		s.emit(token.KindMarkupTagDelimiter, s.pos, s.pos+2)
		s.pos += 2
		return markupStateText
	case isSpaceByte(ch):
		s.consumeRun(token.KindWhitespace, isSpaceByte)
		return st
	case isTagNameByte(ch):
		kind := token.KindMarkupTagAttribute
		if st == markupStateNeedName {
			kind = token.KindMarkupTagName
		}
		s.consumeRun(kind, isTagNameByte)
		return markupStateInTag
	case ch == '"':
		s.consumeQuoted('"', token.KindLiteralStringDouble, token.KindErrorStringDouble)
		return st
	case ch == '\'':
		s.consumeQuoted('\'', token.KindLiteralChar, token.KindErrorChar)
		return st
	default:
		s.emit(token.KindOperator, s.pos, s.pos+1)
		s.pos++
		return st
	}
}

// isTagNameByte matches tag and attribute name characters. Colons and
// dashes cover namespaced XML names and data-* attributes.
func isTagNameByte(ch byte) bool {
	return isWordByte(ch) || ch == '-' || ch == ':' || ch == '.'
}
