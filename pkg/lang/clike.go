package lang

import (
	"github.com/yaklabco/textkit/pkg/token"
)

// Lexer carry states for clikeLexer.
const (
	clikeStateNormal       token.LexState = 0
	clikeStateBlockComment token.LexState = 1
)

// clikeLexer is a single-pass byte scanner for brace-block languages:
// identifiers, // and /* */ comments, double/single/backtick quoted
// literals (unterminated double/single lex as error kinds), separators,
// and operator runs.
type clikeLexer struct{}

// TokenizeLine implements token.Lexer.
func (clikeLexer) TokenizeLine(line []byte, lineStart int, st token.LexState) ([]token.Token, token.LexState) {
	s := &clikeScanner{line: line, base: lineStart}

	if st == clikeStateBlockComment && !s.finishBlockComment() {
		return s.tokens, clikeStateBlockComment
	}

	for s.pos < len(line) {
		ch := line[s.pos]
		switch {
		case ch == ' ' || ch == '\t':
			s.consumeRun(token.KindWhitespace, isSpaceByte)
		case isCLikeIdentByte(ch):
			s.consumeRun(token.KindIdentifier, isCLikeIdentByte)
		case ch == '/':
			if done := s.consumeSlash(); !done {
				return s.tokens, clikeStateBlockComment
			}
		case ch == '"':
			s.consumeQuoted('"', token.KindLiteralStringDouble, token.KindErrorStringDouble)
		case ch == '\'':
			s.consumeQuoted('\'', token.KindLiteralChar, token.KindErrorChar)
		case ch == '`':
			// Unterminated backquote literals stay "valid"; the quote
			// overwrite logic relies on the closing-char check instead.
			s.consumeQuoted('`', token.KindLiteralBackquote, token.KindLiteralBackquote)
		case isSeparatorByte(ch):
			s.emit(token.KindSeparator, s.pos, s.pos+1)
			s.pos++
		default:
			s.consumeRun(token.KindOperator, isOperatorByte)
		}
	}

	return s.tokens, clikeStateNormal
}

type clikeScanner struct {
	line   []byte
	base   int
	pos    int
	tokens []token.Token
}

func (s *clikeScanner) emit(kind token.Kind, start, end int) {
	if end > start {
		s.tokens = append(s.tokens, token.Token{
			Kind:  kind,
			Start: s.base + start,
			End:   s.base + end,
		})
	}
}

func (s *clikeScanner) consumeRun(kind token.Kind, pred func(byte) bool) {
	start := s.pos
	for s.pos < len(s.line) && pred(s.line[s.pos]) {
		s.pos++
	}
	s.emit(kind, start, s.pos)
}

// consumeSlash handles '/': line comment, block comment start, or a
// plain operator. Returns false when an unterminated block comment
// carries into the next line.
func (s *clikeScanner) consumeSlash() bool {
	start := s.pos
	if s.pos+1 < len(s.line) {
		switch s.line[s.pos+1] {
		case '/':
			s.pos = len(s.line)
			s.emit(token.KindCommentEOL, start, s.pos)
			return true
		case '*':
			s.pos += 2
			if end := indexFrom(s.line, s.pos, "*/"); end >= 0 {
				s.pos = end + 2
				s.emit(token.KindCommentMultiline, start, s.pos)
				return true
			}
			s.pos = len(s.line)
			s.emit(token.KindCommentMultiline, start, s.pos)
			return false
		}
	}
	s.pos++
	s.emit(token.KindOperator, start, s.pos)
	return true
}

// finishBlockComment consumes the remainder of a block comment opened on
// an earlier line. Returns false when it still has not closed.
func (s *clikeScanner) finishBlockComment() bool {
	if end := indexFrom(s.line, 0, "*/"); end >= 0 {
		s.pos = end + 2
		s.emit(token.KindCommentMultiline, 0, s.pos)
		return true
	}
	s.pos = len(s.line)
	s.emit(token.KindCommentMultiline, 0, s.pos)
	return false
}

// consumeQuoted scans a quoted literal with backslash escapes. A literal
// closed before end of line gets validKind, otherwise errKind runs to the
// end of the line.
func (s *clikeScanner) consumeQuoted(quote byte, validKind, errKind token.Kind) {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.line) {
		ch := s.line[s.pos]
		if ch == '\\' && s.pos+1 < len(s.line) {
			s.pos += 2
			continue
		}
		if ch == quote {
			s.pos++
			s.emit(validKind, start, s.pos)
			return
		}
		s.pos++
	}
	s.emit(errKind, start, s.pos)
}

func indexFrom(b []byte, from int, sub string) int {
	for i := from; i+len(sub) <= len(b); i++ {
		if string(b[i:i+len(sub)]) == sub {
			return i
		}
	}
	return -1
}

func isSpaceByte(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isCLikeIdentByte(ch byte) bool {
	return isWordByte(ch) || ch == '$'
}

func isSeparatorByte(ch byte) bool {
	switch ch {
	case '(', ')', '{', '}', '[', ']':
		return true
	default:
		return false
	}
}

// isOperatorByte matches the leftover symbol characters that coalesce
// into operator runs. Characters with dedicated handling (quotes, slash,
// separators) terminate a run via their own scanner cases.
func isOperatorByte(ch byte) bool {
	if isSpaceByte(ch) || isCLikeIdentByte(ch) || isSeparatorByte(ch) {
		return false
	}
	switch ch {
	case '"', '\'', '`', '/':
		return false
	default:
		return true
	}
}
