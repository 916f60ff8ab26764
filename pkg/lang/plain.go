package lang

import (
	"github.com/yaklabco/textkit/pkg/token"
)

// plainLexer classifies lines as whitespace and everything-else runs.
// Navigation still works over plain text because word boundaries come
// from the language's identifier predicate, not from token kinds.
type plainLexer struct{}

// TokenizeLine implements token.Lexer.
func (plainLexer) TokenizeLine(line []byte, lineStart int, _ token.LexState) ([]token.Token, token.LexState) {
	s := &clikeScanner{line: line, base: lineStart}
	for s.pos < len(line) {
		if isSpaceByte(line[s.pos]) {
			s.consumeRun(token.KindWhitespace, isSpaceByte)
			continue
		}
		s.consumeRun(token.KindOther, func(ch byte) bool { return !isSpaceByte(ch) })
	}
	return s.tokens, 0
}
