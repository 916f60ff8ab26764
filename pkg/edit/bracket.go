package edit

import (
	"github.com/yaklabco/textkit/pkg/token"
)

// matchingOpen maps closing brackets to openers and vice versa.
func bracketPartner(ch byte) (partner byte, forward, ok bool) {
	switch ch {
	case '(':
		return ')', true, true
	case '[':
		return ']', true, true
	case '{':
		return '}', true, true
	case ')':
		return '(', false, true
	case ']':
		return '[', false, true
	case '}':
		return '{', false, true
	default:
		return 0, false, false
	}
}

// MatchingBracket returns the offset of the bracket matching the one at
// offs, or -1. Only separator tokens participate: brackets inside
// strings or comments neither match nor are matched. The balance scan
// stays within the bracket's own sub-language.
func (e *Editor) MatchingBracket(offs int) int {
	content := e.doc.Bytes()
	if offs < 0 || offs >= len(content) {
		return -1
	}
	t, ok := e.cache.AtOffset(offs)
	if !ok || t.Kind != token.KindSeparator || t.Len() != 1 || !t.Contains(offs) {
		return -1
	}

	ch := content[offs]
	partner, forward, ok := bracketPartner(ch)
	if !ok {
		return -1
	}
	if forward {
		return e.scanBrackets(offs, ch, partner, t.Lang, +1)
	}
	return e.scanBrackets(offs, ch, partner, t.Lang, -1)
}

// scanBrackets walks separator tokens from offs in the given direction,
// counting same chars up and partner chars down, and returns the offset
// where the balance closes.
func (e *Editor) scanBrackets(offs int, ch, partner byte, langIndex, dir int) int {
	content := e.doc.Bytes()
	lines := e.cache.All()
	startLine, err := e.doc.LineOfOffset(offs)
	if err != nil {
		return -1
	}

	depth := 0
	visit := func(t token.Token) (int, bool) {
		if t.Kind != token.KindSeparator || t.Lang != langIndex || t.Len() != 1 {
			return 0, false
		}
		switch content[t.Start] {
		case ch:
			depth++
		case partner:
			depth--
			if depth == 0 {
				return t.Start, true
			}
		}
		return 0, false
	}

	if dir > 0 {
		for i := startLine; i < len(lines); i++ {
			for _, t := range lines[i] {
				if t.Start < offs {
					continue
				}
				if pos, done := visit(t); done {
					return pos
				}
			}
		}
		return -1
	}

	for i := startLine; i >= 0; i-- {
		toks := lines[i]
		for j := len(toks) - 1; j >= 0; j-- {
			if toks[j].Start > offs {
				continue
			}
			if pos, done := visit(toks[j]); done {
				return pos
			}
		}
	}
	return -1
}

// GoToMatchingBracket moves the caret to just past the bracket matching
// the one at (or immediately before) the caret. No match raises error
// feedback and leaves the caret alone.
func (e *Editor) GoToMatchingBracket() error {
	e.recordAction(ActionGoToMatchingBracket, "")

	pos := e.MatchingBracket(e.dot - 1)
	if pos < 0 {
		pos = e.MatchingBracket(e.dot)
	}
	if pos < 0 {
		e.fail()
		return nil
	}
	e.SetCaret(pos + 1)
	return nil
}
