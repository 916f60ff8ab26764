// Package nav computes caret movement targets: word boundaries, word
// hopping across lines, and visible line ends. The algorithms are pure
// functions over a Context; they classify characters with the owning
// language's identifier predicate and never mutate the document.
//
// Character classification has exactly three classes, checked in this
// order: identifier characters, whitespace, and everything else
// ("operator" characters). WordStart and WordEnd treat a single
// operator character as a one-character word; NextWord and PreviousWord
// skip contiguous operator runs as one unit. The asymmetry is
// deliberate and matches common code-editor behavior.
package nav

import (
	"fmt"

	"github.com/yaklabco/textkit/pkg/fold"
)

// Document is the read-only surface the navigation algorithms use.
// *document.Document satisfies it.
type Document interface {
	Len() int
	CharAt(offset int) (byte, error)
	LineCount() int
	LineOfOffset(offset int) (int, error)
	LineStartOffset(line int) (int, error)
	LineEndOffset(line int) (int, error)
}

// Context bundles what one navigation call needs. The zero Folds /
// FoldingEnabled=false combination degrades to plain physical-line
// navigation.
type Context struct {
	Doc Document

	// IsIdentifierChar is the language's identifier predicate for the
	// caret's sub-language.
	IsIdentifierChar func(ch byte) bool

	Folds          *fold.Manager
	FoldingEnabled bool
}

func (c *Context) isIdent(ch byte) bool {
	if c.IsIdentifierChar != nil {
		return c.IsIdentifierChar(ch)
	}
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

// lineTextEnd returns the offset just past the line's text, before any
// line terminator.
func (c *Context) lineTextEnd(line int) (int, error) {
	end, err := c.Doc.LineEndOffset(line)
	if err != nil {
		return 0, err
	}
	start, err := c.Doc.LineStartOffset(line)
	if err != nil {
		return 0, err
	}
	for end > start {
		ch, err := c.Doc.CharAt(end - 1)
		if err != nil {
			return 0, err
		}
		if ch != '\n' && ch != '\r' {
			break
		}
		end--
	}
	return end, nil
}

// WordStart returns the start of the word at the caret. An identifier
// run touching the caret on either side scans back to its beginning; a
// whitespace run under the caret scans likewise; a lone operator
// character is its own one-character word. At a line start the offset
// is returned unchanged.
func (c *Context) WordStart(offs int) (int, error) {
	if offs <= 0 {
		return 0, nil
	}
	line, err := c.Doc.LineOfOffset(offs)
	if err != nil {
		return 0, fmt.Errorf("word start: %w", err)
	}
	start, err := c.Doc.LineStartOffset(line)
	if err != nil {
		return 0, err
	}
	if offs <= start {
		return offs, nil
	}
	end, err := c.lineTextEnd(line)
	if err != nil {
		return 0, err
	}

	prev, err := c.Doc.CharAt(offs - 1)
	if err != nil {
		return 0, err
	}

	if offs < end {
		ch, err := c.Doc.CharAt(offs)
		if err != nil {
			return 0, err
		}
		switch {
		case c.isIdent(ch) || c.isIdent(prev):
			return c.scanBack(offs, start, c.isIdent), nil
		case isSpace(ch):
			return c.scanBack(offs, start, isSpace), nil
		case !isSpace(prev):
			// Between two operator chars the one before is the word.
			return offs - 1, nil
		default:
			// Operator char after whitespace: a word of its own.
			return offs, nil
		}
	}

	// Caret at the line's text end: only the character before counts.
	switch {
	case c.isIdent(prev):
		return c.scanBack(offs, start, c.isIdent), nil
	case isSpace(prev):
		return c.scanBack(offs, start, isSpace), nil
	default:
		return offs - 1, nil
	}
}

// WordEnd returns the end of the word at the caret. The character at
// offs picks the class; a lone operator character is a one-character
// word. At the line's text end the offset is returned unchanged.
func (c *Context) WordEnd(offs int) (int, error) {
	if offs >= c.Doc.Len() {
		return c.Doc.Len(), nil
	}
	line, err := c.Doc.LineOfOffset(offs)
	if err != nil {
		return 0, fmt.Errorf("word end: %w", err)
	}
	end, err := c.lineTextEnd(line)
	if err != nil {
		return 0, err
	}
	if offs >= end {
		return offs, nil
	}

	ch, err := c.Doc.CharAt(offs)
	if err != nil {
		return 0, err
	}
	switch {
	case c.isIdent(ch):
		return c.scanForward(offs, end, c.isIdent), nil
	case isSpace(ch):
		return c.scanForward(offs, end, isSpace), nil
	default:
		return offs + 1, nil
	}
}

// NextWord returns the start of the next word after offs. Within a line
// it skips the current identifier or operator run, then any whitespace.
// At the line's text end it lands on the next visible line's start,
// skipping lines hidden by collapsed folds when folding is enabled.
func (c *Context) NextWord(offs int) (int, error) {
	if offs >= c.Doc.Len() {
		return c.Doc.Len(), nil
	}
	line, err := c.Doc.LineOfOffset(offs)
	if err != nil {
		return 0, fmt.Errorf("next word: %w", err)
	}
	end, err := c.lineTextEnd(line)
	if err != nil {
		return 0, err
	}

	if offs >= end {
		next := c.nextVisibleLine(line)
		if next < 0 {
			return offs, nil
		}
		return c.Doc.LineStartOffset(next)
	}

	ch, err := c.Doc.CharAt(offs)
	if err != nil {
		return 0, err
	}
	pos := offs
	switch {
	case c.isIdent(ch):
		pos = c.scanForward(pos, end, c.isIdent)
	case !isSpace(ch):
		pos = c.scanForward(pos, end, func(b byte) bool {
			return !c.isIdent(b) && !isSpace(b)
		})
	}
	pos = c.scanForward(pos, end, isSpace)
	return pos, nil
}

// PreviousWord returns the start of the word before offs: skip any
// whitespace backward, then the identifier or operator run it lands on.
// At a line start it moves to the previous visible line's text end.
func (c *Context) PreviousWord(offs int) (int, error) {
	if offs <= 0 {
		return 0, nil
	}
	line, err := c.Doc.LineOfOffset(offs)
	if err != nil {
		return 0, fmt.Errorf("previous word: %w", err)
	}
	start, err := c.Doc.LineStartOffset(line)
	if err != nil {
		return 0, err
	}

	if offs <= start {
		prev := c.prevVisibleLine(line)
		if prev < 0 {
			return offs, nil
		}
		return c.lineTextEnd(prev)
	}

	pos := c.scanBack(offs, start, isSpace)
	if pos == start {
		return pos, nil
	}
	prev, err := c.Doc.CharAt(pos - 1)
	if err != nil {
		return 0, err
	}
	if c.isIdent(prev) {
		return c.scanBack(pos, start, c.isIdent), nil
	}
	return c.scanBack(pos, start, func(b byte) bool {
		return !c.isIdent(b) && !isSpace(b)
	}), nil
}

// PreviousWordStartForDelete returns the boundary delete-previous-word
// removes back to: whitespace is stripped first, then the identifier or
// operator run before the caret. At a line start it returns the previous
// line's text end so the deletion swallows the line terminator.
func (c *Context) PreviousWordStartForDelete(offs int) (int, error) {
	if offs <= 0 {
		return 0, nil
	}
	line, err := c.Doc.LineOfOffset(offs)
	if err != nil {
		return 0, fmt.Errorf("previous word start: %w", err)
	}
	start, err := c.Doc.LineStartOffset(line)
	if err != nil {
		return 0, err
	}
	if offs <= start {
		if line == 0 {
			return 0, nil
		}
		return c.lineTextEnd(line - 1)
	}
	return c.PreviousWord(offs)
}

// VisibleLineEnd returns the text end of the visible line containing
// offs. When the line anchors a collapsed fold, the visible line runs
// through the fold's hidden range, chaining through collapsed folds
// anchored at each successive end line.
func (c *Context) VisibleLineEnd(offs int) (int, error) {
	line, err := c.Doc.LineOfOffset(offs)
	if err != nil {
		return 0, fmt.Errorf("visible line end: %w", err)
	}
	if c.FoldingEnabled && c.Folds != nil {
		for {
			f := c.Folds.FoldForLine(line)
			if f == nil || !f.Collapsed || f.EndLine <= line {
				break
			}
			line = f.EndLine
		}
	}
	return c.lineTextEnd(line)
}

// nextVisibleLine returns the first line after line not hidden by a
// collapsed fold, or -1 at the end of the document.
func (c *Context) nextVisibleLine(line int) int {
	for next := line + 1; next < c.Doc.LineCount(); next++ {
		if !c.hidden(next) {
			return next
		}
	}
	return -1
}

// prevVisibleLine returns the last visible line before line, or -1.
func (c *Context) prevVisibleLine(line int) int {
	for prev := line - 1; prev >= 0; prev-- {
		if !c.hidden(prev) {
			return prev
		}
	}
	return -1
}

func (c *Context) hidden(line int) bool {
	return c.FoldingEnabled && c.Folds != nil && c.Folds.IsLineHidden(line)
}

// scanBack moves pos left while the character before it matches pred,
// stopping at floor.
func (c *Context) scanBack(pos, floor int, pred func(byte) bool) int {
	for pos > floor {
		ch, err := c.Doc.CharAt(pos - 1)
		if err != nil || !pred(ch) {
			break
		}
		pos--
	}
	return pos
}

// scanForward moves pos right while the character at it matches pred,
// stopping at ceil.
func (c *Context) scanForward(pos, ceil int, pred func(byte) bool) int {
	for pos < ceil {
		ch, err := c.Doc.CharAt(pos)
		if err != nil || !pred(ch) {
			break
		}
		pos++
	}
	return pos
}
