package edit

import (
	"strings"

	"github.com/yaklabco/textkit/pkg/token"
)

// InsertBreak inserts a line break. With auto-indent on and no
// selection, the new line inherits the current line's leading
// whitespace; a whitespace-only line is emptied first when
// clear-whitespace-lines is on; text after the caret moves to the new
// line. An unmatched '{' before the break gets its '}' auto-closed.
func (e *Editor) InsertBreak() error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionInsertBreak, "")

	e.doc.BeginAtomicEdit()
	defer e.doc.EndAtomicEdit()

	if e.dot != e.mark || !e.opts.AutoIndent {
		if err := e.replaceSelection("\n"); err != nil {
			return e.surface("insert break", err)
		}
		return e.surface("insert break", e.possiblyCloseCurlyBrace(""))
	}
	return e.surface("insert break", e.insertNewlineWithAutoIndent())
}

func (e *Editor) insertNewlineWithAutoIndent() error {
	caret := e.dot
	line, err := e.doc.LineOfOffset(caret)
	if err != nil {
		return err
	}
	start, text, err := e.lineTextBounds(line)
	if err != nil {
		return err
	}
	end := start + len(text)

	// Only whitespace up to the caret carries over to the new line.
	run := leadingWhitespace(text)
	leading := run
	if len(leading) > caret-start {
		leading = leading[:caret-start]
	}
	insert := "\n" + leading

	// With clear-whitespace-lines on, an all-whitespace prefix behind
	// the caret is removed along with the break.
	clearPrefix := e.opts.ClearWhitespaceLines && len(run) >= caret-start

	// Position of the first non-whitespace character at or after the
	// caret, or -1 when only whitespace remains on the line.
	tail := firstNonWhitespace(text, caret-start)
	switch {
	case tail == -1 && clearPrefix:
		if err := e.doc.Replace(start, end, insert); err != nil {
			return err
		}
		e.SetCaret(start + len(insert))
	case tail == -1:
		if err := e.doc.Insert(caret, insert); err != nil {
			return err
		}
		e.SetCaret(caret + len(insert))
	default:
		// Take the text after the caret down to the new line.
		insert += text[tail:]
		from := caret
		if clearPrefix {
			from = start
		}
		if err := e.doc.Replace(from, end, insert); err != nil {
			return err
		}
		e.SetCaret(from + 1 + len(leading))
	}

	// Smart indent looks at the previous line's state after the break,
	// since its tail may have moved down.
	if e.shouldIndentNextLine(line) {
		if err := e.doc.Insert(e.dot, e.opts.SoftTab()); err != nil {
			return err
		}
		e.SetCaret(e.dot + len(e.opts.SoftTab()))
	}

	return e.possiblyCloseCurlyBrace(leading)
}

// shouldIndentNextLine reports whether the line ends an open block:
// its last interesting token is a '{' in a sub-language where braces
// denote code blocks.
func (e *Editor) shouldIndentNextLine(line int) bool {
	if !e.opts.AutoIndent {
		return false
	}
	t, ok := token.LastNonCommentNonWhitespace(e.cache.Line(line))
	if !ok || !t.IsLeftCurly(e.doc.Bytes()) {
		return false
	}
	return e.lang.At(t.Lang).CurlyBracesDenoteCodeBlocks
}

// possiblyCloseCurlyBrace auto-closes an unmatched '{'. The caret sits
// on the freshly broken line; when the previous line ends with a '{'
// and the document has more openers than closers for that sub-language,
// a matching "}" line is inserted below the caret, indented with
// leadingWS. The caret does not move.
func (e *Editor) possiblyCloseCurlyBrace(leadingWS string) error {
	if !e.opts.CloseCurlyBraces {
		return nil
	}
	line, err := e.doc.LineOfOffset(e.dot)
	if err != nil || line == 0 {
		return err
	}

	t, ok := token.LastNonCommentNonWhitespace(e.cache.Line(line - 1))
	if !ok || !t.IsLeftCurly(e.doc.Bytes()) {
		return nil
	}
	if !e.lang.At(t.Lang).CurlyBracesDenoteCodeBlocks {
		return nil
	}
	if e.openBraceCount(t.Lang) <= 0 {
		return nil
	}

	var sb strings.Builder
	if line == e.doc.LineCount()-1 {
		sb.WriteByte('\n')
	}
	sb.WriteString(leadingWS)
	sb.WriteString("}\n")

	dot := e.dot
	end, err := e.doc.LineEndOffset(line)
	if err != nil {
		return err
	}
	if err := e.doc.Insert(end, sb.String()); err != nil {
		return err
	}
	e.SetCaret(dot)
	return nil
}

// openBraceCount tallies unmatched '{' separators for one sub-language
// across the whole document. String and comment tokens never
// contribute; their braces are not separators.
func (e *Editor) openBraceCount(langIndex int) int {
	content := e.doc.Bytes()
	count := 0
	for _, line := range e.cache.All() {
		for _, t := range line {
			if t.Kind != token.KindSeparator || t.Lang != langIndex || t.Len() != 1 {
				continue
			}
			switch content[t.Start] {
			case '{':
				count++
			case '}':
				count--
			}
		}
	}
	return count
}

// leadingWhitespace returns the run of spaces and tabs opening s.
func leadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}

// firstNonWhitespace returns the index of the first non-whitespace
// character of s at or after from, or -1.
func firstNonWhitespace(s string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return i
		}
	}
	return -1
}
