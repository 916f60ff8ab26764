package edit

import (
	"strings"
)

// ToggleComment adds or removes line comment markers on every line the
// selection touches. One decision covers the whole range: markers are
// removed only when every line already carries them, otherwise they are
// added everywhere. Languages without line comments raise error
// feedback and mutate nothing.
func (e *Editor) ToggleComment() error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionToggleComment, "")

	selStart, selEnd := e.Selection()
	startMark, endMark, ok := e.lang.LineCommentStartAndEnd(e.langIndexAt(selStart))
	if !ok {
		e.fail()
		return nil
	}

	line1, err := e.doc.LineOfOffset(selStart)
	if err != nil {
		return e.surface("toggle comment", err)
	}
	line2, err := e.doc.LineOfOffset(selEnd)
	if err != nil {
		return e.surface("toggle comment", err)
	}
	// A selection ending at a line's very start doesn't include that
	// line.
	if line2 > line1 {
		start2, err := e.doc.LineStartOffset(line2)
		if err != nil {
			return e.surface("toggle comment", err)
		}
		if selEnd == start2 {
			line2--
		}
	}

	// The decision looks at trimmed text so indented comment markers
	// still count as commented.
	add := false
	for i := line1; i <= line2; i++ {
		text, err := e.doc.LineText(i)
		if err != nil {
			return e.surface("toggle comment", err)
		}
		trimmed := strings.TrimSpace(text)
		if !strings.HasPrefix(trimmed, startMark) ||
			(endMark != "" && !strings.HasSuffix(trimmed, endMark)) {
			add = true
			break
		}
	}

	e.doc.BeginAtomicEdit()
	defer e.doc.EndAtomicEdit()

	for i := line1; i <= line2; i++ {
		if err := e.toggleLineComment(i, startMark, endMark, add); err != nil {
			return e.surface("toggle comment", err)
		}
	}

	e.reselectLines(line1, line2)
	return nil
}

func (e *Editor) toggleLineComment(line int, startMark, endMark string, add bool) error {
	start, text, err := e.lineTextBounds(line)
	if err != nil {
		return err
	}

	if add {
		if err := e.doc.Insert(start, startMark); err != nil {
			return err
		}
		if endMark != "" {
			return e.doc.Insert(start+len(startMark)+len(text), endMark)
		}
		return nil
	}

	// Markers are removed where they sit, end marker first so the start
	// marker's offset stays valid.
	if endMark != "" {
		if idx := strings.LastIndex(text, endMark); idx >= 0 {
			if err := e.doc.Remove(start+idx, len(endMark)); err != nil {
				return err
			}
		}
	}
	if idx := strings.Index(text, startMark); idx >= 0 {
		return e.doc.Remove(start+idx, len(startMark))
	}
	return nil
}
