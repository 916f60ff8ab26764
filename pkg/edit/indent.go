package edit

// InsertTab handles the Tab key. With a selection spanning multiple
// lines every selected line indents by one tab (or its space
// equivalent); the last line is skipped when the selection ends exactly
// at its start. Otherwise the tab replaces the selection.
func (e *Editor) InsertTab() error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionInsertTab, "")

	dotLine, err := e.doc.LineOfOffset(e.dot)
	if err != nil {
		return e.surface("insert tab", err)
	}
	markLine, err := e.doc.LineOfOffset(e.mark)
	if err != nil {
		return e.surface("insert tab", err)
	}
	if dotLine == markLine {
		return e.surface("insert tab", e.replaceSelection(e.opts.SoftTab()))
	}

	first, last := dotLine, markLine
	if first > last {
		first, last = last, first
	}
	tab := e.opts.SoftTab()

	// Decide the last line's fate before offsets start shifting: it
	// indents only when the selection reaches past its start.
	lastStart, err := e.doc.LineStartOffset(last)
	if err != nil {
		return e.surface("insert tab", err)
	}
	_, selEnd := e.Selection()
	indentLast := selEnd != lastStart

	e.doc.BeginAtomicEdit()
	defer e.doc.EndAtomicEdit()

	for i := first; i < last; i++ {
		start, err := e.doc.LineStartOffset(i)
		if err != nil {
			return e.surface("insert tab", err)
		}
		if err := e.doc.Insert(start, tab); err != nil {
			return e.surface("insert tab", err)
		}
	}

	if indentLast {
		start, err := e.doc.LineStartOffset(last)
		if err != nil {
			return e.surface("insert tab", err)
		}
		if err := e.doc.Insert(start, tab); err != nil {
			return e.surface("insert tab", err)
		}
	}

	e.reselectLines(first, last)
	return nil
}

// DecreaseIndent removes one level of indentation from every line the
// selection touches: a single leading tab, or up to tab-size leading
// spaces. As with InsertTab, the last line is skipped when the
// selection ends exactly at its start.
func (e *Editor) DecreaseIndent() error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionDecreaseIndent, "")

	dotLine, err := e.doc.LineOfOffset(e.dot)
	if err != nil {
		return e.surface("decrease indent", err)
	}
	markLine, err := e.doc.LineOfOffset(e.mark)
	if err != nil {
		return e.surface("decrease indent", err)
	}

	first, last := dotLine, markLine
	if first > last {
		first, last = last, first
	}

	lastStart, err := e.doc.LineStartOffset(last)
	if err != nil {
		return e.surface("decrease indent", err)
	}
	_, selEnd := e.Selection()
	unindentLast := first == last || selEnd != lastStart

	e.doc.BeginAtomicEdit()
	defer e.doc.EndAtomicEdit()

	for i := first; i < last; i++ {
		if err := e.decreaseLineIndent(i); err != nil {
			return e.surface("decrease indent", err)
		}
	}
	if unindentLast {
		if err := e.decreaseLineIndent(last); err != nil {
			return e.surface("decrease indent", err)
		}
	}

	if first != last {
		e.reselectLines(first, last)
	} else {
		e.SetCaret(e.clamp(e.dot))
	}
	return nil
}

func (e *Editor) decreaseLineIndent(line int) error {
	start, text, err := e.lineTextBounds(line)
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return nil
	}
	switch text[0] {
	case '\t':
		return e.doc.Remove(start, 1)
	case ' ':
		remove := 1
		for remove < len(text) && remove < e.opts.TabSize && text[remove] == ' ' {
			remove++
		}
		return e.doc.Remove(start, remove)
	}
	return nil
}

// reselectLines selects the whole affected line range after a block
// indent operation, first line start through last line end.
func (e *Editor) reselectLines(first, last int) {
	start, err := e.doc.LineStartOffset(first)
	if err != nil {
		return
	}
	end, err := e.doc.LineEndOffset(last)
	if err != nil {
		return
	}
	e.Select(start, end)
}
