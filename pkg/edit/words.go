package edit

// DeletePrevWord deletes from the caret back to the previous word
// start: trailing whitespace first, then the word or symbol run before
// it. At a line start the deletion swallows the line terminator.
func (e *Editor) DeletePrevWord() error {
	if e.rejected() {
		return nil
	}
	e.recordAction(ActionDeletePrevWord, "")

	end := e.dot
	start, err := e.navContext(end).PreviousWordStartForDelete(end)
	if err != nil {
		return e.surface("delete previous word", err)
	}
	if start >= end {
		return nil
	}
	if err := e.doc.Remove(start, end-start); err != nil {
		return e.surface("delete previous word", err)
	}
	e.SetCaret(start)
	return nil
}

// SelectWord selects the word at the caret: the selection runs from the
// word's start to its end. Works on read-only editors.
func (e *Editor) SelectWord() error {
	e.recordAction(ActionSelectWord, "")

	ctx := e.navContext(e.dot)
	start, err := ctx.WordStart(e.dot)
	if err != nil {
		return e.surface("select word", err)
	}
	end, err := ctx.WordEnd(start)
	if err != nil {
		return e.surface("select word", err)
	}
	e.Select(start, end)
	return nil
}
