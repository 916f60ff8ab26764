// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Document fields.
	FieldLanguage = "language"
	FieldLines    = "lines"
	FieldBytes    = "bytes"
	FieldLine     = "line"
	FieldOffset   = "offset"

	// Fold fields.
	FieldFolds     = "folds"
	FieldFoldStart = "fold_start"
	FieldFoldEnd   = "fold_end"

	// Printing fields.
	FieldPage      = "page"
	FieldPages     = "pages"
	FieldPageWidth = "page_width"

	// Macro fields.
	FieldMacro   = "macro"
	FieldActions = "actions"
	FieldAction  = "action"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
