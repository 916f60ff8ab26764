// Package config defines the editor behavior options and their YAML
// serialization. Options are plain data; the editing engine reads them
// on every action, so toggling a field takes effect immediately.
package config

import (
	"fmt"
)

// Options control the editing engine's automatic behaviors.
type Options struct {
	// TabSize is the display width of a tab stop, in columns.
	TabSize int `yaml:"tab_size"`

	// TabsEmulated replaces typed tabs with spaces up to TabSize.
	TabsEmulated bool `yaml:"tabs_emulated"`

	// AutoIndent copies the previous line's leading whitespace onto new
	// lines inserted with a line break.
	AutoIndent bool `yaml:"auto_indent"`

	// ClearWhitespaceLines empties whitespace-only lines when a line
	// break is inserted on them.
	ClearWhitespaceLines bool `yaml:"clear_whitespace_lines"`

	// CloseCurlyBraces inserts a matching '}' after a line break
	// following an unmatched '{'.
	CloseCurlyBraces bool `yaml:"close_curly_braces"`

	// CloseMarkupTags completes "</" with the open tag's name in markup
	// languages.
	CloseMarkupTags bool `yaml:"close_markup_tags"`

	// InsertPairedCharacters enables bracket/quote pairing and
	// selection wrapping.
	InsertPairedCharacters bool `yaml:"insert_paired_characters"`

	// CodeFolding enables fold computation and fold-aware navigation.
	CodeFolding bool `yaml:"code_folding"`
}

// Default returns the options a fresh editor starts with.
func Default() *Options {
	return &Options{
		TabSize:                4,
		TabsEmulated:           false,
		AutoIndent:             true,
		ClearWhitespaceLines:   true,
		CloseCurlyBraces:       true,
		CloseMarkupTags:        true,
		InsertPairedCharacters: true,
		CodeFolding:            true,
	}
}

// Validate checks option values for internal consistency.
func (o *Options) Validate() error {
	if o.TabSize < 1 {
		return fmt.Errorf("tab_size must be at least 1, got %d", o.TabSize)
	}
	return nil
}

// SoftTab returns the string one typed tab inserts: "\t", or TabSize
// spaces when tabs are emulated.
func (o *Options) SoftTab() string {
	if !o.TabsEmulated {
		return "\t"
	}
	tab := make([]byte, o.TabSize)
	for i := range tab {
		tab[i] = ' '
	}
	return string(tab)
}
