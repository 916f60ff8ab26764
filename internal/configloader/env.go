package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/textkit/pkg/config"
)

// envVarPrefix is the prefix for all textkit environment variables.
const envVarPrefix = "TEXTKIT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeBool envFieldType = iota
	envTypeInt
)

// envMapping binds an environment variable suffix to an Options field.
type envMapping struct {
	typ   envFieldType
	apply func(opts *config.Options, b bool, i int)
}

// envMappings maps environment variable names (without prefix) to option fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"TAB_SIZE": {typ: envTypeInt,
		apply: func(o *config.Options, _ bool, i int) { o.TabSize = i }},
	"TABS_EMULATED": {typ: envTypeBool,
		apply: func(o *config.Options, b bool, _ int) { o.TabsEmulated = b }},
	"AUTO_INDENT": {typ: envTypeBool,
		apply: func(o *config.Options, b bool, _ int) { o.AutoIndent = b }},
	"CLEAR_WHITESPACE_LINES": {typ: envTypeBool,
		apply: func(o *config.Options, b bool, _ int) { o.ClearWhitespaceLines = b }},
	"CLOSE_CURLY_BRACES": {typ: envTypeBool,
		apply: func(o *config.Options, b bool, _ int) { o.CloseCurlyBraces = b }},
	"CLOSE_MARKUP_TAGS": {typ: envTypeBool,
		apply: func(o *config.Options, b bool, _ int) { o.CloseMarkupTags = b }},
	"INSERT_PAIRED_CHARACTERS": {typ: envTypeBool,
		apply: func(o *config.Options, b bool, _ int) { o.InsertPairedCharacters = b }},
	"CODE_FOLDING": {typ: envTypeBool,
		apply: func(o *config.Options, b bool, _ int) { o.CodeFolding = b }},
}

// LoadFromEnv applies environment variable overrides to the options.
// Environment variables are prefixed with TEXTKIT_ (e.g., TEXTKIT_TAB_SIZE).
func LoadFromEnv(opts *config.Options) error {
	if opts == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		switch mapping.typ {
		case envTypeBool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
			}
			mapping.apply(opts, b, 0)
		case envTypeInt:
			i, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer for %s: %q", envVar, value)
			}
			mapping.apply(opts, false, i)
		}
	}

	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"TEXTKIT_TAB_SIZE":                 "Display width of a tab stop, in columns",
		"TEXTKIT_TABS_EMULATED":            "Replace typed tabs with spaces: true or false",
		"TEXTKIT_AUTO_INDENT":              "Copy leading whitespace onto new lines: true or false",
		"TEXTKIT_CLEAR_WHITESPACE_LINES":   "Empty whitespace-only lines on line break: true or false",
		"TEXTKIT_CLOSE_CURLY_BRACES":       "Auto-close unmatched '{' on line break: true or false",
		"TEXTKIT_CLOSE_MARKUP_TAGS":        "Complete closing markup tags: true or false",
		"TEXTKIT_INSERT_PAIRED_CHARACTERS": "Pair brackets and quotes: true or false",
		"TEXTKIT_CODE_FOLDING":             "Compute folds and fold-aware navigation: true or false",
	}
}
