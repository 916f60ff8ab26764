package lang

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Detect maps a filename and its content to a registered language
// descriptor. It uses go-enry for the filename/content classification
// and folds the detected language into one of the built-in descriptor
// families. Unknown or low-confidence results fall back to Plain.
func Detect(filename string, content []byte) *Language {
	name := enry.GetLanguage(filename, content)
	if name == "" {
		if lang, safe := enry.GetLanguageByShebang(content); safe {
			name = lang
		}
	}
	return ForName(name)
}

// ForName folds a go-enry language name into a built-in descriptor.
// Brace-block languages share the CLike descriptor; tag languages map to
// Markup or BBCode; everything else is Plain.
func ForName(name string) *Language {
	switch strings.ToLower(name) {
	case "c", "c++", "c#", "go", "java", "javascript", "typescript",
		"rust", "kotlin", "scala", "swift", "dart", "php", "css", "json":
		return CLike
	case "html", "xml", "svg", "xhtml":
		return Markup
	case "bbcode":
		return BBCode
	default:
		return Plain
	}
}
