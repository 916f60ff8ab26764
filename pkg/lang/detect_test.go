package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/textkit/pkg/lang"
)

func TestForName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want *lang.Language
	}{
		{"Go", lang.CLike},
		{"javascript", lang.CLike},
		{"C++", lang.CLike},
		{"HTML", lang.Markup},
		{"XML", lang.Markup},
		{"bbcode", lang.BBCode},
		{"Markdown", lang.Plain},
		{"", lang.Plain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Same(t, tc.want, lang.ForName(tc.name))
		})
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  string
		want     *lang.Language
	}{
		{
			name:     "go source",
			filename: "main.go",
			content:  "package main\n\nfunc main() {}\n",
			want:     lang.CLike,
		},
		{
			name:     "html file",
			filename: "index.html",
			content:  "<!DOCTYPE html>\n<html></html>\n",
			want:     lang.Markup,
		},
		{
			name:     "plain text",
			filename: "notes.txt",
			content:  "just some notes\n",
			want:     lang.Plain,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Same(t, tc.want, lang.Detect(tc.filename, []byte(tc.content)))
		})
	}
}
