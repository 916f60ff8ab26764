package macro_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textkit/pkg/macro"
)

func TestMacroRoundTrip(t *testing.T) {
	t.Parallel()

	m := &macro.Macro{
		Name: "insert header",
		Records: []macro.Record{
			{ID: "default-typed", Command: "// header"},
			{ID: "insert-break", Command: ""},
			{ID: "insert-quote", Command: `"`},
		},
	}

	data, err := m.MarshalXMLBytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), "<macroName>insert header</macroName>")
	assert.Contains(t, string(data), `<action id="default-typed">`)

	got, err := macro.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMarshalStripsControlChars(t *testing.T) {
	t.Parallel()

	// Control characters cannot survive the XML form; they drop at
	// serialization time, not before.
	m := &macro.Macro{
		Name: "m",
		Records: []macro.Record{
			{ID: "default-typed", Command: "a\x01b\tc"},
		},
	}

	data, err := m.MarshalXMLBytes()
	require.NoError(t, err)

	got, err := macro.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Records[0].Command)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	m, err := macro.Parse([]byte("<macro><action id="))
	require.Error(t, err)
	assert.Nil(t, m, "a malformed file installs nothing")
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	m := &macro.Macro{
		Name: "saved",
		Records: []macro.Record{
			{ID: "default-typed", Command: "abc"},
		},
	}

	path := filepath.Join(t.TempDir(), "saved.macro.xml")
	require.NoError(t, m.Save(context.Background(), path))

	got, err := macro.Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	m, err := macro.Load(filepath.Join(t.TempDir(), "nope.xml"))
	require.Error(t, err)
	assert.Nil(t, m)
}
