package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textkit/internal/cli"
	"github.com/yaklabco/textkit/pkg/macro"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	cmd.SetArgs(append(args, "--color", "never"))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_Tokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sample.go", "x = 1 // done\n")

	out, err := execute(t, "tokens", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Identifier")
	assert.Contains(t, out, "CommentEOL")
	assert.Contains(t, out, `"x"`)
}

func TestIntegration_TokensMissingFile(t *testing.T) {
	_, err := execute(t, "tokens", filepath.Join(t.TempDir(), "nope.go"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
}

func TestIntegration_Folds(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sample.go", "func f() {\n\tx()\n}\n")

	out, err := execute(t, "folds", path)
	require.NoError(t, err)
	assert.Contains(t, out, "code lines 1-3")
}

func TestIntegration_Print(t *testing.T) {
	path := writeFile(t, t.TempDir(), "report.txt", "hello world\n")

	out, err := execute(t, "print", path, "--width", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "-- page 1 of 1 --")
	assert.Contains(t, out, "hello world")
}

func TestIntegration_PrintPageOutOfRange(t *testing.T) {
	path := writeFile(t, t.TempDir(), "report.txt", "hello\n")

	_, err := execute(t, "print", path, "--page", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestIntegration_PlayToStdout(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "notes.txt", "hello world\n")

	m := &macro.Macro{
		Name: "prepend marker",
		Records: []macro.Record{
			{ID: "default-typed", Command: "note: "},
		},
	}
	macroPath := filepath.Join(dir, "prepend.xml")
	require.NoError(t, m.Save(context.Background(), macroPath))

	out, err := execute(t, "play", macroPath, input)
	require.NoError(t, err)
	assert.Equal(t, "note: hello world\n", out)

	// Stdout playback leaves the input untouched.
	content, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(content))
}

func TestIntegration_PlayInPlaceWithBackup(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "notes.txt", "hello\n")

	m := &macro.Macro{
		Name: "shout",
		Records: []macro.Record{
			{ID: "default-typed", Command: "hey "},
		},
	}
	macroPath := filepath.Join(dir, "shout.xml")
	require.NoError(t, m.Save(context.Background(), macroPath))

	_, err := execute(t, "play", "--in-place", "--backup", macroPath, input)
	require.NoError(t, err)

	content, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, "hey hello\n", string(content))

	backup, err := os.ReadFile(input + ".textkit.bak")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(backup))
}

func TestIntegration_PlayConflictingOutputs(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "notes.txt", "hello\n")

	m := &macro.Macro{Name: "noop"}
	macroPath := filepath.Join(dir, "noop.xml")
	require.NoError(t, m.Save(context.Background(), macroPath))

	_, err := execute(t, "play", "--in-place", "--output", filepath.Join(dir, "out.txt"), macroPath, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestIntegration_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")

	_, err := execute(t, "init", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "tab_size: 4")

	// A second run without --force refuses to overwrite.
	_, err = execute(t, "init", "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "init", "--force", "--output", path)
	require.NoError(t, err)
}
