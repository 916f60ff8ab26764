package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textkit/internal/logging"
	"github.com/yaklabco/textkit/pkg/edit"
	"github.com/yaklabco/textkit/pkg/fsutil"
	"github.com/yaklabco/textkit/pkg/macro"
)

type playFlags struct {
	language string
	output   string
	inPlace  bool
	backup   bool
	caret    int
}

func newPlayCommand() *cobra.Command {
	flags := &playFlags{}

	cmd := &cobra.Command{
		Use:   "play <macro-file> <file>",
		Short: "Replay a recorded macro against a file",
		Long: `Load a recorded macro and replay its actions against a file. The
result goes to stdout unless --output or --in-place redirects it.
Playback stops at the first failing action; rejected actions (those
that would only have rung the bell interactively) are skipped and
counted.

Examples:
  textkit play insert-header.xml main.go
  textkit play --in-place --backup fixup.xml notes.txt
  textkit play --output out.txt --caret 10 fixup.xml notes.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "language name (default: detect)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the result to this path")
	cmd.Flags().BoolVar(&flags.inPlace, "in-place", false, "write the result back to the input file")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a sidecar backup when writing in place")
	cmd.Flags().IntVar(&flags.caret, "caret", 0, "initial caret offset")

	return cmd
}

// bellCounter counts rejected actions during playback.
type bellCounter struct {
	rings int
}

func (b *bellCounter) ErrorFeedback() { b.rings++ }

func runPlay(cmd *cobra.Command, macroPath, filePath string, flags *playFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	if flags.inPlace && flags.output != "" {
		return fmt.Errorf("--in-place and --output are mutually exclusive")
	}

	opts, err := loadEditorOptions(cmd)
	if err != nil {
		return err
	}

	m, err := macro.Load(macroPath)
	if err != nil {
		return err
	}

	doc, info, language, err := openDocument(ctx, filePath, flags.language)
	if err != nil {
		return err
	}

	editor := edit.New(doc, language, opts)
	editor.SetCaret(flags.caret)

	bell := &bellCounter{}
	editor.SetFeedback(bell)

	err = macro.Play(m, func(rec macro.Record) error {
		return editor.Perform(rec.ID, rec.Command)
	})
	if err != nil {
		return fmt.Errorf("play macro %q: %w", m.Name, err)
	}

	logger.Info("macro applied",
		logging.FieldMacro, m.Name,
		logging.FieldActions, len(m.Records),
	)
	if bell.rings > 0 {
		logger.Warn("some actions were rejected", logging.FieldActions, bell.rings)
	}

	result := doc.Bytes()

	switch {
	case flags.inPlace:
		return writeInPlace(cmd, filePath, result, info, flags.backup)
	case flags.output != "":
		if err := fsutil.WriteAtomic(ctx, flags.output, result, 0); err != nil {
			return err
		}
		logger.Info("wrote result", logging.FieldOutput, flags.output)
		return nil
	default:
		fmt.Fprint(cmd.OutOrStdout(), string(result))
		return nil
	}
}

func writeInPlace(cmd *cobra.Command, path string, result []byte, info *fsutil.FileInfo, backup bool) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	// Refuse to clobber edits made while the macro was running.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return err
	}
	if modified {
		return fmt.Errorf("%s changed on disk during playback; not overwriting", path)
	}

	if backup {
		created, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return err
		}
		if created {
			logger.Debug("backup created", logging.FieldPath, fsutil.BackupPath(path))
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, result, info.Mode); err != nil {
		return err
	}
	logger.Info("wrote result", logging.FieldOutput, path)
	return nil
}
