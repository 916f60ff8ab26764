package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textkit/internal/logging"
	"github.com/yaklabco/textkit/internal/ui/pretty"
	"github.com/yaklabco/textkit/pkg/fold"
	"github.com/yaklabco/textkit/pkg/token"
)

type foldsFlags struct {
	language    string
	collapseAll bool
}

func newFoldsCommand() *cobra.Command {
	flags := &foldsFlags{}

	cmd := &cobra.Command{
		Use:   "folds <file>",
		Short: "Show the fold regions of a file",
		Long: `Compute and print the foldable regions of a file as an indented
tree. Code folds cover brace blocks, comment folds cover multi-line
comments. Child folds nest under their parents.

Examples:
  textkit folds main.go
  textkit folds --collapse-all main.go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFolds(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "language name (default: detect)")
	cmd.Flags().BoolVar(&flags.collapseAll, "collapse-all", false, "mark every fold collapsed")

	return cmd
}

func runFolds(cmd *cobra.Command, path string, flags *foldsFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	opts, err := loadEditorOptions(cmd)
	if err != nil {
		return err
	}
	if !opts.CodeFolding {
		logger.Warn("code folding is disabled by configuration")
		return nil
	}

	doc, _, language, err := openDocument(ctx, path, flags.language)
	if err != nil {
		return err
	}

	cache := token.NewCache(doc, language.NewLexer())
	manager := fold.NewManager(language)
	manager.Rebuild(doc.Bytes(), cache.All(), cache.CarryStates())

	if flags.collapseAll {
		manager.CollapseAll(nil)
	}

	logger.Debug("folds computed",
		logging.FieldLanguage, language.Name,
		logging.FieldFolds, manager.FoldCount(),
	)

	renderer := pretty.NewFoldRenderer(outputStyles(cmd))
	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(manager))

	return nil
}
