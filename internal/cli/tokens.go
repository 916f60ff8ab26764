package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/textkit/internal/logging"
	"github.com/yaklabco/textkit/internal/ui/pretty"
	"github.com/yaklabco/textkit/pkg/token"
)

type tokensFlags struct {
	language string
	width    int
}

func newTokensCommand() *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Show the token stream of a file",
		Long: `Tokenize a file and print its tokens as a table of line numbers,
offset spans, token kinds, and text. The language is detected from the
file name and content unless --language overrides it.

Examples:
  textkit tokens main.go
  textkit tokens --language markup page.html
  textkit tokens --width 120 wide.c`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "language name (default: detect)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "table width in columns (0 = terminal width)")

	return cmd
}

func runTokens(cmd *cobra.Command, path string, flags *tokensFlags) error {
	ctx := commandContext(cmd)
	logger := logging.Default()

	doc, _, language, err := openDocument(ctx, path, flags.language)
	if err != nil {
		return err
	}

	cache := token.NewCache(doc, language.NewLexer())
	lines := cache.All()

	logger.Debug("tokenized",
		logging.FieldLanguage, language.Name,
		logging.FieldLines, len(lines),
	)

	width := flags.width
	if width <= 0 {
		width = terminalWidth()
	}

	formatter := pretty.NewTokenTableFormatter(outputStyles(cmd), width)
	fmt.Fprint(cmd.OutOrStdout(), formatter.Format(doc.Bytes(), lines))

	return nil
}

// terminalWidth returns the width of the attached terminal, or 0 when
// stdout is not a terminal.
func terminalWidth() int {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
