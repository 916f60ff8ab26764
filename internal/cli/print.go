package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textkit/internal/logging"
	"github.com/yaklabco/textkit/pkg/printing"
)

type printFlags struct {
	width    int
	lines    int
	wordWrap bool
	page     int
	tabSize  int
}

func newPrintCommand() *cobra.Command {
	flags := &printFlags{}

	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Paginate a file into fixed-size pages",
		Long: `Split a file into pages of a fixed number of drawn lines, each at
most a fixed number of display columns wide. Tabs expand to the next
tab stop and wide runes count as two columns. With --word-wrap, long
lines break at natural boundaries instead of mid-word.

Examples:
  textkit print report.txt
  textkit print --width 72 --lines-per-page 40 report.txt
  textkit print --word-wrap --page 2 report.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 80, "maximum display columns per line")
	cmd.Flags().IntVar(&flags.lines, "lines-per-page", 60, "drawn lines per page")
	cmd.Flags().BoolVar(&flags.wordWrap, "word-wrap", false, "break long lines at word boundaries")
	cmd.Flags().IntVar(&flags.page, "page", 0, "print only this page (1-based, 0 = all)")
	cmd.Flags().IntVar(&flags.tabSize, "tab-size", 0, "columns per tab stop (0 = from config)")

	return cmd
}

func runPrint(cmd *cobra.Command, path string, flags *printFlags) error {
	ctx := commandContext(cmd)

	opts, err := loadEditorOptions(cmd)
	if err != nil {
		return err
	}

	tabSize := flags.tabSize
	if tabSize <= 0 {
		tabSize = opts.TabSize
	}

	doc, _, _, err := openDocument(ctx, path, "")
	if err != nil {
		return err
	}

	paginator := &printing.Paginator{
		MaxCharsPerLine: flags.width,
		MaxLinesPerPage: flags.lines,
		TabSize:         tabSize,
		WordWrap:        flags.wordWrap,
	}

	total := paginator.PageCount(doc)
	logging.Default().Debug("paginated",
		logging.FieldPath, path,
		logging.FieldPages, total,
		logging.FieldPageWidth, flags.width,
	)

	styles := outputStyles(cmd)
	out := cmd.OutOrStdout()

	first, last := 0, total-1
	if flags.page > 0 {
		if flags.page > total {
			return fmt.Errorf("page %d out of range: document has %d page(s)", flags.page, total)
		}
		first, last = flags.page-1, flags.page-1
	}

	for page := first; page <= last; page++ {
		lines, ok := paginator.Page(doc, page)
		if !ok {
			break
		}
		header := fmt.Sprintf("-- page %d of %d --", page+1, total)
		fmt.Fprintln(out, styles.PageHeader.Render(header))
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
	}

	return nil
}
