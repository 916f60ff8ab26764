package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textkit/internal/logging"
	"github.com/yaklabco/textkit/pkg/lang"
)

func newLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List registered languages",
		Long: `List the registered language descriptors with the editing traits
that drive tokenization, folding, and smart editing actions.`,
		Run: func(_ *cobra.Command, _ []string) {
			logger := logging.NewInteractive()

			names := lang.Names()
			sort.Strings(names)

			for _, name := range names {
				language, err := lang.Get(name)
				if err != nil {
					continue
				}

				comment := "-"
				if language.LineCommentStart != "" {
					comment = language.LineCommentStart
					if language.LineCommentEnd != "" {
						comment += " ... " + language.LineCommentEnd
					}
				}

				logger.Info(name,
					"comment", comment,
					"braces", language.CurlyBracesDenoteCodeBlocks,
					"markup", language.IsMarkup,
				)
			}
		},
	}

	return cmd
}
