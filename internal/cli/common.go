package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textkit/internal/configloader"
	"github.com/yaklabco/textkit/internal/logging"
	"github.com/yaklabco/textkit/internal/ui/pretty"
	"github.com/yaklabco/textkit/pkg/config"
	"github.com/yaklabco/textkit/pkg/document"
	"github.com/yaklabco/textkit/pkg/fsutil"
	"github.com/yaklabco/textkit/pkg/lang"
)

// commandContext returns the command's context, falling back to the
// background context when Cobra was driven without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadEditorOptions builds the effective editor options for one command
// invocation: defaults, then the discovered or explicit config file,
// then environment overrides.
func loadEditorOptions(cmd *cobra.Command) (*config.Options, error) {
	logger := logging.Default()

	// The explicit config path comes from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	if result.LoadedFrom != "" {
		logger.Debug("loaded configuration from", logging.FieldPath, result.LoadedFrom)
	}

	return result.Options, nil
}

// openDocument reads a file into a document and resolves its language.
// A non-empty languageName overrides content-based detection.
func openDocument(ctx context.Context, path, languageName string) (*document.Document, *fsutil.FileInfo, *lang.Language, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}

	var language *lang.Language
	if languageName != "" {
		language, err = lang.Get(languageName)
		if err != nil {
			return nil, nil, nil, err
		}
	} else {
		language = lang.Detect(path, content)
	}

	logging.Default().Debug("opened document",
		logging.FieldPath, path,
		logging.FieldLanguage, language.Name,
		logging.FieldBytes, len(content),
	)

	return document.New(string(content)), info, language, nil
}

// outputStyles builds the output styles from the persistent --color flag.
func outputStyles(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}
