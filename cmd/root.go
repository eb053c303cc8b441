package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeclip/pkg/bundle"
	"codeclip/pkg/clipboard"
	"codeclip/pkg/logging"
	"codeclip/pkg/version"
)

var (
	cargoTomlPath string
	pyprojectPath string
	excludes      []string
	globalIgnore  string
	maxFileSizeKB int
	toStdout      bool
	verbose       bool
)

// RootCmd is the base command; it performs the copy run itself.
var RootCmd = &cobra.Command{
	Use:   "codeclip <paths>...",
	Short: "Codeclip copies project source files to the clipboard",
	Long: `Codeclip aggregates the given files and directories into a single tagged
document, together with project metadata and a file tree, and places it on
the system clipboard for pasting into an LLM prompt.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(verbose, "codeclip", version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logging.Sync(logger)

		var sink bundle.Sink = clipboard.NewSystem()
		if toStdout {
			sink = clipboard.NewWriter(cmd.OutOrStdout())
		}

		return bundle.Run(bundle.Arguments{
			Paths:           args,
			CargoTomlPath:   cargoTomlPath,
			PyprojectPath:   pyprojectPath,
			ExcludePatterns: excludes,
			GlobalIgnore:    globalIgnore,
			MaxFileSizeKB:   maxFileSizeKB,
		}, sink, logger)
	},
}

func init() {
	RootCmd.Flags().StringVar(&cargoTomlPath, "cargo-toml", "", "explicit Cargo.toml to use for project metadata")
	RootCmd.Flags().StringVar(&pyprojectPath, "pyproject", "", "explicit pyproject.toml to use for project metadata")
	RootCmd.Flags().StringArrayVarP(&excludes, "exclude", "e", nil, "extra gitignore-style pattern to exclude (repeatable)")
	RootCmd.Flags().StringVar(&globalIgnore, "global-ignore", "", "global ignore file (default $CODECLIP_IGNORE)")
	RootCmd.Flags().IntVar(&maxFileSizeKB, "max-file-size", bundle.DefaultMaxFileSizeKB, "maximum file size to include, in KiB")
	RootCmd.Flags().BoolVar(&toStdout, "stdout", false, "write the document to stdout instead of the clipboard")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
