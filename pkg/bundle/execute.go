package bundle

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"codeclip/pkg/ignore"
	"codeclip/pkg/manifest"
)

// Run executes the full pipeline: load extra ignore patterns, collect
// files, detect the project manifest, assemble the document and hand it
// to the sink. Empty collections and unknown project types still succeed;
// only a sink failure comes back as an error.
func Run(args Arguments, sink Sink, logger *zap.Logger) error {
	if len(args.Paths) == 0 {
		return errors.New("no paths given")
	}
	logger.Debug("Starting copy process", zap.Strings("paths", args.Paths))

	fmt.Println("Processing paths...")

	globalIgnorePath := args.GlobalIgnore
	if globalIgnorePath == "" {
		globalIgnorePath = os.Getenv("CODECLIP_IGNORE")
	}
	extra := ignore.Load(globalIgnorePath, dirRoots(args.Paths), args.ExcludePatterns, logger)

	entries := CollectFiles(args.Paths, extra, args.MaxFileSizeKB, logger)
	if len(entries) == 0 {
		logger.Warn("No files to process after filtering")
	}

	kind, info := manifest.Detect(args.Paths[0], manifest.Overrides{
		CargoToml: args.CargoTomlPath,
		Pyproject: args.PyprojectPath,
	}, logger)

	document := FormatDocument(entries, kind, info)

	if err := sink.Write(document); err != nil {
		logger.Error("Failed to write output", zap.Error(err))
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Println(color.GreenString(sink.SuccessMessage()))
	fmt.Printf("Files processed: %d\n", len(entries))
	fmt.Printf("Total size: %d characters\n", len(document))
	fmt.Printf("Project type: %s\n", color.CyanString(kind.String()))

	return nil
}

// dirRoots filters the arguments down to directory roots, where
// .clipignore files are looked up.
func dirRoots(paths []string) []string {
	var roots []string
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			roots = append(roots, path)
		}
	}
	return roots
}
