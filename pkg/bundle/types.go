package bundle

// Arguments holds the command-line arguments for a copy run.
type Arguments struct {
	Paths           []string // Files and directories to aggregate
	CargoTomlPath   string   // Explicit Cargo.toml overriding detection
	PyprojectPath   string   // Explicit pyproject.toml overriding detection
	ExcludePatterns []string // Extra gitignore-style patterns from the command line
	GlobalIgnore    string   // Path to the global ignore file
	MaxFileSizeKB   int      // Maximum size of files to include (in KB)
}

// FileEntry is one collected file: its slash-separated path relative to
// the root it was collected under, and its full text content.
type FileEntry struct {
	Path    string
	Content string
}

// Sink receives the assembled document.
type Sink interface {
	// Write places the document at its destination.
	Write(text string) error
	// SuccessMessage is the summary line printed after a successful write.
	SuccessMessage() string
}

// DefaultMaxFileSizeKB is the size threshold above which files are
// skipped with a notice.
const DefaultMaxFileSizeKB = 100
