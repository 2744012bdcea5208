package types

// SummaryFormat selects the serialization of the batch summary file.
type SummaryFormat string

const (
	SummaryYAML SummaryFormat = "yaml"
	SummaryJSON SummaryFormat = "json"
)

// InputConfig holds settings for locating and reading source documents.
type InputConfig struct {
	// Include lists extra doublestar glob patterns (e.g. "notes/**/*.md")
	// expanded in addition to the command-line arguments.
	Include []string `json:"include" yaml:"include"`

	// MaxFileSize rejects documents larger than this many bytes (0 = no limit).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`
}

// OutputConfig holds settings for writing extracted blocks.
type OutputConfig struct {
	// OutputDir is the base directory; each topic gets a subdirectory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DryRun reports planned paths without touching the filesystem.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// SummaryFile, when set, receives the batch Stats after the run.
	SummaryFile string `json:"summary_file,omitempty" yaml:"summary_file,omitempty"`

	// SummaryFormat selects yaml or json for SummaryFile.
	SummaryFormat SummaryFormat `json:"summary_format" yaml:"summary_format"`
}

// ExtractorConfig groups all settings for an extract run.
type ExtractorConfig struct {
	Input  InputConfig  `json:"input" yaml:"input"`
	Output OutputConfig `json:"output" yaml:"output"`

	// Verbose lists every written file with its language and line count.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
