package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/code-extractor/internal/batch"
	"github.com/pdiddy/code-extractor/internal/document"
	"github.com/pdiddy/code-extractor/internal/output"
	"github.com/pdiddy/code-extractor/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files or globs...]",
	Short: "Extract code blocks from documents into per-topic files",
	Long: `Extract reads each document, finds fenced and indented code blocks,
labels them with a language, and writes them to <output>/<topic>/ together
with a metadata.json. Documents that cannot be read are reported and
skipped; the command exits non-zero if any document failed.

Arguments may be plain paths or doublestar globs such as "notes/**/*.md".`,
	RunE: runExtract,
}

// extractFlagKeys maps viper config keys to the extract flags that set them.
var extractFlagKeys = map[string]string{
	"output_dir":     "output",
	"verbose":        "verbose",
	"dry_run":        "dry-run",
	"include":        "include",
	"max_file_size":  "max-file-size",
	"summary_file":   "summary",
	"summary_format": "summary-format",
}

func init() {
	extractCmd.Flags().StringP("output", "o", output.DefaultDir, "output directory")
	extractCmd.Flags().BoolP("verbose", "v", false, "list every extracted file")
	extractCmd.Flags().Bool("dry-run", false, "report planned files without writing")
	extractCmd.Flags().StringSlice("include", nil, "additional glob patterns to process")
	extractCmd.Flags().Int64("max-file-size", 0, "skip documents larger than this many bytes (0 = no limit)")
	extractCmd.Flags().String("summary", "", "write the batch summary to this file")
	extractCmd.Flags().String("summary-format", "yaml", "summary format: yaml or json")
	extractCmd.Flags().Bool("json", false, "print per-document results as JSON instead of status lines")

	for key, flag := range extractFlagKeys {
		if err := viper.BindPFlag(key, extractCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding --%s to %s: %v", flag, key, err))
		}
	}

	rootCmd.AddCommand(extractCmd)
}

// extractConfig assembles the run settings from flags, config file and
// environment, in viper's precedence order.
func extractConfig() types.ExtractorConfig {
	outDir := viper.GetString("output_dir")
	if outDir == "" {
		outDir = output.DefaultDir
	}
	return types.ExtractorConfig{
		Input: types.InputConfig{
			Include:     viper.GetStringSlice("include"),
			MaxFileSize: viper.GetInt64("max_file_size"),
		},
		Output: types.OutputConfig{
			OutputDir:     outDir,
			DryRun:        viper.GetBool("dry_run"),
			SummaryFile:   viper.GetString("summary_file"),
			SummaryFormat: types.SummaryFormat(viper.GetString("summary_format")),
		},
		Verbose: viper.GetBool("verbose"),
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractConfig()

	names, err := document.Expand(args, cfg.Input.Include)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("provide one or more files or glob patterns")
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")

	var progress io.Writer = os.Stdout
	if jsonOutput {
		progress = os.Stderr
	}

	runner := &batch.Runner{
		Reader:  document.NewFileReader(cfg.Input),
		Sink:    output.NewWriter(cfg.Output),
		Out:     progress,
		Verbose: cfg.Verbose,
	}

	summary, stats, runErr := runner.Run(cmd.Context(), types.NewStats(), names)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary.Results); err != nil {
			return err
		}
	}
	batch.PrintStats(progress, stats)

	if cfg.Output.SummaryFile != "" && !cfg.Output.DryRun {
		if err := output.WriteSummary(cfg.Output.SummaryFile, cfg.Output.SummaryFormat, stats); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed", summary.Failed)
	}
	return nil
}
