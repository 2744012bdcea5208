//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and runs it over the documents matched by
// $EXTRACT_INPUT (default "docs/**/*.md"), writing into extracted_code/ and a
// YAML summary next to it.
func Extract() error {
	mg.Deps(Build, Init)

	pattern := os.Getenv("EXTRACT_INPUT")
	if pattern == "" {
		pattern = "docs/**/*.md"
	}

	return sh.RunV(filepath.Join(binDir, binName), "extract",
		"--output", outputDir,
		"--summary", filepath.Join(outputDir, "summary.yaml"),
		"--verbose",
		pattern,
	)
}
