// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/code-extractor/pkg/types"
)

const (
	// MinIndentedLines is the physical line count a run must exceed.
	MinIndentedLines = 3

	// MinIndentedLength is the trimmed length a run must exceed.
	MinIndentedLength = 50
)

// isIndented reports whether line starts with four spaces or a tab.
func isIndented(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// ScanIndented returns code blocks built from runs of indented lines. Blank
// lines inside a run are kept; the first non-indented, non-blank line ends it.
// Runs are kept only when they are long enough and look like code.
func ScanIndented(content string) []types.CodeBlock {
	lines := strings.Split(content, "\n")

	var (
		blocks []types.CodeBlock
		run    []string
		start  int
	)

	flush := func() {
		if b, ok := indentedBlock(run, start); ok {
			blocks = append(blocks, b)
		}
		run = nil
	}

	for i, line := range lines {
		if isIndented(line) || (strings.TrimSpace(line) == "" && len(run) > 0) {
			if len(run) == 0 {
				start = i + 1
			}
			run = append(run, line)
			continue
		}
		flush()
	}
	flush()

	return blocks
}

// indentedBlock applies the size and code-likelihood filters to a run.
// The line count includes trailing blank lines of the run.
func indentedBlock(run []string, start int) (types.CodeBlock, bool) {
	if len(run) <= MinIndentedLines {
		return types.CodeBlock{}, false
	}

	body := strings.TrimSpace(strings.Join(run, "\n"))
	if body == "" || utf8.RuneCountInString(body) <= MinIndentedLength {
		return types.CodeBlock{}, false
	}
	if !LooksLikeCode(body) {
		return types.CodeBlock{}, false
	}

	return newBlock(body, "", start), true
}
