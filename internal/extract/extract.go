// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates code spans inside free-form text. Fenced blocks
// (```lang ... ```) are found first; indented runs that look like code are
// added afterwards unless they duplicate a fenced block.
package extract

import (
	"strings"

	"github.com/pdiddy/code-extractor/internal/classify"
	"github.com/pdiddy/code-extractor/internal/identify"
	"github.com/pdiddy/code-extractor/pkg/types"
)

// Blocks returns every code block in content: all fenced blocks in scan
// order, then the non-duplicate indented blocks in scan order. Fenced blocks
// precede indented ones regardless of where they appear in the document.
func Blocks(content string) []types.CodeBlock {
	fenced := ScanFenced(content)
	indented := Dedup(fenced, ScanIndented(content))

	blocks := make([]types.CodeBlock, 0, len(fenced)+len(indented))
	blocks = append(blocks, fenced...)
	blocks = append(blocks, indented...)
	return blocks
}

// newBlock trims content and fills in the language and hash. An empty
// language is resolved by the classifier.
func newBlock(content, language string, startLine int) types.CodeBlock {
	content = strings.TrimSpace(content)
	if language == "" {
		language = classify.Classify(content)
	}
	return types.CodeBlock{
		Content:   content,
		Language:  language,
		StartLine: startLine,
		Hash:      identify.Hash(content),
	}
}
