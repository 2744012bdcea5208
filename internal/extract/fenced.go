// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/code-extractor/internal/pattern"
	"github.com/pdiddy/code-extractor/pkg/types"
)

// MinFencedLength is the trimmed length a fenced block must exceed to be kept.
const MinFencedLength = 20

// fenceRe matches ```tag\n ... \n``` with an optional \w+ tag. The body is
// lazy so adjacent fences pair up in order.
var fenceRe = pattern.MustCompile("(?s)```(\\w+)?\\n(.*?)\\n```")

// ScanFenced returns the fenced blocks of content in order of appearance.
// A declared tag is used verbatim as the language; untagged blocks are
// classified from their content.
func ScanFenced(content string) []types.CodeBlock {
	var blocks []types.CodeBlock

	for _, m := range fenceRe.FindAllStringSubmatchIndex(content, -1) {
		body := strings.TrimSpace(content[m[4]:m[5]])
		if body == "" || utf8.RuneCountInString(body) <= MinFencedLength {
			continue
		}

		var tag string
		if m[2] >= 0 {
			tag = content[m[2]:m[3]]
		}

		blocks = append(blocks, newBlock(body, tag, lineAt(content, m[0])))
	}

	return blocks
}

// lineAt returns the 1-based line number of byte offset off in content.
func lineAt(content string, off int) int {
	return strings.Count(content[:off], "\n") + 1
}
