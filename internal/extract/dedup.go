// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/code-extractor/pkg/types"
)

const (
	// DedupLineWindow is the start-line distance below which two blocks may
	// be duplicates.
	DedupLineWindow = 5

	// DedupPrefixLength is how many leading characters of an indented block
	// must appear inside a nearby block for it to count as a duplicate.
	DedupPrefixLength = 100
)

// Dedup returns the indented blocks that do not duplicate a known block.
// Known blocks are the fenced blocks plus indented blocks accepted earlier in
// the same pass. Fenced detections are authoritative and are never dropped.
func Dedup(fenced, indented []types.CodeBlock) []types.CodeBlock {
	known := make([]types.CodeBlock, 0, len(fenced)+len(indented))
	known = append(known, fenced...)

	var kept []types.CodeBlock
	for _, b := range indented {
		if isDuplicate(b, known) {
			continue
		}
		kept = append(kept, b)
		known = append(known, b)
	}
	return kept
}

func isDuplicate(b types.CodeBlock, known []types.CodeBlock) bool {
	prefix := runePrefix(b.Content, DedupPrefixLength)
	for _, k := range known {
		if abs(b.StartLine-k.StartLine) < DedupLineWindow && strings.Contains(k.Content, prefix) {
			return true
		}
	}
	return false
}

// runePrefix returns the first n characters of s.
func runePrefix(s string, n int) string {
	i := 0
	for off := range s {
		if i == n {
			return s[:off]
		}
		i++
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
