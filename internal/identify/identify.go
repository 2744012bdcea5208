// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identify derives stable names for extracted code: a topic slug per
// document and a file descriptor (name, extension, line count, hash) per
// block.
package identify

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/code-extractor/internal/classify"
	"github.com/pdiddy/code-extractor/internal/pattern"
	"github.com/pdiddy/code-extractor/pkg/types"
)

const (
	// MaxTopicLength is the maximum number of characters in a topic slug.
	MaxTopicLength = 50

	// UnknownTopic is used when neither the document nor its name yields a topic.
	UnknownTopic = "unknown_topic"
)

// topicPatterns are tried in priority order; the first match wins.
var topicPatterns = []*regexp.Regexp{
	pattern.MustCompile(`(?mi)^#\s+(.+)$`),
	pattern.MustCompile(`(?mi)^##\s+(.+)$`),
	pattern.MustCompile(`(?mi)^Title:\s*(.+)$`),
	pattern.MustCompile(`(?mi)^Subject:\s*(.+)$`),
}

var (
	topicStripRe = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}-]`)
	spaceRunRe   = regexp.MustCompile(`[\s\p{Z}]+`)
)

// Topic derives the topic slug for a document from its first heading-like
// line, falling back to the file name without extension and then to
// UnknownTopic.
func Topic(name, content string) string {
	for _, re := range topicPatterns {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if slug := Slug(m[1]); slug != "" {
			return slug
		}
		break
	}

	if stem := fileStem(name); stem != "" {
		return stem
	}
	return UnknownTopic
}

// Slug strips punctuation from title, joins words with underscores and
// truncates the result to MaxTopicLength characters.
func Slug(title string) string {
	s := strings.TrimSpace(topicStripRe.ReplaceAllString(title, ""))
	s = spaceRunRe.ReplaceAllString(s, "_")
	return truncate(s, MaxTopicLength)
}

// fileStem returns the base name of path without its final extension. A
// dot file such as ".notes" keeps its full name.
func fileStem(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

func truncate(s string, n int) string {
	i := 0
	for off := range s {
		if i == n {
			return s[:off]
		}
		i++
	}
	return s
}

// FileName returns the file name for the block at 1-based index i:
// code_NN_language_hash.ext, or code_NN_hash.ext for unclassified blocks.
func FileName(i int, b types.CodeBlock) string {
	ext := classify.Extension(b.Language)
	if classify.IsFallback(b.Language) {
		return fmt.Sprintf("code_%02d_%s%s", i, b.Hash, ext)
	}
	return fmt.Sprintf("code_%02d_%s_%s%s", i, b.Language, b.Hash, ext)
}

// Describe returns one FileDescriptor per block, index-aligned with blocks.
func Describe(blocks []types.CodeBlock) []types.FileDescriptor {
	files := make([]types.FileDescriptor, len(blocks))
	for i, b := range blocks {
		files[i] = types.FileDescriptor{
			FileName:  FileName(i+1, b),
			Content:   b.Content,
			Language:  b.Language,
			LineCount: strings.Count(b.Content, "\n") + 1,
			Hash:      b.Hash,
			Extension: classify.Extension(b.Language),
		}
	}
	return files
}
