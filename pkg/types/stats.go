// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// Stats accumulates counters across one batch run. It is a caller-owned value:
// batch steps take a Stats and return the updated copy, so a Stats that was
// handed out is never modified behind the holder's back.
type Stats struct {
	// FilesProcessed counts documents that were read, with or without blocks.
	FilesProcessed int

	// FilesFailed counts documents that could not be read.
	FilesFailed int

	// CodeBlocksFound counts blocks across all processed documents.
	CodeBlocksFound int

	languages map[string]struct{}
	topics    map[string]struct{}
}

// NewStats returns an empty Stats.
func NewStats() Stats {
	return Stats{}
}

// Reset returns an empty Stats for an independent run.
func (s Stats) Reset() Stats {
	return Stats{}
}

// WithResult returns a copy of s with one document's outcome folded in.
// Failed documents only bump FilesFailed; documents without blocks count as
// processed but add no blocks, languages or topics.
func (s Stats) WithResult(r ExtractionResult) Stats {
	next := s.clone()
	if r.Failed() {
		next.FilesFailed++
		return next
	}

	next.FilesProcessed++
	if len(r.Blocks) == 0 {
		return next
	}

	next.CodeBlocksFound += len(r.Blocks)
	for _, b := range r.Blocks {
		next.languages[b.Language] = struct{}{}
	}
	if r.Topic != "" {
		next.topics[r.Topic] = struct{}{}
	}
	return next
}

// LanguagesDetected returns the distinct block languages, sorted.
func (s Stats) LanguagesDetected() []string {
	return sortedKeys(s.languages)
}

// TopicsCreated returns the distinct topic slugs, sorted.
func (s Stats) TopicsCreated() []string {
	return sortedKeys(s.topics)
}

// Snapshot returns a serializable view of s.
func (s Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		FilesProcessed:    s.FilesProcessed,
		FilesFailed:       s.FilesFailed,
		CodeBlocksFound:   s.CodeBlocksFound,
		LanguagesDetected: s.LanguagesDetected(),
		TopicsCreated:     s.TopicsCreated(),
	}
}

func (s Stats) clone() Stats {
	next := Stats{
		FilesProcessed:  s.FilesProcessed,
		FilesFailed:     s.FilesFailed,
		CodeBlocksFound: s.CodeBlocksFound,
		languages:       make(map[string]struct{}, len(s.languages)+1),
		topics:          make(map[string]struct{}, len(s.topics)+1),
	}
	for k := range s.languages {
		next.languages[k] = struct{}{}
	}
	for k := range s.topics {
		next.topics[k] = struct{}{}
	}
	return next
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StatsSnapshot is the exported form of Stats written to summary files.
type StatsSnapshot struct {
	FilesProcessed    int      `json:"files_processed" yaml:"files_processed"`
	FilesFailed       int      `json:"files_failed" yaml:"files_failed"`
	CodeBlocksFound   int      `json:"code_blocks_found" yaml:"code_blocks_found"`
	LanguagesDetected []string `json:"languages_detected" yaml:"languages_detected"`
	TopicsCreated     []string `json:"topics_created" yaml:"topics_created"`
}
