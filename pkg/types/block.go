// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the code-extractor pipeline.
// Covers the extraction engine (CodeBlock), identifier derivation
// (FileDescriptor, Metadata), per-document output (ExtractionResult), and the
// batch counters (Stats).
package types

// CodeBlock is one detected code span inside a source document. A block is
// created once by a scanner and never mutated afterwards.
type CodeBlock struct {
	// Content is the trimmed text of the span. Never empty.
	Content string `json:"content" yaml:"content"`

	// Language is a classifier label (e.g. "python") or the literal fence tag
	// when the block declared one. "txt" when nothing matched.
	Language string `json:"language" yaml:"language"`

	// StartLine is the 1-based line of the span within its document.
	StartLine int `json:"start_line" yaml:"start_line"`

	// Hash is a short deterministic digest of Content (8 hex characters).
	Hash string `json:"hash" yaml:"hash"`
}

// FileDescriptor describes the file a CodeBlock is saved as. FileDescriptors
// are index-aligned with the blocks they were derived from.
type FileDescriptor struct {
	// FileName is the base name, e.g. "code_01_python_1a2b3c4d.py".
	FileName string `json:"file_name" yaml:"file_name"`

	// Content is the block content written to the file.
	Content string `json:"-" yaml:"-"`

	Language  string `json:"language" yaml:"language"`
	LineCount int    `json:"lines" yaml:"lines"`
	Hash      string `json:"hash" yaml:"hash"`
	Extension string `json:"extension" yaml:"extension"`
}

// Metadata summarizes one processed document. It is written next to the
// extracted files as metadata.json.
type Metadata struct {
	SourceFile  string           `json:"source_file" yaml:"source_file"`
	Topic       string           `json:"topic" yaml:"topic"`
	TotalBlocks int              `json:"total_blocks" yaml:"total_blocks"`
	CodeFiles   []FileDescriptor `json:"code_files" yaml:"code_files"`

	// ProcessedAt is an RFC 3339 UTC timestamp.
	ProcessedAt string `json:"processed_at" yaml:"processed_at"`
}

// MessageNoBlocks is the ExtractionResult.Message for documents without code.
const MessageNoBlocks = "No code blocks found"

// ExtractionResult is the output of processing one document. It is always
// returned, even for unreadable documents or documents without code.
type ExtractionResult struct {
	// Source is the document name as given to the batch.
	Source string `json:"source" yaml:"source"`

	// Topic is the slug grouping all blocks of this document.
	Topic string `json:"topic,omitempty" yaml:"topic,omitempty"`

	// Blocks are ordered fenced-first, then indented, each in scan order.
	Blocks []CodeBlock `json:"blocks,omitempty" yaml:"blocks,omitempty"`

	// Files holds one descriptor per block; Files[i] derives from Blocks[i].
	Files []FileDescriptor `json:"files,omitempty" yaml:"files,omitempty"`

	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Error records a document read failure. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Message carries a non-error outcome such as MessageNoBlocks.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Failed reports whether the document could not be read.
func (r ExtractionResult) Failed() bool {
	return r.Error != ""
}

// Empty reports whether the document was read but yielded no blocks.
func (r ExtractionResult) Empty() bool {
	return r.Error == "" && len(r.Blocks) == 0
}
