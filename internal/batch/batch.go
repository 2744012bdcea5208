// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the extraction engine over a sequence of documents and
// accumulates per-document results and run-wide Stats. Documents are
// processed strictly one at a time.
package batch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/code-extractor/internal/extract"
	"github.com/pdiddy/code-extractor/internal/identify"
	"github.com/pdiddy/code-extractor/pkg/types"
)

// Reader loads a document by name. Implementations own decoding.
type Reader interface {
	Read(ctx context.Context, name string) (types.Document, error)
}

// Sink persists the files of a result and returns the paths it wrote (or
// would write). A nil Sink discards results.
type Sink interface {
	Save(result types.ExtractionResult) ([]string, error)
}

// Process extracts, classifies and names the blocks of one document. It never
// fails: a document without code yields a result with MessageNoBlocks.
func Process(doc types.Document, now time.Time) types.ExtractionResult {
	blocks := extract.Blocks(doc.Text)
	if len(blocks) == 0 {
		return types.ExtractionResult{
			Source:  doc.Name,
			Message: types.MessageNoBlocks,
		}
	}

	topic := identify.Topic(doc.Name, doc.Text)
	files := identify.Describe(blocks)

	return types.ExtractionResult{
		Source: doc.Name,
		Topic:  topic,
		Blocks: blocks,
		Files:  files,
		Metadata: &types.Metadata{
			SourceFile:  doc.Name,
			Topic:       topic,
			TotalBlocks: len(blocks),
			CodeFiles:   files,
			ProcessedAt: now.UTC().Format(time.RFC3339),
		},
	}
}

// Step processes one document and returns its result together with stats
// updated by it. The stats passed in are not modified.
func Step(stats types.Stats, doc types.Document, now time.Time) (types.ExtractionResult, types.Stats) {
	result := Process(doc, now)
	return result, stats.WithResult(result)
}

// Failure builds the result recorded for a document that could not be read.
func Failure(name string, err error) types.ExtractionResult {
	return types.ExtractionResult{
		Source: name,
		Error:  fmt.Sprintf("failed to read file: %v", err),
	}
}

// Summary holds the per-document results of one Run in input order.
type Summary struct {
	Results   []types.ExtractionResult
	Extracted int
	Empty     int
	Failed    int
}

// Total returns the number of documents handled.
func (s Summary) Total() int {
	return s.Extracted + s.Empty + s.Failed
}

// HasFailures reports whether any document failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Runner drives a batch: read, process, save, report.
type Runner struct {
	Reader Reader
	Sink   Sink

	// Out receives one status line per document. Nil discards output.
	Out io.Writer

	// Verbose also lists every saved file.
	Verbose bool

	// Now stamps Metadata.ProcessedAt. Defaults to time.Now.
	Now func() time.Time
}

// Run processes names in order, folding each outcome into stats. A read or
// save failure is recorded on that document's result and the batch goes on.
// Cancelling ctx stops the run between documents; the summary and stats
// gathered so far are returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, stats types.Stats, names []string) (Summary, types.Stats, error) {
	w := r.Out
	if w == nil {
		w = io.Discard
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	var summary Summary

	for _, name := range names {
		select {
		case <-ctx.Done():
			return summary, stats, ctx.Err()
		default:
		}

		if r.Verbose {
			fmt.Fprintf(w, "processing %s\n", name)
		}

		doc, err := r.Reader.Read(ctx, name)
		if err != nil {
			result := Failure(name, err)
			fmt.Fprintf(w, "failed  %s: %s\n", name, result.Error)
			summary.Results = append(summary.Results, result)
			summary.Failed++
			stats = stats.WithResult(result)
			continue
		}

		result := Process(doc, now())

		if result.Empty() {
			fmt.Fprintf(w, "empty   %s: %s\n", name, result.Message)
			summary.Results = append(summary.Results, result)
			summary.Empty++
			stats = stats.WithResult(result)
			continue
		}

		var paths []string
		if r.Sink != nil {
			paths, err = r.Sink.Save(result)
			if err != nil {
				result.Error = fmt.Sprintf("failed to save blocks: %v", err)
				fmt.Fprintf(w, "failed  %s: %s\n", name, result.Error)
				summary.Results = append(summary.Results, result)
				summary.Failed++
				stats = stats.WithResult(result)
				continue
			}
		}

		fmt.Fprintf(w, "extracted %s -> %s (%d code blocks)\n", name, result.Topic, len(result.Blocks))
		if r.Verbose {
			for i, f := range result.Files {
				path := f.FileName
				if i < len(paths) {
					path = paths[i]
				}
				fmt.Fprintf(w, "  - %s (%s, %d lines)\n", path, f.Language, f.LineCount)
			}
		}

		summary.Results = append(summary.Results, result)
		summary.Extracted++
		stats = stats.WithResult(result)
	}

	return summary, stats, nil
}

// PrintStats writes the end-of-run summary.
func PrintStats(w io.Writer, stats types.Stats) {
	fmt.Fprintf(w, "\n--- Processing Summary ---\n")
	fmt.Fprintf(w, "Files processed: %d\n", stats.FilesProcessed)
	if stats.FilesFailed > 0 {
		fmt.Fprintf(w, "Files failed: %d\n", stats.FilesFailed)
	}
	fmt.Fprintf(w, "Code blocks found: %d\n", stats.CodeBlocksFound)
	fmt.Fprintf(w, "Topics created: %d\n", len(stats.TopicsCreated()))
	fmt.Fprintf(w, "Languages detected: %s\n", strings.Join(stats.LanguagesDetected(), ", "))
}
