// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes extraction results to disk: one directory per topic
// holding the block files and a metadata.json, plus an optional batch summary.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/code-extractor/pkg/types"
)

const (
	// DefaultDir is the output directory used when none is configured.
	DefaultDir = "extracted_code"

	metadataFile = "metadata.json"
)

// Writer saves the files of an ExtractionResult under Dir/<topic>/.
type Writer struct {
	Dir    string
	DryRun bool
}

// NewWriter returns a Writer configured from cfg.
func NewWriter(cfg types.OutputConfig) *Writer {
	dir := cfg.OutputDir
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{Dir: dir, DryRun: cfg.DryRun}
}

// TopicDir returns the directory that holds the files of topic.
func (w *Writer) TopicDir(topic string) string {
	return filepath.Join(w.Dir, topic)
}

// Save writes each file descriptor and the metadata record of result. It
// returns the file paths in the order of result.Files. In dry-run mode the
// paths are computed but nothing is written. If any write fails, the files
// written by this call are removed again, so a topic directory never holds
// block files without their metadata.json.
func (w *Writer) Save(result types.ExtractionResult) (paths []string, err error) {
	if len(result.Files) == 0 {
		return nil, nil
	}

	dir := w.TopicDir(result.Topic)
	paths = make([]string, len(result.Files))
	for i, f := range result.Files {
		paths[i] = filepath.Join(dir, f.FileName)
	}
	if w.DryRun {
		return paths, nil
	}

	_, statErr := os.Stat(dir)
	createdDir := os.IsNotExist(statErr)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating topic directory: %w", err)
	}

	var written []string
	defer func() {
		if err == nil {
			return
		}
		for _, p := range written {
			os.Remove(p)
		}
		if createdDir {
			os.Remove(dir)
		}
	}()

	for i, f := range result.Files {
		if err := os.WriteFile(paths[i], []byte(f.Content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", paths[i], err)
		}
		written = append(written, paths[i])
	}

	if result.Metadata != nil {
		metaPath := filepath.Join(dir, metadataFile)
		if err := writeMetadata(metaPath, result.Metadata, paths); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// metadataRecord is the on-disk form of types.Metadata. Each code file entry
// carries the path it was written to.
type metadataRecord struct {
	SourceFile  string       `json:"source_file"`
	Topic       string       `json:"topic"`
	TotalBlocks int          `json:"total_blocks"`
	CodeFiles   []codeFileID `json:"code_files"`
	ProcessedAt string       `json:"processed_at"`
}

type codeFileID struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Lines    int    `json:"lines"`
	Hash     string `json:"hash"`
}

func writeMetadata(path string, meta *types.Metadata, paths []string) error {
	rec := metadataRecord{
		SourceFile:  meta.SourceFile,
		Topic:       meta.Topic,
		TotalBlocks: meta.TotalBlocks,
		CodeFiles:   make([]codeFileID, len(meta.CodeFiles)),
		ProcessedAt: meta.ProcessedAt,
	}
	for i, f := range meta.CodeFiles {
		p := f.FileName
		if i < len(paths) {
			p = paths[i]
		}
		rec.CodeFiles[i] = codeFileID{Path: p, Language: f.Language, Lines: f.LineCount, Hash: f.Hash}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// WriteSummary writes the batch stats to path as YAML or JSON.
func WriteSummary(path string, format types.SummaryFormat, stats types.Stats) error {
	snap := stats.Snapshot()

	var (
		data []byte
		err  error
	)
	switch format {
	case types.SummaryYAML, "":
		data, err = yaml.Marshal(snap)
	case types.SummaryJSON:
		data, err = json.MarshalIndent(snap, "", "  ")
	default:
		return fmt.Errorf("unsupported summary format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating summary directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
