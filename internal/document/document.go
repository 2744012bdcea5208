// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document locates source documents and reads them as UTF-8 text for
// the extraction engine. Glob patterns use doublestar syntax ("notes/**/*.md").
package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/code-extractor/pkg/types"
)

var (
	// ErrNotFound is returned for paths that do not exist.
	ErrNotFound = errors.New("file not found")

	// ErrBinary is returned for content that is not text.
	ErrBinary = errors.New("binary content")

	// ErrTooLarge is returned when a file exceeds the configured size limit.
	ErrTooLarge = errors.New("file too large")
)

// FileReader reads documents from the local filesystem.
type FileReader struct {
	// MaxFileSize rejects larger files. Zero means no limit.
	MaxFileSize int64
}

// NewFileReader returns a FileReader configured from cfg.
func NewFileReader(cfg types.InputConfig) *FileReader {
	return &FileReader{MaxFileSize: cfg.MaxFileSize}
}

// Read loads the file at name and decodes it to UTF-8. A UTF-8 or UTF-16
// byte order mark selects the encoding and is stripped; otherwise the bytes
// are taken as UTF-8 with invalid sequences replaced.
func (r *FileReader) Read(ctx context.Context, name string) (types.Document, error) {
	if err := ctx.Err(); err != nil {
		return types.Document{}, err
	}

	info, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Document{}, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return types.Document{}, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return types.Document{}, fmt.Errorf("%s is a directory", name)
	}
	if r.MaxFileSize > 0 && info.Size() > r.MaxFileSize {
		return types.Document{}, fmt.Errorf("%s (%d bytes): %w", name, info.Size(), ErrTooLarge)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading %s: %w", name, err)
	}

	text, err := Decode(data)
	if err != nil {
		return types.Document{}, fmt.Errorf("decoding %s: %w", name, err)
	}

	return types.Document{Name: name, Text: text}, nil
}

// Decode converts raw document bytes to a UTF-8 string. It returns ErrBinary
// when the decoded content does not look like text.
func Decode(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", err
	}
	if enry.IsBinary(out) {
		return "", ErrBinary
	}
	return string(out), nil
}

// Expand resolves command-line arguments and include patterns into an
// ordered, de-duplicated list of document paths. Arguments without glob
// metacharacters are passed through unchanged so that missing files are
// reported when they are read. Glob matches are sorted and directories are
// skipped.
func Expand(args, include []string) ([]string, error) {
	var (
		paths []string
		seen  = make(map[string]bool)
	)

	add := func(p string) {
		if seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	for _, arg := range append(append([]string{}, args...), include...) {
		if !hasMeta(arg) {
			add(arg)
			continue
		}

		if !doublestar.ValidatePattern(arg) {
			return nil, fmt.Errorf("invalid glob pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return paths, nil
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
