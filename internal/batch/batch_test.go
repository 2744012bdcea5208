// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/code-extractor/pkg/types"
)

const setupDoc = "# Database Setup Discussion\n" +
	"\n" +
	"Create the table first:\n" +
	"\n" +
	"```sql\n" +
	"CREATE TABLE users (id INT PRIMARY KEY);\n" +
	"```\n" +
	"\n" +
	"Then check from python:\n" +
	"\n" +
	"```python\n" +
	"import os\n" +
	"print(os.getcwd())\n" +
	"```\n"

const plainDoc = "Meeting notes\n\nNothing technical was discussed today.\n"

var fixedTime = time.Date(2026, 1, 2, 4, 4, 5, 0, time.FixedZone("CET", 3600))

// mapReader serves documents from memory.
type mapReader struct {
	docs   map[string]string
	onRead func(name string)
}

func (m *mapReader) Read(_ context.Context, name string) (types.Document, error) {
	if m.onRead != nil {
		m.onRead(name)
	}
	text, ok := m.docs[name]
	if !ok {
		return types.Document{}, errors.New("not found")
	}
	return types.Document{Name: name, Text: text}, nil
}

// recordingSink remembers saved results and fails for listed sources.
type recordingSink struct {
	saved []types.ExtractionResult
	fail  map[string]error
}

func (s *recordingSink) Save(r types.ExtractionResult) ([]string, error) {
	if err := s.fail[r.Source]; err != nil {
		return nil, err
	}
	s.saved = append(s.saved, r)
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = filepath.Join("out", r.Topic, f.FileName)
	}
	return paths, nil
}

// --- Process / Step ---

func TestProcess(t *testing.T) {
	r := Process(types.Document{Name: "chat.md", Text: setupDoc}, fixedTime)

	assert.False(t, r.Failed())
	assert.False(t, r.Empty())
	assert.Equal(t, "chat.md", r.Source)
	assert.Equal(t, "Database_Setup_Discussion", r.Topic)

	require.Len(t, r.Blocks, 2)
	require.Len(t, r.Files, len(r.Blocks))
	assert.Equal(t, "sql", r.Blocks[0].Language)
	assert.Equal(t, 5, r.Blocks[0].StartLine)
	assert.Equal(t, "python", r.Blocks[1].Language)
	assert.Equal(t, 11, r.Blocks[1].StartLine)

	for i := range r.Blocks {
		assert.Equal(t, r.Blocks[i].Hash, r.Files[i].Hash)
	}
	assert.Equal(t, "code_01_sql_"+r.Blocks[0].Hash+".sql", r.Files[0].FileName)
	assert.Equal(t, "code_02_python_"+r.Blocks[1].Hash+".py", r.Files[1].FileName)

	require.NotNil(t, r.Metadata)
	assert.Equal(t, "chat.md", r.Metadata.SourceFile)
	assert.Equal(t, r.Topic, r.Metadata.Topic)
	assert.Equal(t, 2, r.Metadata.TotalBlocks)
	assert.Equal(t, r.Files, r.Metadata.CodeFiles)
	assert.Equal(t, "2026-01-02T03:04:05Z", r.Metadata.ProcessedAt)
}

func TestProcessNoBlocks(t *testing.T) {
	r := Process(types.Document{Name: "notes.txt", Text: plainDoc}, fixedTime)

	assert.True(t, r.Empty())
	assert.Equal(t, types.MessageNoBlocks, r.Message)
	assert.Empty(t, r.Blocks)
	assert.Empty(t, r.Files)
	assert.Nil(t, r.Metadata)
}

func TestStep(t *testing.T) {
	start := types.NewStats()

	r1, s1 := Step(start, types.Document{Name: "chat.md", Text: setupDoc}, fixedTime)
	r2, s2 := Step(s1, types.Document{Name: "notes.txt", Text: plainDoc}, fixedTime)

	assert.Len(t, r1.Blocks, 2)
	assert.True(t, r2.Empty())

	assert.Zero(t, start.FilesProcessed, "input stats must not change")
	assert.Equal(t, 1, s1.FilesProcessed)
	assert.Equal(t, 2, s2.FilesProcessed)
	assert.Equal(t, 2, s2.CodeBlocksFound)
	assert.Equal(t, []string{"python", "sql"}, s2.LanguagesDetected())
	assert.Equal(t, []string{"Database_Setup_Discussion"}, s2.TopicsCreated())
}

func TestFailure(t *testing.T) {
	r := Failure("gone.md", errors.New("no such file"))
	assert.True(t, r.Failed())
	assert.Equal(t, "gone.md", r.Source)
	assert.Equal(t, "failed to read file: no such file", r.Error)
}

// --- Runner ---

func TestRunMixedBatch(t *testing.T) {
	reader := &mapReader{docs: map[string]string{
		"a.md":     setupDoc,
		"empty.md": plainDoc,
		"b.md":     setupDoc,
	}}
	sink := &recordingSink{fail: map[string]error{"b.md": errors.New("disk full")}}
	var out bytes.Buffer

	runner := &Runner{Reader: reader, Sink: sink, Out: &out, Now: func() time.Time { return fixedTime }}
	summary, stats, err := runner.Run(context.Background(), types.NewStats(),
		[]string{"a.md", "empty.md", "missing.md", "b.md"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Extracted)
	assert.Equal(t, 1, summary.Empty)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 4, summary.Total())
	assert.True(t, summary.HasFailures())

	require.Len(t, summary.Results, 4)
	var sources []string
	for _, r := range summary.Results {
		sources = append(sources, r.Source)
	}
	assert.Equal(t, []string{"a.md", "empty.md", "missing.md", "b.md"}, sources)
	assert.Equal(t, "failed to read file: not found", summary.Results[2].Error)
	assert.Equal(t, "failed to save blocks: disk full", summary.Results[3].Error)

	require.Len(t, sink.saved, 1)
	assert.Equal(t, "a.md", sink.saved[0].Source)

	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 2, stats.FilesFailed)
	assert.Equal(t, 2, stats.CodeBlocksFound)

	log := out.String()
	assert.Contains(t, log, "extracted a.md -> Database_Setup_Discussion (2 code blocks)\n")
	assert.Contains(t, log, "empty   empty.md: No code blocks found\n")
	assert.Contains(t, log, "failed  missing.md: failed to read file: not found\n")
	assert.Contains(t, log, "failed  b.md: failed to save blocks: disk full\n")
	assert.NotContains(t, log, "processing ")
}

func TestRunVerbose(t *testing.T) {
	reader := &mapReader{docs: map[string]string{"a.md": setupDoc}}
	sink := &recordingSink{}
	var out bytes.Buffer

	runner := &Runner{Reader: reader, Sink: sink, Out: &out, Verbose: true}
	summary, _, err := runner.Run(context.Background(), types.NewStats(), []string{"a.md"})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	files := summary.Results[0].Files
	require.Len(t, files, 2)

	log := out.String()
	assert.Contains(t, log, "processing a.md\n")
	assert.Contains(t, log, "  - "+filepath.Join("out", "Database_Setup_Discussion", files[0].FileName)+" (sql, 1 lines)\n")
	assert.Contains(t, log, "  - "+filepath.Join("out", "Database_Setup_Discussion", files[1].FileName)+" (python, 2 lines)\n")
}

func TestRunNilSinkAndOut(t *testing.T) {
	reader := &mapReader{docs: map[string]string{"a.md": setupDoc}}

	runner := &Runner{Reader: reader}
	summary, stats, err := runner.Run(context.Background(), types.NewStats(), []string{"a.md"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Extracted)
	assert.Equal(t, 2, stats.CodeBlocksFound)
}

func TestRunCarriesIncomingStats(t *testing.T) {
	reader := &mapReader{docs: map[string]string{"a.md": setupDoc}}
	runner := &Runner{Reader: reader}

	_, first, err := runner.Run(context.Background(), types.NewStats(), []string{"a.md"})
	require.NoError(t, err)
	_, second, err := runner.Run(context.Background(), first, []string{"a.md"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.FilesProcessed)
	assert.Equal(t, 2, second.FilesProcessed)
	assert.Equal(t, 4, second.CodeBlocksFound)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Reader: &mapReader{docs: map[string]string{"a.md": setupDoc}}}
	summary, stats, err := runner.Run(ctx, types.NewStats(), []string{"a.md"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Total())
	assert.Zero(t, stats.FilesProcessed)
}

func TestRunCancelledBetweenDocuments(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &mapReader{
		docs:   map[string]string{"a.md": setupDoc, "b.md": setupDoc},
		onRead: func(string) { cancel() },
	}
	runner := &Runner{Reader: reader}
	summary, stats, err := runner.Run(ctx, types.NewStats(), []string{"a.md", "b.md"})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "a.md", summary.Results[0].Source)
	assert.Equal(t, 1, stats.FilesProcessed)
}

func TestPrintStats(t *testing.T) {
	stats := types.NewStats().
		WithResult(Process(types.Document{Name: "chat.md", Text: setupDoc}, fixedTime)).
		WithResult(Failure("gone.md", errors.New("missing")))

	var out bytes.Buffer
	PrintStats(&out, stats)

	assert.Equal(t, "\n--- Processing Summary ---\n"+
		"Files processed: 1\n"+
		"Files failed: 1\n"+
		"Code blocks found: 2\n"+
		"Topics created: 1\n"+
		"Languages detected: python, sql\n", out.String())
}

func TestPrintStatsOmitsZeroFailures(t *testing.T) {
	var out bytes.Buffer
	PrintStats(&out, types.NewStats())
	assert.NotContains(t, out.String(), "Files failed")
	assert.Contains(t, out.String(), "Files processed: 0\n")
}
