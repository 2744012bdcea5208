// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/code-extractor/pkg/types"
)

// --- Hash ---

func TestHash(t *testing.T) {
	h1 := Hash("print('hello')")
	h2 := Hash("print('hello')")
	h3 := Hash("print('goodbye')")

	assert.Equal(t, h1, h2, "same content must hash identically")
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, HashLength)
	assert.Equal(t, "5d41402a", Hash("hello"))
}

// --- Topic ---

func TestTopic(t *testing.T) {
	tests := []struct {
		name    string
		docName string
		content string
		want    string
	}{
		{
			name:    "top-level heading",
			docName: "chat.md",
			content: "# Database Setup Discussion\n\nSome text.",
			want:    "Database_Setup_Discussion",
		},
		{
			name:    "top-level heading wins over earlier second-level",
			docName: "chat.md",
			content: "## Agenda\n\n# Sprint Review\n",
			want:    "Sprint_Review",
		},
		{
			name:    "second-level heading",
			docName: "chat.md",
			content: "Intro line\n## Deploy Pipeline\n",
			want:    "Deploy_Pipeline",
		},
		{
			name:    "title line",
			docName: "export.txt",
			content: "Title: My Chat Export!\nBody",
			want:    "My_Chat_Export",
		},
		{
			name:    "subject line",
			docName: "mail.eml",
			content: "From: someone\nSubject: Re: Deploy script\n",
			want:    "Re_Deploy_script",
		},
		{
			name:    "case insensitive title",
			docName: "x.txt",
			content: "TITLE: Shouting Header",
			want:    "Shouting_Header",
		},
		{
			name:    "hyphen and underscore kept",
			docName: "x.md",
			content: "# foo-bar baz_qux",
			want:    "foo-bar_baz_qux",
		},
		{
			name:    "non-ascii letters kept",
			docName: "x.md",
			content: "# Café Notes",
			want:    "Café_Notes",
		},
		{
			name:    "no-break space separates words",
			docName: "n.md",
			content: "# Héllo\u00a0World Notes",
			want:    "Héllo_World_Notes",
		},
		{
			name:    "ideographic space separates words",
			docName: "n.md",
			content: "Title: Données\u3000brutes",
			want:    "Données_brutes",
		},
		{
			name:    "no-break space after marker",
			docName: "n.md",
			content: "#\u00a0Ünïcode Heading",
			want:    "Ünïcode_Heading",
		},
		{
			name:    "whitespace runs collapse",
			docName: "x.md",
			content: "# Lots   of \t space",
			want:    "Lots_of_space",
		},
		{
			name:    "filename fallback",
			docName: "notes/meeting.md",
			content: "no headings here",
			want:    "meeting",
		},
		{
			name:    "only final extension removed",
			docName: "archive.tar.gz",
			content: "",
			want:    "archive.tar",
		},
		{
			name:    "dot file keeps its name",
			docName: ".scratch",
			content: "",
			want:    ".scratch",
		},
		{
			name:    "punctuation-only heading falls back to filename",
			docName: "chat.txt",
			content: "# !!!\nTitle: Ignored",
			want:    "chat",
		},
		{
			name:    "unknown topic",
			docName: "",
			content: "nothing useful",
			want:    UnknownTopic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Topic(tt.docName, tt.content))
		})
	}
}

func TestTopicTruncated(t *testing.T) {
	heading := "# " + strings.Repeat("word ", 20)
	got := Topic("x.md", heading)
	assert.Len(t, []rune(got), MaxTopicLength)
	assert.True(t, strings.HasPrefix(got, "word_word_"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "Hello_World", Slug("  Hello, World!  "))
	assert.Equal(t, "", Slug("?!."))
}

// --- FileName / Describe ---

func TestFileName(t *testing.T) {
	tests := []struct {
		index    int
		language string
		want     string
	}{
		{1, "python", "code_01_python_abcd1234.py"},
		{2, "txt", "code_02_abcd1234.txt"},
		{3, "", "code_03_abcd1234.txt"},
		{4, "rust", "code_04_rust_abcd1234.txt"},
		{5, "yaml", "code_05_yaml_abcd1234.yml"},
		{12, "bash", "code_12_bash_abcd1234.sh"},
		{100, "c", "code_100_c_abcd1234.c"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			b := types.CodeBlock{Content: "x", Language: tt.language, Hash: "abcd1234"}
			assert.Equal(t, tt.want, FileName(tt.index, b))
		})
	}
}

func TestDescribe(t *testing.T) {
	blocks := []types.CodeBlock{
		{Content: "def f():\n    return 1", Language: "python", StartLine: 3, Hash: Hash("def f():\n    return 1")},
		{Content: "plain", Language: "txt", StartLine: 9, Hash: Hash("plain")},
	}

	files := Describe(blocks)
	require.Len(t, files, len(blocks))

	for i := range blocks {
		assert.Equal(t, blocks[i].Hash, files[i].Hash)
		assert.Equal(t, blocks[i].Language, files[i].Language)
		assert.Equal(t, blocks[i].Content, files[i].Content)
	}

	assert.Equal(t, "code_01_python_"+blocks[0].Hash+".py", files[0].FileName)
	assert.Equal(t, 2, files[0].LineCount)
	assert.Equal(t, ".py", files[0].Extension)

	assert.Equal(t, "code_02_"+blocks[1].Hash+".txt", files[1].FileName)
	assert.Equal(t, 1, files[1].LineCount)
	assert.Equal(t, ".txt", files[1].Extension)
}

func TestDescribeEmpty(t *testing.T) {
	assert.Empty(t, Describe(nil))
}
