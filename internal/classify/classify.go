// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns a programming-language label to a code fragment
// using an ordered table of regular-expression signatures, and maps labels to
// file extensions.
package classify

import (
	"regexp"

	"github.com/pdiddy/code-extractor/internal/pattern"
)

// Fallback is the label returned when no candidate signature matches.
const Fallback = "txt"

// candidate is one language and the signatures that identify it.
type candidate struct {
	label      string
	signatures []*regexp.Regexp
}

// sig compiles a signature with case-insensitive, multi-line matching and
// Unicode \w and \s.
func sig(expr string) *regexp.Regexp {
	return pattern.MustCompile(`(?mi)` + expr)
}

// candidates is checked in order and the first candidate with any matching
// signature wins. The order is part of the output contract: c precedes cpp,
// so a fragment with both #include <...> and std:: is labelled c.
var candidates = []candidate{
	{"python", []*regexp.Regexp{
		sig(`def\s+\w+\(`),
		sig(`import\s+\w+`),
		sig(`from\s+\w+\s+import`),
		sig(`print\s*\(`),
		sig(`class\s+\w+`),
	}},
	{"javascript", []*regexp.Regexp{
		sig(`function\s+\w+\(`),
		sig(`const\s+\w+\s*=`),
		sig(`let\s+\w+\s*=`),
		sig(`console\.log\(`),
		sig(`document\.`),
	}},
	{"java", []*regexp.Regexp{
		sig(`public\s+class\s+\w+`),
		sig(`public\s+static\s+void\s+main`),
		sig(`System\.out\.print`),
	}},
	{"c", []*regexp.Regexp{
		sig(`#include\s*<`),
		sig(`int\s+main\s*\(`),
		sig(`printf\s*\(`),
	}},
	{"cpp", []*regexp.Regexp{
		sig(`#include\s*<`),
		sig(`std::`),
		sig(`cout\s*<<`),
	}},
	{"html", []*regexp.Regexp{
		sig(`<html`),
		sig(`<div`),
		sig(`<body`),
		sig(`<!DOCTYPE`),
	}},
	{"css", []*regexp.Regexp{
		sig(`\w+\s*\{[^}]*\}`),
		sig(`@media`),
		sig(`\.[\w-]+\s*\{`),
	}},
	{"sql", []*regexp.Regexp{
		sig(`SELECT\s+`),
		sig(`FROM\s+`),
		sig(`WHERE\s+`),
		sig(`INSERT\s+INTO`),
	}},
	{"bash", []*regexp.Regexp{
		sig(`#!/bin/bash`),
		sig(`echo\s+`),
		sig(`\$\w+`),
		sig(`if\s*\[\s*`),
	}},
	{"dockerfile", []*regexp.Regexp{
		sig(`FROM\s+\w+`),
		sig(`RUN\s+`),
		sig(`COPY\s+`),
		sig(`WORKDIR\s+`),
		sig(`EXPOSE\s+`),
		sig(`CMD\s*\[`),
	}},
	{"json", []*regexp.Regexp{
		sig(`^\s*\{`),
		sig(`^\s*\[`),
		sig(`"\w+":\s*`),
	}},
	{"yaml", []*regexp.Regexp{
		sig(`^\w+:`),
		sig(`^\s*-\s+\w+`),
	}},
	{"xml", []*regexp.Regexp{
		sig(`<\?xml`),
		sig(`<\w+.*>.*</\w+>`),
	}},
}

// extensions maps labels to file extensions. Labels not listed use ".txt".
var extensions = map[string]string{
	"python":     ".py",
	"javascript": ".js",
	"java":       ".java",
	"c":          ".c",
	"cpp":        ".cpp",
	"html":       ".html",
	"css":        ".css",
	"sql":        ".sql",
	"bash":       ".sh",
	"dockerfile": ".dockerfile",
	"json":       ".json",
	"yaml":       ".yml",
	"xml":        ".xml",
	"txt":        ".txt",
}

// Classify returns the label of the first candidate whose signatures match
// content, or Fallback.
func Classify(content string) string {
	for _, c := range candidates {
		for _, re := range c.signatures {
			if re.MatchString(content) {
				return c.label
			}
		}
	}
	return Fallback
}

// Extension returns the file extension for a label, ".txt" for unknown labels.
func Extension(language string) string {
	if ext, ok := extensions[language]; ok {
		return ext
	}
	return extensions[Fallback]
}

// Languages returns the candidate labels in classification order.
func Languages() []string {
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.label
	}
	return labels
}

// IsFallback reports whether language carries no classification, either
// because it is empty or because it is the Fallback label.
func IsFallback(language string) bool {
	return language == "" || language == Fallback
}
