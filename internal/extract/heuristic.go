// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/code-extractor/internal/pattern"
)

// MinCodeSignals is the number of distinct signal categories indented text
// needs before it is treated as code.
const MinCodeSignals = 2

// codeSignals are the structural categories counted by LooksLikeCode. Each
// counts at most once.
var codeSignals = []*regexp.Regexp{
	// function call
	pattern.MustCompile(`(?i)[a-zA-Z_]\w*\s*\(`),
	// assignment
	pattern.MustCompile(`(?i)[a-zA-Z_]\w*\s*=`),
	// braces
	pattern.MustCompile(`(?i)\{[^}]*\}`),
	// quoted string
	pattern.MustCompile(`(?i)["'][^"']*["']`),
	// comment
	pattern.MustCompile(`(?i)//.*|/\*.*\*/|#.*`),
	// member access
	pattern.MustCompile(`(?i)\w+\.\w+`),
	// control flow
	pattern.MustCompile(`(?i)if\s*\(|while\s*\(|for\s*\(`),
	// markup tag
	pattern.MustCompile(`(?i)</?\w+[^>]*>`),
	// css declaration
	pattern.MustCompile(`(?i)[a-zA-Z-]+:\s*[^;]+;`),
}

// LooksLikeCode reports whether content matches at least MinCodeSignals of
// the signal categories.
func LooksLikeCode(content string) bool {
	return CodeSignals(content) >= MinCodeSignals
}

// CodeSignals returns how many signal categories match content.
func CodeSignals(content string) int {
	n := 0
	for _, re := range codeSignals {
		if re.MatchString(content) {
			n++
		}
	}
	return n
}
