// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern compiles regular expressions whose \w and \s classes match
// Unicode letters, digits and spaces instead of ASCII only.
package pattern

import (
	"regexp"
	"strings"
)

const (
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `\s\p{Z}`
)

// MustCompile rewrites pattern with Unicode and compiles it, panicking on a
// syntax error like regexp.MustCompile.
func MustCompile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(Unicode(pattern))
}

// Unicode replaces \w with [\p{L}\p{N}_] and \s with [\s\p{Z}], both inside
// and outside bracket expressions. Other escapes are left untouched.
func Unicode(pattern string) string {
	var (
		b       strings.Builder
		inClass bool
	)
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			i++
			switch next := pattern[i]; next {
			case 'w':
				writeClass(&b, wordClass, inClass)
			case 's':
				writeClass(&b, spaceClass, inClass)
			default:
				b.WriteByte('\\')
				b.WriteByte(next)
			}
		case c == '[' && !inClass:
			inClass = true
			b.WriteByte(c)
			// A leading ] (after an optional ^) is a literal member.
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
				b.WriteByte('^')
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
				b.WriteByte(']')
			}
		case c == ']' && inClass:
			inClass = false
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func writeClass(b *strings.Builder, members string, inClass bool) {
	if inClass {
		b.WriteString(members)
		return
	}
	b.WriteByte('[')
	b.WriteString(members)
	b.WriteByte(']')
}
