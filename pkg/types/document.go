// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is one source text handed to the extraction engine. Text is
// already decoded to UTF-8.
type Document struct {
	// Name identifies the document, usually its path. It is the topic
	// fallback when the text carries no heading.
	Name string `json:"name" yaml:"name"`

	Text string `json:"-" yaml:"-"`
}
