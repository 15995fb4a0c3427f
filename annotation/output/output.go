// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

// Package output implements the annotation output formatters: Surface,
// XML, and HTML. Each consumes the (text, labels) pair a conversion
// produces and transforms it into a downstream-friendly representation.
package output

import "github.com/weichselbraun/inscriptis-go/annotation"

// AnnotatedText is the (text, labels) pair every formatter consumes.
type AnnotatedText struct {
	Text  string                  `json:"text"`
	Label []annotation.Annotation `json:"label"`
}

// Extractor formats an AnnotatedText into a caller-facing representation.
//
// Verbatim reports whether Extract's return value is already final output
// text (true, e.g. a complete HTML document) or a structured value that
// still needs encoding, e.g. to JSON, before it can be written out (false).
type Extractor interface {
	Extract(a AnnotatedText) (interface{}, error)
	Verbatim() bool
}