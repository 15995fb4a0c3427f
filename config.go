// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import "golang.org/x/net/html"

// TagHandlerFunc processes the start or end of a tag during the rendering
// walk. elem is the tag's already-refined HtmlElement, sitting at the top
// of the engine's tag stack.
type TagHandlerFunc func(en *Engine, node *html.Node, elem *HtmlElement)

// ParserConfig bundles every option the rendering engine consults.
type ParserConfig struct {
	// CSS overrides the default relaxed profile.
	CSS Profile
	// DisplayImages, if set, emits "[alt-or-title]" for <img>.
	DisplayImages bool
	// DeduplicateCaptions suppresses consecutive identical image captions.
	DeduplicateCaptions bool
	// DisplayLinks, if set, emits "[text](href)" for <a>.
	DisplayLinks bool
	// DisplayAnchors, if set, emits "[text](name)" for anchor targets.
	DisplayAnchors bool
	// AnnotationRules maps rule keys (see ParseAnnotationRules) to labels.
	AnnotationRules map[string][]string
	// TableCellSeparator is the string placed between adjacent cells.
	// Defaults to two spaces when empty.
	TableCellSeparator string
	// CustomStartHandlers and CustomEndHandlers are merged over the
	// built-in per-tag handlers, overriding any tag they name.
	CustomStartHandlers map[string]TagHandlerFunc
	CustomEndHandlers   map[string]TagHandlerFunc
}

// DefaultParserConfig returns a ParserConfig using the relaxed CSS profile
// and the default two-space table cell separator.
func DefaultParserConfig() *ParserConfig {
	return &ParserConfig{
		CSS:                RelaxedProfile(),
		TableCellSeparator: "  ",
	}
}