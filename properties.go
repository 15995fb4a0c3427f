// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

// Package inscriptis converts HTML documents into a plain-text rendering
// that preserves the visual structure a human reader perceives in a
// browser: paragraph breaks, list indentation with bullets, nested tables
// laid out as aligned columns, block-versus-inline flow, whitespace
// collapsing, and optional inline markers for links and images.
//
// It additionally emits annotations -- labeled character spans over the
// produced text -- driven by caller-supplied rules over tag names and
// attributes, so that downstream pipelines can recover which substrings
// came from headings, emphasized text, table cells, and so on.
package inscriptis

// Display specifies whether an element is rendered as inline, block, or
// not at all.
type Display int

const (
	// DisplayInline renders content in the flow of the surrounding text.
	DisplayInline Display = iota
	// DisplayBlock starts the element's content on its own line.
	DisplayBlock
	// DisplayNone suppresses the element and its descendants entirely.
	DisplayNone
)

func (d Display) String() string {
	switch d {
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	default:
		return "inline"
	}
}

// WhiteSpace specifies how whitespace inside an element is handled.
type WhiteSpace int

const (
	// WhiteSpaceUnset means no whitespace handling has been set yet; it is
	// inherited from the nearest ancestor that does set one.
	WhiteSpaceUnset WhiteSpace = iota
	// WhiteSpaceNormal collapses runs of whitespace into a single space.
	WhiteSpaceNormal
	// WhiteSpacePre preserves whitespace sequences verbatim.
	WhiteSpacePre
)

func (w WhiteSpace) String() string {
	switch w {
	case WhiteSpacePre:
		return "pre"
	case WhiteSpaceNormal:
		return "normal"
	default:
		return "unset"
	}
}

// HorizontalAlignment specifies a table cell's horizontal alignment. The
// value doubles as the fmt-style alignment flag used when padding a cell's
// content to its column width.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignRight
	AlignCenter
)

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	default:
		return "<"
	}
}

// VerticalAlignment specifies a table cell's vertical alignment within its
// row.
type VerticalAlignment int

const (
	VAlignTop VerticalAlignment = iota
	VAlignMiddle
	VAlignBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignBottom:
		return "bottom"
	default:
		return "middle"
	}
}