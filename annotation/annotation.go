// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

// Package annotation provides the Annotation span type emitted by the
// rendering engine's tag-matching rules, plus the horizontal-shift math
// used to relocate in-table annotations once a cell has been padded to its
// final column width.
package annotation

import "encoding/json"

// Annotation is a labeled span over the text produced by a conversion.
// Start and End are half-open character indices into that text
// (0 <= Start <= End <= len(text)); Label is an opaque caller-supplied tag
// such as "heading" or "emphasis".
type Annotation struct {
	Start int
	End   int
	Label string
}

// MarshalJSON renders the annotation in the JSONL shape consumers such as
// doccano expect: a 3-element array of [start, end, label] rather than a
// keyed object.
func (a Annotation) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]interface{}{a.Start, a.End, a.Label})
}

// UnmarshalJSON parses the [start, end, label] array shape back into an
// Annotation.
func (a *Annotation) UnmarshalJSON(data []byte) error {
	var raw [3]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, _ := raw[0].(float64)
	end, _ := raw[1].(float64)
	label, _ := raw[2].(string)
	a.Start, a.End, a.Label = int(start), int(end), label
	return nil
}

// HorizontalAlignment mirrors the alignment enum used by table cells.
// Duplicated here (rather than imported) to keep this package free of a
// dependency on the root rendering package -- the two enums are kept in
// lockstep by the root package's table layout code, which is the only
// caller of Shift.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignRight
	AlignCenter
)

// Shift adjusts the start and end indices of annotations to account for a
// line's horizontal alignment and width.
//
// contentWidth is the width of the actual (unpadded) content; lineWidth is
// the width of the line once padded to the column's final width; shift is
// an additional, caller-supplied offset (e.g. the line's position within
// the outer document). align determines how the padding is distributed:
// left-aligned content is not shifted by the padding at all, right-aligned
// content is shifted by the full padding, and centered content by half of
// it (rounded down).
func Shift(anns []Annotation, contentWidth, lineWidth int, align HorizontalAlignment, shift int) []Annotation {
	var hAlign int
	switch align {
	case AlignLeft:
		hAlign = shift
	case AlignRight:
		hAlign = shift + lineWidth - contentWidth
	default: // AlignCenter
		hAlign = shift + (lineWidth-contentWidth)/2
	}

	shifted := make([]Annotation, len(anns))
	for i, a := range anns {
		shifted[i] = Annotation{Start: a.Start + hAlign, End: a.End + hAlign, Label: a.Label}
	}
	return shifted
}