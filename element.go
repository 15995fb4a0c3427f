// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

// HtmlElement is the per-tag layout record threaded through the rendering
// walk. It is a plain value type -- every tag open takes a shallow copy (via
// plain Go assignment) of its default/profile entry and refines it against
// the parent's effective record, mirroring the source library's
// copy-on-entry object model without ever sharing mutable state between
// stack frames.
type HtmlElement struct {
	Tag        string
	Prefix     string
	Suffix     string
	Display    Display
	MarginBefore int
	MarginAfter  int
	PaddingInline int
	ListBullet string
	Whitespace WhiteSpace
	LimitWhitespaceAffixes bool
	Align  HorizontalAlignment
	Valign VerticalAlignment
	Annotation []string

	// PreviousMarginAfter is populated during refinement for margin
	// collapsing between adjacent block elements.
	PreviousMarginAfter int

	// Canvas is the canvas this element currently writes to. Table cells
	// rebind it to a sub-canvas for the duration of the <td> window.
	Canvas *Canvas
}

// DefaultHtmlElement is the layout record used for tags that have no entry
// in the active CSS profile.
func DefaultHtmlElement() HtmlElement {
	return HtmlElement{
		Tag:     "default",
		Display: DisplayInline,
		Align:   AlignLeft,
		Valign:  VAlignMiddle,
	}
}

// Clone returns an independent copy of e; since HtmlElement holds no slices
// that are mutated in place except Annotation, Clone copies that slice too
// so that later appends (e.g. by annotation rule handlers) never alias the
// profile's original entry.
func (e HtmlElement) Clone() HtmlElement {
	clone := e
	if e.Annotation != nil {
		clone.Annotation = append([]string(nil), e.Annotation...)
	}
	return clone
}

// Refine computes child's effective layout record given that e is its
// parent's already-refined record. It implements the refinement rule from
// the data model: display:none is sticky, whitespace is inherited when
// unset, whitespace-only affixes are suppressed inside pre contexts that
// request it, and previous_margin_after is set for margin collapsing
// between two block elements.
func (e HtmlElement) Refine(child HtmlElement) HtmlElement {
	refined := child

	if e.Display == DisplayNone {
		refined.Display = DisplayNone
	}

	// Whether whitespace-only affixes are suppressed is decided against the
	// parent's own whitespace setting, before child inherits it below --
	// matching get_refined_html_element, which tests self.whitespace here
	// even though new.whitespace has already been reassigned by this point.
	if child.LimitWhitespaceAffixes && e.Whitespace == WhiteSpacePre {
		if isBlank(refined.Prefix) {
			refined.Prefix = ""
		}
		if isBlank(refined.Suffix) {
			refined.Suffix = ""
		}
	}

	if refined.Whitespace == WhiteSpaceUnset {
		refined.Whitespace = e.Whitespace
	}

	if e.Display == DisplayBlock && refined.Display == DisplayBlock {
		refined.PreviousMarginAfter = e.MarginAfter
	}

	refined.Canvas = e.Canvas

	return refined
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}