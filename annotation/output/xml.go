// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package output

import (
	"sort"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// XML wraps annotated text in a <content> root, emitting each annotation
// as a pair of open/close XML tags around its span.
//
// Tags that open at the same index are emitted outermost-first (the
// longer span opens first); tags that close at the same index are
// emitted innermost-first (the shorter span closes first), so that
// nested spans sharing a boundary always balance.
type XML struct{}

type xmlSpan struct {
	start, end int
	label      string
}

// Extract implements Extractor.
func (XML) Extract(a AnnotatedText) (interface{}, error) {
	spans := make([]xmlSpan, len(a.Label))
	for i, l := range a.Label {
		spans[i] = xmlSpan{l.Start, l.End, l.Label}
	}
	// start ascending, end descending -- outer spans first at a shared start.
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	opensAt := map[int][]xmlSpan{}
	closesAt := map[int][]xmlSpan{}
	for _, s := range spans {
		opensAt[s.start] = append(opensAt[s.start], s)
		closesAt[s.end] = append(closesAt[s.end], s)
	}
	for pos := range opensAt {
		ss := opensAt[pos]
		sort.SliceStable(ss, func(i, j int) bool { return (ss[i].end - ss[i].start) > (ss[j].end - ss[j].start) })
	}
	for pos := range closesAt {
		ss := closesAt[pos]
		sort.SliceStable(ss, func(i, j int) bool { return (ss[i].end - ss[i].start) < (ss[j].end - ss[j].start) })
	}

	boundarySet := map[int]bool{}
	for pos := range opensAt {
		boundarySet[pos] = true
	}
	for pos := range closesAt {
		boundarySet[pos] = true
	}
	boundaries := make([]int, 0, len(boundarySet))
	for pos := range boundarySet {
		boundaries = append(boundaries, pos)
	}
	sort.Ints(boundaries)

	runes := []rune(a.Text)
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString("<content>")
	prev := 0
	for _, pos := range boundaries {
		sb.WriteString(escapeXMLText(string(runes[prev:pos])))
		for _, s := range closesAt[pos] {
			sb.WriteString("</")
			sb.WriteString(s.label)
			sb.WriteString(">")
		}
		for _, s := range opensAt[pos] {
			sb.WriteString("<")
			sb.WriteString(s.label)
			sb.WriteString(">")
		}
		prev = pos
	}
	sb.WriteString(escapeXMLText(string(runes[prev:])))
	sb.WriteString("</content>")
	return sb.String(), nil
}

// Verbatim implements Extractor: the returned value is already a complete
// XML document.
func (XML) Verbatim() bool { return true }

func escapeXMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}