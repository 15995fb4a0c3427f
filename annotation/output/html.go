// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package output

import (
	"fmt"
	"sort"
	"strings"
)

// colorPalette is the deterministic, semi-transparent palette cycled over
// the sorted set of distinct labels in a document.
var colorPalette = []string{"#D8115980", "#8F2D5680", "#21838080", "#FBB13C80", "#73D2DE80"}

// HTML renders annotated text as a standalone HTML document: the body is a
// <pre> block (split across several adjacent <pre> blocks at newlines, to
// keep line-level CSS working) with each annotation wrapped in a <span>
// carrying a small floating label above it, colored per the label's entry
// in the embedded stylesheet.
type HTML struct{}

type htmlSpan struct {
	start, end int
	label      string
}

// Extract implements Extractor.
func (HTML) Extract(a AnnotatedText) (interface{}, error) {
	spans := make([]htmlSpan, len(a.Label))
	for i, l := range a.Label {
		spans[i] = htmlSpan{l.Start, l.End, l.Label}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		if spans[i].end != spans[j].end {
			return spans[i].end < spans[j].end
		}
		return spans[i].label < spans[j].label
	})

	tagIndices := map[int][]string{}
	for _, s := range spans {
		tagIndices[s.start] = append(tagIndices[s.start], s.label)
		tagIndices[s.end] = append(tagIndices[s.end], "/"+s.label)
	}

	var sb strings.Builder
	sb.WriteString("<html><head><style>\n")
	sb.WriteString(htmlCSS(labelColors(spans)))
	sb.WriteString("</style></head><body><pre>")

	var openTags []string
	runes := []rune(a.Text)
	for idx := 0; idx <= len(runes); idx++ {
		if tags, ok := tagIndices[idx]; ok {
			var closing, opening []string
			for _, t := range tags {
				if strings.HasPrefix(t, "/") {
					closing = append(closing, t)
				} else {
					opening = append(opening, t)
				}
			}
			sort.Sort(sort.Reverse(sort.StringSlice(closing)))
			for range closing {
				if len(openTags) > 0 {
					openTags = openTags[:len(openTags)-1]
				}
				sb.WriteString("</span>")
			}
			sort.Sort(sort.Reverse(sort.StringSlice(opening)))
			for _, t := range opening {
				openTags = append(openTags, t)
				fmt.Fprintf(&sb, `<span class="%s-label">%s</span><span class="%s">`, t, t, t)
			}
		}
		if idx == len(runes) {
			break
		}
		ch := runes[idx]
		if ch == '\n' {
			for range openTags {
				sb.WriteString("</span>")
			}
			sb.WriteString("</pre>\n<pre>")
			for _, t := range openTags {
				fmt.Fprintf(&sb, `<span class="%s">`, t)
			}
		} else {
			sb.WriteRune(ch)
		}
	}
	sb.WriteString("</pre></body></html>")
	return sb.String(), nil
}

// Verbatim implements Extractor: the returned value is already a complete
// HTML document.
func (HTML) Verbatim() bool { return true }

func labelColors(spans []htmlSpan) map[string]string {
	seen := map[string]bool{}
	for _, s := range spans {
		seen[s.label] = true
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	colors := make(map[string]string, len(labels))
	for i, l := range labels {
		colors[l] = colorPalette[i%len(colorPalette)]
	}
	return colors
}

func htmlCSS(colors map[string]string) string {
	labels := make([]string, 0, len(colors))
	for l := range colors {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	var sb strings.Builder
	sb.WriteString("pre { position: relative; white-space: pre-wrap; }\n")
	for _, l := range labels {
		c := colors[l]
		fmt.Fprintf(&sb, ".%s { background-color: %s; border-radius: 0.2em; }\n", l, c)
		fmt.Fprintf(&sb, ".%s-label { position: relative; top: -0.7em; font-size: 60%%; background-color: %s; border-radius: 0.2em; padding: 0 0.2em; }\n", l, c)
	}
	return sb.String()
}