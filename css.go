// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"strconv"
	"strings"
)

// CssParse applies the restricted inline-style grammar to base and returns
// the refined record. Unknown properties, selectors, and unit suffixes are
// silently ignored, and an invalid numeric length skips just that one
// property -- the style parser never fails the surrounding conversion.
func CssParse(style string, base HtmlElement) HtmlElement {
	refined := base
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := normalizeCssKey(parts[0])
		value := strings.TrimSpace(parts[1])
		applyCssProperty(&refined, key, value)
	}
	return refined
}

func normalizeCssKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, "-webkit-")
	return key
}

func applyCssProperty(e *HtmlElement, key, value string) {
	switch key {
	case "display":
		switch strings.ToLower(value) {
		case "none":
			e.Display = DisplayNone
		case "block":
			e.Display = DisplayBlock
		case "inline":
			e.Display = DisplayInline
		}
	case "white-space":
		switch strings.ToLower(value) {
		case "normal", "nowrap":
			e.Whitespace = WhiteSpaceNormal
		case "pre", "pre-line", "pre-wrap":
			e.Whitespace = WhiteSpacePre
		}
	case "margin-top":
		if n, ok := parseCssLength(value); ok {
			e.MarginBefore = n
		}
	case "margin-bottom":
		if n, ok := parseCssLength(value); ok {
			e.MarginAfter = n
		}
	case "padding-left":
		if n, ok := parseCssLength(value); ok {
			e.PaddingInline = n
		}
	case "text-align":
		applyHorizontalAlign(e, value)
	case "vertical-align":
		applyVerticalAlign(e, value)
	}
}

// parseCssLength implements the simple length rule: em/qem/rem units are
// taken at face value (rounded); any other unit is divided by 8 and
// rounded, yielding an integer line/column count. A value with no unit
// suffix at all -- or that does not parse as a number -- fails to match,
// mirroring the source library's RE_UNIT = r'([\-0-9\.]+)(\w+)', which
// requires at least one unit character; the property is then left
// untouched rather than applied.
func parseCssLength(value string) (int, bool) {
	value = strings.TrimSpace(value)
	numPart, unit := splitNumberUnit(value)
	if numPart == "" || unit == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(unit) {
	case "em", "qem", "rem":
		return roundHalfAwayFromZero(f), true
	default:
		return roundHalfAwayFromZero(f / 8), true
	}
}

func splitNumberUnit(value string) (number, unit string) {
	i := 0
	for i < len(value) {
		c := value[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			i++
			continue
		}
		break
	}
	return value[:i], value[i:]
}

func roundHalfAwayFromZero(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return -int(-f + 0.5)
}

// AttrStyle routes an element's style="..." attribute through CssParse.
func AttrStyle(value string, base HtmlElement) HtmlElement {
	return CssParse(value, base)
}

// AttrHorizontalAlign routes an element's align="..." attribute.
func AttrHorizontalAlign(value string, base HtmlElement) HtmlElement {
	refined := base
	applyHorizontalAlign(&refined, value)
	return refined
}

// AttrVerticalAlign routes an element's valign="..." attribute.
func AttrVerticalAlign(value string, base HtmlElement) HtmlElement {
	refined := base
	applyVerticalAlign(&refined, value)
	return refined
}

func applyHorizontalAlign(e *HtmlElement, value string) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		e.Align = AlignLeft
	case "right":
		e.Align = AlignRight
	case "center":
		e.Align = AlignCenter
	}
}

func applyVerticalAlign(e *HtmlElement, value string) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "top":
		e.Valign = VAlignTop
	case "middle":
		e.Valign = VAlignMiddle
	case "bottom":
		e.Valign = VAlignBottom
	}
}