// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"strings"

	"golang.org/x/net/html"
)

// ApplyAnnotation attaches Labels to any element carrying Attr, optionally
// restricted to a specific tag and/or a specific whitespace-separated token
// within the attribute's value.
type ApplyAnnotation struct {
	Labels     []string
	Attr       string
	MatchTag   string
	MatchValue string
}

// Matches reports whether this handler fires for an element with the given
// tag and attribute value.
func (a ApplyAnnotation) Matches(tag, attrValue string) bool {
	if a.MatchTag != "" && a.MatchTag != tag {
		return false
	}
	if a.MatchValue != "" {
		matched := false
		for _, tok := range strings.Fields(attrValue) {
			if tok == a.MatchValue {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// AnnotationModel is a CSS profile with tag-only annotation rules merged
// in, plus the attribute-keyed handlers compiled from attribute rules.
type AnnotationModel struct {
	Profile      Profile
	AttrHandlers map[string][]ApplyAnnotation
}

// ParseAnnotationRules partitions rule keys of the form tag, tag#attr,
// tag#attr=value, #attr, or #attr=value: tag-only keys extend a clone of
// base's per-tag annotation labels; attribute keys compile into
// ApplyAnnotation handlers installed under the attribute name, composing in
// registration order when more than one rule targets the same attribute. A
// key naming neither a tag nor an attribute is malformed and is skipped.
func ParseAnnotationRules(rules map[string][]string, base Profile) *AnnotationModel {
	model := &AnnotationModel{
		Profile:      base.Clone(),
		AttrHandlers: map[string][]ApplyAnnotation{},
	}
	for key, labels := range rules {
		tag, attr, value, ok := parseRuleKey(key)
		if !ok {
			continue
		}
		if attr == "" {
			e := model.Profile.Get(tag)
			e.Annotation = append(e.Annotation, labels...)
			model.Profile[tag] = e
			continue
		}
		model.AttrHandlers[attr] = append(model.AttrHandlers[attr], ApplyAnnotation{
			Labels:     labels,
			Attr:       attr,
			MatchTag:   tag,
			MatchValue: value,
		})
	}
	return model
}

func parseRuleKey(key string) (tag, attr, value string, ok bool) {
	hashIdx := strings.Index(key, "#")
	if hashIdx < 0 {
		if key == "" {
			return "", "", "", false
		}
		return key, "", "", true
	}
	tag = key[:hashIdx]
	rest := key[hashIdx+1:]
	if eq := strings.Index(rest, "="); eq >= 0 {
		attr, value = rest[:eq], rest[eq+1:]
	} else {
		attr = rest
	}
	if attr == "" {
		return "", "", "", false
	}
	return tag, attr, value, true
}

// Apply checks every attribute of a node against the compiled attribute
// handlers and extends e.Annotation with every label whose handler
// matches.
func (m *AnnotationModel) Apply(e *HtmlElement, tag string, attrs []html.Attribute) {
	if m == nil {
		return
	}
	for _, a := range attrs {
		for _, h := range m.AttrHandlers[a.Key] {
			if h.Matches(tag, a.Val) {
				e.Annotation = append(e.Annotation, h.Labels...)
			}
		}
	}
}