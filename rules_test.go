// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseRuleKey(t *testing.T) {
	cases := []struct {
		key      string
		wantTag  string
		wantAttr string
		wantVal  string
		wantOK   bool
	}{
		{"h1", "h1", "", "", true},
		{"span#class", "span", "class", "", true},
		{"span#class=warn", "span", "class", "warn", true},
		{"#id", "", "id", "", true},
		{"#id=main", "", "id", "main", true},
		{"", "", "", "", false},
		{"span#", "", "", "", false},
	}
	for _, c := range cases {
		tag, attr, val, ok := parseRuleKey(c.key)
		require.Equal(t, c.wantOK, ok, c.key)
		if ok {
			require.Equal(t, c.wantTag, tag, c.key)
			require.Equal(t, c.wantAttr, attr, c.key)
			require.Equal(t, c.wantVal, val, c.key)
		}
	}
}

func TestParseAnnotationRules_TagOnly(t *testing.T) {
	base := StrictProfile()
	model := ParseAnnotationRules(map[string][]string{"h1": {"heading"}}, base)
	e := model.Profile.Get("h1")
	require.Equal(t, []string{"heading"}, e.Annotation)
}

func TestAnnotationModel_Apply_AttributeMatch(t *testing.T) {
	model := ParseAnnotationRules(map[string][]string{"span#class=warn": {"warning"}}, StrictProfile())
	elem := DefaultHtmlElement()
	model.Apply(&elem, "span", []html.Attribute{{Key: "class", Val: "warn extra"}})
	require.Equal(t, []string{"warning"}, elem.Annotation)
}

func TestAnnotationModel_Apply_NoMatchWrongTag(t *testing.T) {
	model := ParseAnnotationRules(map[string][]string{"div#class=warn": {"warning"}}, StrictProfile())
	elem := DefaultHtmlElement()
	model.Apply(&elem, "span", []html.Attribute{{Key: "class", Val: "warn"}})
	require.Empty(t, elem.Annotation)
}
