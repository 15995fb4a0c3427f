// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCssLength(t *testing.T) {
	cases := []struct {
		value string
		want  int
		ok    bool
	}{
		{"2em", 2, true},
		{"1.5rem", 2, true},
		{"16px", 2, true},
		{"8px", 1, true},
		{"4qem", 4, true},
		{"", 0, false},
		{"auto", 0, false},
		{"1", 0, false},
		{"-2", 0, false},
	}
	for _, c := range cases {
		got, ok := parseCssLength(c.value)
		require.Equal(t, c.ok, ok, c.value)
		if ok {
			require.Equal(t, c.want, got, c.value)
		}
	}
}

func TestCssParse_MarginAndDisplay(t *testing.T) {
	base := DefaultHtmlElement()
	refined := CssParse("display: none; margin-top: 2em; margin-bottom: 1em", base)
	require.Equal(t, DisplayNone, refined.Display)
	require.Equal(t, 2, refined.MarginBefore)
	require.Equal(t, 1, refined.MarginAfter)
}

func TestCssParse_MarginWithoutUnitIsIgnored(t *testing.T) {
	base := DefaultHtmlElement()
	refined := CssParse("margin-top: 2", base)
	require.Equal(t, 0, refined.MarginBefore)
}

func TestCssParse_UnknownPropertyIgnored(t *testing.T) {
	base := DefaultHtmlElement()
	refined := CssParse("color: red; text-align: center", base)
	require.Equal(t, AlignCenter, refined.Align)
}

func TestCssParse_WebkitPrefixStripped(t *testing.T) {
	base := DefaultHtmlElement()
	refined := CssParse("-webkit-text-align: right", base)
	require.Equal(t, AlignRight, refined.Align)
}

func TestAttrHorizontalAlign(t *testing.T) {
	base := DefaultHtmlElement()
	refined := AttrHorizontalAlign("right", base)
	require.Equal(t, AlignRight, refined.Align)
}
