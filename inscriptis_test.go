// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	inscriptis "github.com/weichselbraun/inscriptis-go"
)

func TestGetText_SimpleBlock(t *testing.T) {
	text, err := inscriptis.GetText("<p>Hallo</p><p>Welt</p>", nil)
	require.NoError(t, err)
	require.Equal(t, "Hallo\n\nWelt\n", text)
}

func TestGetText_LeadingWhitespaceBeforeNestedBlockIsDiscarded(t *testing.T) {
	// Mirrors original_source/tests/test_list_div.py's test_divs: the
	// whitespace-only text between <li> and the nested <div> must be fully
	// swallowed so the bullet still lands on the div's own block rather
	// than being pulled onto a leading blank one.
	config := inscriptis.DefaultParserConfig()
	config.CSS = inscriptis.StrictProfile()

	html := `<body>Thomas <ul><li><div>Anton</div>Maria</ul></body>`
	text, err := inscriptis.GetText(html, config)
	require.NoError(t, err)
	require.Equal(t, "Thomas\n  * Anton\n    Maria", text)

	html = `<body>Thomas <ul><li>  <div>Anton</div>Maria</ul></body>`
	text, err = inscriptis.GetText(html, config)
	require.NoError(t, err)
	require.Equal(t, "Thomas\n  * Anton\n    Maria", text)

	html = `<body>Thomas <ul><li> a  <div>Anton</div>Maria</ul></body>`
	text, err = inscriptis.GetText(html, config)
	require.NoError(t, err)
	require.Equal(t, "Thomas\n  * a\n    Anton\n    Maria", text)
}

func TestGetText_EmptyInput(t *testing.T) {
	text, err := inscriptis.GetText("   \n\t  ", nil)
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestGetText_ListWithSiblingDivs(t *testing.T) {
	html := `<ul><li>one</li><li>two</li></ul><div>after</div>`
	text, err := inscriptis.GetText(html, nil)
	require.NoError(t, err)
	require.Contains(t, text, "* one")
	require.Contains(t, text, "* two")
	require.Contains(t, text, "after")
}

func TestGetText_NestedUnorderedListBulletCycling(t *testing.T) {
	html := `<ul><li>a<ul><li>b<ul><li>c<ul><li>d<ul><li>e</li></ul></li></ul></li></ul></li></ul></li></ul>`
	text, err := inscriptis.GetText(html, nil)
	require.NoError(t, err)
	require.Contains(t, text, "* a")
	require.Contains(t, text, "+ b")
	require.Contains(t, text, "o c")
	require.Contains(t, text, "- d")
	require.Contains(t, text, "* e")
}

func TestGetText_OrderedListExplicitStart(t *testing.T) {
	html := `<ol><li value="5">five</li><li>six</li></ol>`
	text, err := inscriptis.GetText(html, nil)
	require.NoError(t, err)
	require.Contains(t, text, "5. five")
	require.Contains(t, text, "6. six")
}

func TestGetText_MarginCollapsing(t *testing.T) {
	html := `Hallo<div style="margin-top: 1em; margin-bottom: 1em">Echo` +
		`<div style="margin-top: 2em">Mecho</div></div>sei Gott`
	text, err := inscriptis.GetText(html, nil)
	require.NoError(t, err)
	require.Equal(t, "Hallo\n\n  Echo\n\n\n    Mecho\n\nsei Gott", text)
}

func TestGetText_MarginWithoutUnitIsIgnored(t *testing.T) {
	// A bare numeral with no unit suffix does not match the source
	// library's unit regex, so the property is left at its default
	// (unset) rather than applied as if it were "em".
	html := `Hallo<div style="margin-top: 1">Echo</div>`
	text, err := inscriptis.GetText(html, nil)
	require.NoError(t, err)
	require.Equal(t, "Hallo\n  Echo", text)
}

func TestGetText_Table(t *testing.T) {
	html := `<table><tr><td>a</td><td>bb</td></tr><tr><td>ccc</td><td>d</td></tr></table>`
	text, err := inscriptis.GetText(html, nil)
	require.NoError(t, err)
	require.Contains(t, text, "a    bb")
	require.Contains(t, text, "ccc  d")
}

func TestGetText_TableCustomCellSeparator(t *testing.T) {
	config := inscriptis.DefaultParserConfig()
	config.TableCellSeparator = " | "
	html := `<table><tr><td>a</td><td>b</td></tr></table>`
	text, err := inscriptis.GetText(html, config)
	require.NoError(t, err)
	require.Contains(t, text, "a | b")
}

func TestGetText_Links(t *testing.T) {
	config := inscriptis.DefaultParserConfig()
	config.DisplayLinks = true
	text, err := inscriptis.GetText(`<a href="http://example.com">click</a>`, config)
	require.NoError(t, err)
	require.Equal(t, "[click](http://example.com)", text)
}

func TestGetText_Images(t *testing.T) {
	config := inscriptis.DefaultParserConfig()
	config.DisplayImages = true
	config.DeduplicateCaptions = true
	html := `<img alt="cat"/><img alt="cat"/><img alt="dog"/>`
	text, err := inscriptis.GetText(html, config)
	require.NoError(t, err)
	require.Equal(t, "[cat][dog]", text)
}

func TestGetAnnotatedText_SimpleRule(t *testing.T) {
	config := inscriptis.DefaultParserConfig()
	config.AnnotationRules = map[string][]string{"h1": {"heading"}}
	html := `<h1>Title</h1><p>Body</p>`
	result, err := inscriptis.GetAnnotatedText(html, config)
	require.NoError(t, err)
	require.Equal(t, "Title\n\nBody\n", result.Text)
	require.Len(t, result.Label, 1)
	require.Equal(t, "heading", result.Label[0].Label)
	require.Equal(t, 0, result.Label[0].Start)
	require.Equal(t, 5, result.Label[0].End)
}

func TestGetAnnotatedText_AttributeRule(t *testing.T) {
	config := inscriptis.DefaultParserConfig()
	config.AnnotationRules = map[string][]string{"span#class=warn": {"warning"}}
	html := `<span class="warn">careful</span> now`
	result, err := inscriptis.GetAnnotatedText(html, config)
	require.NoError(t, err)
	require.Len(t, result.Label, 1)
	require.Equal(t, "warning", result.Label[0].Label)
}
