// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package output_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weichselbraun/inscriptis-go/annotation"
	"github.com/weichselbraun/inscriptis-go/annotation/output"
)

func sample() output.AnnotatedText {
	return output.AnnotatedText{
		Text: "Hello world",
		Label: []annotation.Annotation{
			{Start: 0, End: 5, Label: "greeting"},
			{Start: 6, End: 11, Label: "noun"},
		},
	}
}

func TestSurface_Extract(t *testing.T) {
	s := output.Surface{}
	require.False(t, s.Verbatim())

	result, err := s.Extract(sample())
	require.NoError(t, err)

	sr, ok := result.(output.SurfaceResult)
	require.True(t, ok)
	require.Equal(t, "Hello world", sr.Text)
	require.Len(t, sr.Surface, 2)
	require.Equal(t, "Hello", sr.Surface[0].Surface)
	require.Equal(t, "world", sr.Surface[1].Surface)
}

func TestXML_Extract(t *testing.T) {
	x := output.XML{}
	require.True(t, x.Verbatim())

	result, err := x.Extract(sample())
	require.NoError(t, err)

	xml, ok := result.(string)
	require.True(t, ok)
	require.Contains(t, xml, "<content>")
	require.Contains(t, xml, "<greeting>Hello</greeting>")
	require.Contains(t, xml, "<noun>world</noun>")
}

func TestXML_Extract_EscapesText(t *testing.T) {
	x := output.XML{}
	result, err := x.Extract(output.AnnotatedText{Text: "a < b & c"})
	require.NoError(t, err)
	require.Contains(t, result.(string), "a &lt; b &amp; c")
}

func TestHTML_Extract_ClosesTrailingSpan(t *testing.T) {
	h := output.HTML{}
	require.True(t, h.Verbatim())

	result, err := h.Extract(output.AnnotatedText{
		Text:  "Hello",
		Label: []annotation.Annotation{{Start: 0, End: 5, Label: "greeting"}},
	})
	require.NoError(t, err)

	page, ok := result.(string)
	require.True(t, ok)
	// the span opened at the start of the text must be closed before the
	// surrounding <pre> tag, even when its span reaches the document end.
	require.Contains(t, page, `<span class="greeting">Hello</span>`)
}
