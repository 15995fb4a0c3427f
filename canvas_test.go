// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanvas_MarginCollapsing(t *testing.T) {
	c := NewCanvas()

	outer := DefaultHtmlElement()
	outer.Display = DisplayBlock
	outer.MarginBefore = 1
	outer.MarginAfter = 1
	outer.Canvas = c

	inner := DefaultHtmlElement()
	inner.Display = DisplayBlock
	inner.MarginBefore = 2
	inner.Canvas = c

	c.Write(&HtmlElement{Whitespace: WhiteSpaceNormal, Canvas: c}, "Hallo")
	c.OpenTag(&outer)
	c.Write(&outer, "Echo")

	refinedInner := outer.Refine(inner)
	c.OpenTag(&refinedInner)
	c.Write(&refinedInner, "Mecho")
	c.CloseTag(&refinedInner)

	c.CloseTag(&outer)
	c.Write(&HtmlElement{Whitespace: WhiteSpaceNormal, Canvas: c}, "sei Gott")

	require.Equal(t, "Hallo\n\nEcho\n\n\nMecho\n\nsei Gott", c.GetText())
}

func TestCanvas_AnnotationSpanTracksBlockBoundaries(t *testing.T) {
	c := NewCanvas()
	elem := DefaultHtmlElement()
	elem.Annotation = []string{"heading"}
	elem.Canvas = c

	c.OpenTag(&elem)
	c.Write(&elem, "Title")
	c.CloseTag(&elem)

	anns := c.Annotations()
	require.Len(t, anns, 1)
	require.Equal(t, 0, anns[0].Start)
	require.Equal(t, 5, anns[0].End)
	require.Equal(t, "heading", anns[0].Label)
}
