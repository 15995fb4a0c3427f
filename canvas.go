// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"math"
	"strings"

	"github.com/weichselbraun/inscriptis-go/annotation"
)

// Canvas owns the current Block, the list of already-completed block
// strings, the running margin (blank-line requirement accumulated so far),
// and the annotation list produced during a single conversion.
//
// margin starts at +infinity so that no blank lines are emitted before the
// very first block; it drops to a concrete value the first time a block is
// flushed.
type Canvas struct {
	prefix       *Prefix
	currentBlock *Block
	blocks       []string
	margin       int

	annotations     []annotation.Annotation
	openAnnotations map[*HtmlElement]int
}

// NewCanvas returns an empty Canvas ready to receive writes.
func NewCanvas() *Canvas {
	prefix := NewPrefix()
	return &Canvas{
		prefix:       prefix,
		currentBlock: NewBlock(0, prefix),
		margin:       math.MaxInt32,
	}
}

// CurrentIdx is the current block's global character index.
func (c *Canvas) CurrentIdx() int {
	return c.currentBlock.Idx()
}

// LeftMargin is the current indentation depth, used by the table layout to
// translate a spliced table's internal offsets into the outer document.
func (c *Canvas) LeftMargin() int {
	return c.prefix.CurrentPadding()
}

// Annotations returns the annotations recorded so far.
func (c *Canvas) Annotations() []annotation.Annotation {
	return c.annotations
}

// AppendAnnotation records an annotation computed outside the normal
// OpenTag/CloseTag bookkeeping, e.g. a table's whole-element annotation
// or an in-cell annotation after its offsets have been translated.
func (c *Canvas) AppendAnnotation(a annotation.Annotation) {
	c.annotations = append(c.annotations, a)
}

// OpenTag begins processing tag: if it carries annotation labels, its
// current position is recorded so CloseTag can later compute its span; if
// it is a block element, OpenBlock is invoked to materialize indentation
// and margins.
func (c *Canvas) OpenTag(tag *HtmlElement) {
	if len(tag.Annotation) > 0 {
		if c.openAnnotations == nil {
			c.openAnnotations = map[*HtmlElement]int{}
		}
		c.openAnnotations[tag] = c.currentBlock.Idx()
	}
	if tag.Display == DisplayBlock {
		c.OpenBlock(tag)
	}
}

// OpenBlock flushes any pending inline content, preserves an unconsumed
// bullet from a previous empty sibling, registers tag's indentation frame,
// and materializes whatever blank-line margin the transition requires.
func (c *Canvas) OpenBlock(tag *HtmlElement) {
	flushed := c.FlushInline()
	if !flushed && tag.ListBullet != "" {
		c.writeUnconsumedBullet()
	}

	c.prefix.RegisterPrefix(tag.PaddingInline, tag.ListBullet)

	required := tag.PreviousMarginAfter
	if tag.MarginBefore > required {
		required = tag.MarginBefore
	}
	c.ensureMargin(required)
}

// Write merges text, wrapped in tag's Prefix and Suffix, into the current
// block using tag's whitespace handling. Nothing is written for empty text
// or for a display:none element.
func (c *Canvas) Write(tag *HtmlElement, text string) {
	if text == "" || tag.Display == DisplayNone {
		return
	}
	c.currentBlock.Merge(tag.Prefix+text+tag.Suffix, tag.Whitespace)
}

// WriteExplicit merges text using an explicit whitespace mode rather than
// the tag's own -- used for pre-formatted splices such as rendered tables.
func (c *Canvas) WriteExplicit(text string, ws WhiteSpace) {
	c.currentBlock.Merge(text, ws)
}

// CloseTag finalizes tag: block elements flush pending content, preserve
// any trailing unconsumed bullet, pop their indentation frame, and apply
// their trailing margin; if tag was annotated and its span is non-empty,
// one Annotation per label is appended.
func (c *Canvas) CloseTag(tag *HtmlElement) {
	if tag.Display == DisplayBlock {
		c.FlushInline()
		c.writeUnconsumedBullet()
		c.prefix.RemoveLastPrefix()
		c.CloseBlock(tag)
	}

	if start, ok := c.openAnnotations[tag]; ok {
		delete(c.openAnnotations, tag)
		if start != c.currentBlock.Idx() {
			for _, label := range tag.Annotation {
				c.annotations = append(c.annotations, annotation.Annotation{Start: start, End: c.currentBlock.Idx(), Label: label})
			}
		}
	}
}

// CloseBlock materializes tag's trailing margin requirement.
func (c *Canvas) CloseBlock(tag *HtmlElement) {
	c.ensureMargin(tag.MarginAfter)
}

// WriteNewline forces a line break: if there was no pending inline content
// to flush, an empty block is still pushed so the break is visible.
func (c *Canvas) WriteNewline() {
	if !c.FlushInline() {
		c.blocks = append(c.blocks, c.currentBlock.Content())
		c.currentBlock = c.currentBlock.NewBlock()
	}
}

// FlushInline pushes the current block's content onto the completed-block
// list and starts a fresh one, resetting margin to 0 -- but only if the
// current block actually held pending content.
func (c *Canvas) FlushInline() bool {
	if c.currentBlock.IsEmpty() {
		return false
	}
	c.blocks = append(c.blocks, c.currentBlock.Content())
	c.currentBlock = c.currentBlock.NewBlock()
	c.margin = 0
	return true
}

// GetText flushes any pending content and joins every block with '\n'.
func (c *Canvas) GetText() string {
	c.FlushInline()
	return strings.Join(c.blocks, "\n")
}

// ensureMargin raises the running margin to required if it is not already
// at least that high, materializing the gap as a standalone padding block
// of required-margin-1 newline characters -- one short of what's needed
// because '\n'.join already supplies one separator on each side. The
// current block's idx advances by the full required-margin newlines the
// padding block and its extra join separator add to the output.
func (c *Canvas) ensureMargin(required int) {
	if required <= c.margin {
		return
	}
	delta := required - c.margin
	pad := strings.Repeat("\n", delta-1)
	c.blocks = append(c.blocks, pad)
	c.currentBlock.idx += delta
	c.margin = required
}

func (c *Canvas) writeUnconsumedBullet() {
	bullet := c.prefix.popBullet()
	if bullet == "" {
		return
	}
	c.currentBlock.Merge(bullet, WhiteSpaceNormal)
}