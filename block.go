// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"html"
	"strings"
)

// Block accumulates one logical output line. It tracks the global character
// index of its first character (idx), a reference to the Prefix shared by
// every Block of the same Canvas, and whether the most recently appended
// character is whitespace that may still be collapsed away.
type Block struct {
	idx                   int
	prefix                *Prefix
	buf                   []rune
	collapsableWhitespace bool
}

// NewBlock returns an empty Block starting at the given global index.
// collapsableWhitespace starts true so that whitespace-only text written at
// the very start of a fresh block is discarded entirely rather than turned
// into a leading space.
func NewBlock(idx int, prefix *Prefix) *Block {
	return &Block{idx: idx, prefix: prefix, collapsableWhitespace: true}
}

// IsEmpty reports whether anything has been written to the block yet.
func (b *Block) IsEmpty() bool {
	return len(b.buf) == 0
}

// Idx is the block's current global character index: its first character's
// index plus however many characters have been appended so far.
func (b *Block) Idx() int {
	return b.idx
}

// Merge appends text to the block, collapsing whitespace in normal mode or
// preserving it verbatim (while still indenting continuation lines) in pre
// mode.
func (b *Block) Merge(text string, ws WhiteSpace) {
	if text == "" {
		return
	}
	if ws == WhiteSpacePre {
		b.mergePreText(text)
	} else {
		b.mergeNormalText(text)
	}
}

func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

func (b *Block) mergeNormalText(s string) {
	normalized := make([]rune, 0, len(s))
	for _, r := range s {
		if isHTMLSpace(r) {
			if !b.collapsableWhitespace {
				normalized = append(normalized, ' ')
				b.collapsableWhitespace = true
			}
		} else {
			normalized = append(normalized, r)
			b.collapsableWhitespace = false
		}
	}
	if len(normalized) == 0 {
		return
	}
	b.append(string(normalized))
}

func (b *Block) mergePreText(s string) {
	replaced := strings.ReplaceAll(s, "\n", "\n"+b.prefix.Rest())
	b.append(replaced)
}

// append prepends the Prefix's first-line text exactly once, on the first
// write into an otherwise-empty block, unescapes HTML entities, and
// advances idx by the number of runes actually appended.
func (b *Block) append(s string) {
	prefixText := ""
	if len(b.buf) == 0 {
		prefixText = b.prefix.First()
	}
	final := []rune(html.UnescapeString(prefixText + s))
	b.buf = append(b.buf, final...)
	b.idx += len(final)
}

// Content returns the block's text, trimming a single trailing space if it
// was introduced by whitespace collapsing -- the invariant that guarantees
// lines never end with a collapsed space. The trim (and the matching idx
// decrement) is applied at most once; Content is meant to be read when the
// block is about to be flushed and discarded.
func (b *Block) Content() string {
	if b.collapsableWhitespace && len(b.buf) > 0 && b.buf[len(b.buf)-1] == ' ' {
		b.buf = b.buf[:len(b.buf)-1]
		b.idx--
		b.collapsableWhitespace = false
	}
	return string(b.buf)
}

// NewBlock resets the shared Prefix's consumed flag and returns a fresh
// Block positioned one past this block's current index (room for the
// pending newline between blocks), sharing the same Prefix instance.
func (b *Block) NewBlock() *Block {
	b.prefix.Restore()
	return NewBlock(b.idx+1, b.prefix)
}