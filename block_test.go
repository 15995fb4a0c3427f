// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlock_LeadingWhitespaceIsDiscarded(t *testing.T) {
	prefix := NewPrefix()
	b := NewBlock(0, prefix)
	b.Merge("   ", WhiteSpaceNormal)
	require.True(t, b.IsEmpty())
	require.Equal(t, "", b.Content())
}

func TestBlock_WhitespaceCollapsesToSingleSpace(t *testing.T) {
	prefix := NewPrefix()
	b := NewBlock(0, prefix)
	b.Merge("a", WhiteSpaceNormal)
	b.Merge("   ", WhiteSpaceNormal)
	b.Merge("b", WhiteSpaceNormal)
	require.Equal(t, "a b", b.Content())
}

func TestBlock_TrailingCollapsedSpaceIsTrimmedOnce(t *testing.T) {
	prefix := NewPrefix()
	b := NewBlock(0, prefix)
	b.Merge("a ", WhiteSpaceNormal)
	require.Equal(t, "a", b.Content())
	require.Equal(t, "a", b.Content())
}

func TestBlock_PreTextPreservesWhitespaceAndIndentsContinuations(t *testing.T) {
	prefix := NewPrefix()
	prefix.RegisterPrefix(2, "")
	b := NewBlock(0, prefix)
	b.Merge("one\ntwo", WhiteSpacePre)
	// the block's own first-line prefix (here: plain padding, no bullet) is
	// prepended exactly once, to the first write into the block.
	require.Equal(t, "  one\n  two", b.Content())
}

func TestBlock_FirstWriteConsumesPrefixBullet(t *testing.T) {
	prefix := NewPrefix()
	prefix.RegisterPrefix(4, "* ")
	b := NewBlock(0, prefix)
	b.Merge("item", WhiteSpaceNormal)
	require.Equal(t, "  * item", b.Content())
}

func TestBlock_IsEmptyUntilFirstNonWhitespaceWrite(t *testing.T) {
	prefix := NewPrefix()
	b := NewBlock(0, prefix)
	require.True(t, b.IsEmpty())
	b.Merge("  ", WhiteSpaceNormal)
	require.True(t, b.IsEmpty())
	b.Merge("x", WhiteSpaceNormal)
	require.False(t, b.IsEmpty())
}
