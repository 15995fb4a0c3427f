// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefix_FirstConsumesBulletOnce(t *testing.T) {
	p := NewPrefix()
	p.RegisterPrefix(4, "* ")
	require.Equal(t, "  * ", p.First())
	require.Equal(t, "", p.First())
	p.Restore()
	require.Equal(t, "    ", p.First())
}

func TestPrefix_RestIsAlwaysPadding(t *testing.T) {
	p := NewPrefix()
	p.RegisterPrefix(4, "* ")
	require.Equal(t, "    ", p.Rest())
	require.Equal(t, "    ", p.Rest())
}

func TestPrefix_NestedPadding(t *testing.T) {
	p := NewPrefix()
	p.RegisterPrefix(4, "")
	p.RegisterPrefix(2, "- ")
	require.Equal(t, 6, p.CurrentPadding())
	require.Equal(t, "    - ", p.First())
	p.RemoveLastPrefix()
	require.Equal(t, 4, p.CurrentPadding())
}

func TestPrefix_PopBulletClearsSlot(t *testing.T) {
	p := NewPrefix()
	p.RegisterPrefix(4, "* ")
	require.Equal(t, "* ", p.popBullet())
	require.Equal(t, "", p.popBullet())
}
