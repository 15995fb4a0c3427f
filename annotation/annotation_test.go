// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package annotation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weichselbraun/inscriptis-go/annotation"
)

func TestAnnotation_JSONLShape(t *testing.T) {
	a := annotation.Annotation{Start: 1, End: 4, Label: "tag"}
	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `[1, 4, "tag"]`, string(data))

	var back annotation.Annotation
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, a, back)
}

func TestShift_LeftAligned(t *testing.T) {
	anns := []annotation.Annotation{{Start: 0, End: 3, Label: "x"}}
	shifted := annotation.Shift(anns, 3, 8, annotation.AlignLeft, 10)
	require.Equal(t, 10, shifted[0].Start)
	require.Equal(t, 13, shifted[0].End)
}

func TestShift_RightAligned(t *testing.T) {
	anns := []annotation.Annotation{{Start: 0, End: 3, Label: "x"}}
	shifted := annotation.Shift(anns, 3, 8, annotation.AlignRight, 10)
	require.Equal(t, 15, shifted[0].Start)
	require.Equal(t, 18, shifted[0].End)
}

func TestShift_CenterAligned(t *testing.T) {
	anns := []annotation.Annotation{{Start: 0, End: 4, Label: "x"}}
	shifted := annotation.Shift(anns, 4, 10, annotation.AlignCenter, 0)
	require.Equal(t, 3, shifted[0].Start)
	require.Equal(t, 7, shifted[0].End)
}
