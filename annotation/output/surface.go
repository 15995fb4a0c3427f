// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package output

// SurfaceForm is the literal substring of text a single annotation covers.
type SurfaceForm struct {
	Label   string `json:"label"`
	Surface string `json:"surface"`
}

// SurfaceResult extends AnnotatedText with the surface form of every
// annotation; it leaves Text and Label untouched.
type SurfaceResult struct {
	AnnotatedText
	Surface []SurfaceForm `json:"surface"`
}

// Surface extracts the surface form of every annotated label. It is
// non-destructive: Text and Label are copied through unchanged.
type Surface struct{}

// Extract implements Extractor.
func (Surface) Extract(a AnnotatedText) (interface{}, error) {
	forms := make([]SurfaceForm, 0, len(a.Label))
	runes := []rune(a.Text)
	for _, l := range a.Label {
		start, end := l.Start, l.End
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		forms = append(forms, SurfaceForm{Label: l.Label, Surface: string(runes[start:end])})
	}
	return SurfaceResult{AnnotatedText: a, Surface: forms}, nil
}

// Verbatim implements Extractor: the result is a structured value, not
// pre-rendered text, so the caller still needs to encode it.
func (Surface) Verbatim() bool { return false }