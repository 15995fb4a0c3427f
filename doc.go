// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/weichselbraun/inscriptis-go/annotation"
)

// xmlDeclarationRE strips a leading XML declaration before parsing, e.g.
// when converting XHTML that begins with <?xml version="1.0"?>.
var xmlDeclarationRE = regexp.MustCompile(`^<\?xml [^>]+?\?>`)

// AnnotatedText is the (text, labels) pair GetAnnotatedText returns.
type AnnotatedText struct {
	Text  string
	Label []annotation.Annotation
}

// Inscriptis parses an HTML document once and exposes its rendered text
// and annotations.
type Inscriptis struct {
	engine *Engine
}

// NewInscriptis parses htmlSrc and renders it against config (or
// DefaultParserConfig if nil).
//
// The engine never raises on content: empty or whitespace-only input
// short-circuits to an empty conversion without touching the parser, and a
// reader failure while parsing is retried once with the input wrapped in a
// synthetic <pre> element so that any string, however malformed, still
// produces text.
func NewInscriptis(htmlSrc string, config *ParserConfig) (*Inscriptis, error) {
	engine := NewEngine(config)

	if strings.TrimSpace(htmlSrc) == "" {
		return &Inscriptis{engine: engine}, nil
	}

	doc, err := parseHTML(htmlSrc)
	if err != nil {
		return nil, errors.Wrap(err, "inscriptis: parsing html")
	}

	engine.Render(doc)
	return &Inscriptis{engine: engine}, nil
}

func parseHTML(htmlSrc string) (*html.Node, error) {
	stripped := xmlDeclarationRE.ReplaceAllString(htmlSrc, "")

	doc, err := html.Parse(strings.NewReader(stripped))
	if err == nil {
		return doc, nil
	}

	// html.Parse's tokenizer is forgiving by design and essentially never
	// returns a syntax error; this fallback exists for the rare case of a
	// reader failure, mirroring the source library's wrap-and-retry policy.
	wrapped := "<pre>" + stripped + "</pre>"
	return html.Parse(strings.NewReader(wrapped))
}

// GetText returns the rendered plain text.
func (i *Inscriptis) GetText() string {
	return i.engine.GetText()
}

// GetAnnotations returns every annotation recorded during conversion.
func (i *Inscriptis) GetAnnotations() []annotation.Annotation {
	return i.engine.GetAnnotations()
}

// GetText converts html to plain text using config (or DefaultParserConfig
// if nil).
func GetText(htmlSrc string, config *ParserConfig) (string, error) {
	doc, err := NewInscriptis(htmlSrc, config)
	if err != nil {
		return "", err
	}
	return doc.GetText(), nil
}

// GetAnnotatedText converts html to plain text and its annotations, using
// config (or DefaultParserConfig if nil).
func GetAnnotatedText(htmlSrc string, config *ParserConfig) (AnnotatedText, error) {
	doc, err := NewInscriptis(htmlSrc, config)
	if err != nil {
		return AnnotatedText{}, err
	}
	return AnnotatedText{Text: doc.GetText(), Label: doc.GetAnnotations()}, nil
}