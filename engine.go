// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/weichselbraun/inscriptis-go/annotation"
)

// ulBullets is the cycling bullet sequence used for nested, unordered
// lists, indexed modulo its own length by the current <ul> nesting depth.
var ulBullets = []string{"* ", "+ ", "o ", "- "}

type listFrame struct {
	ordered bool
	bullet  string
	counter int
}

// Engine walks a parsed HTML tree exactly once, maintaining the tag stack,
// the canvas chain, and the per-conversion state (open link target, list
// counters, last image caption, table stack) the per-tag handlers need.
// An Engine instance is single-use and not safe for concurrent conversions;
// run one per document, as the concurrency model specifies.
type Engine struct {
	config          *ParserConfig
	annotationModel *AnnotationModel
	canvas          *Canvas

	startHandlers map[string]TagHandlerFunc
	endHandlers   map[string]TagHandlerFunc

	tagStack []*HtmlElement

	ulDepth    int
	listStack  []*listFrame
	linkStack  []string
	lastCaption string

	tables           []*Table
	rowStack         []*TableRow
	tableOuterCanvas []*Canvas
	tableSpliceStart []int
}

// NewEngine constructs an Engine for a single conversion using config (or
// DefaultParserConfig if nil).
func NewEngine(config *ParserConfig) *Engine {
	if config == nil {
		config = DefaultParserConfig()
	}
	if config.CSS == nil {
		config.CSS = RelaxedProfile()
	}
	if config.TableCellSeparator == "" {
		config.TableCellSeparator = "  "
	}

	model := ParseAnnotationRules(config.AnnotationRules, config.CSS)

	start := defaultStartHandlers()
	end := defaultEndHandlers()
	for tag, h := range config.CustomStartHandlers {
		start[tag] = h
	}
	for tag, h := range config.CustomEndHandlers {
		end[tag] = h
	}

	return &Engine{
		config:          config,
		annotationModel: model,
		canvas:          NewCanvas(),
		startHandlers:   start,
		endHandlers:     end,
	}
}

// Render performs the single depth-first walk over doc, accumulating text
// and annotations in the engine's canvas.
func (en *Engine) Render(doc *html.Node) {
	root := DefaultHtmlElement()
	root.Canvas = en.canvas
	rootPtr := &root
	en.tagStack = append(en.tagStack, rootPtr)
	en.walkChildren(doc, rootPtr)
	en.tagStack = en.tagStack[:len(en.tagStack)-1]
}

// GetText returns the rendered plain text.
func (en *Engine) GetText() string {
	return en.canvas.GetText()
}

// GetAnnotations returns every annotation recorded during Render.
func (en *Engine) GetAnnotations() []annotation.Annotation {
	return en.canvas.Annotations()
}

func (en *Engine) walkChildren(node *html.Node, parent *HtmlElement) {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		en.walkNode(c, parent)
	}
}

func (en *Engine) walkNode(node *html.Node, parent *HtmlElement) {
	switch node.Type {
	case html.TextNode:
		parent.Canvas.Write(parent, node.Data)
		return
	case html.ElementNode:
		// handled below
	default:
		// comments, doctypes, processing instructions: skipped, their
		// tail text (the next sibling in document order) is still
		// visited normally by walkChildren.
		return
	}

	tag := node.Data
	base := en.annotationModel.Profile.Get(tag)
	for _, a := range node.Attr {
		switch a.Key {
		case "style":
			base = CssParse(a.Val, base)
		case "align":
			base = AttrHorizontalAlign(a.Val, base)
		case "valign":
			base = AttrVerticalAlign(a.Val, base)
		}
	}
	en.annotationModel.Apply(&base, tag, node.Attr)

	elem := parent.Refine(base)
	elemPtr := &elem
	en.tagStack = append(en.tagStack, elemPtr)

	if h, ok := en.startHandlers[tag]; ok {
		h(en, node, elemPtr)
	}

	elemPtr.Canvas.OpenTag(elemPtr)

	en.walkChildren(node, elemPtr)

	if h, ok := en.endHandlers[tag]; ok {
		h(en, node, elemPtr)
	}

	elemPtr.Canvas.CloseTag(elemPtr)
	en.tagStack = en.tagStack[:len(en.tagStack)-1]
}

func attrVal(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func defaultStartHandlers() map[string]TagHandlerFunc {
	return map[string]TagHandlerFunc{
		"a":     startAnchor,
		"br":    startBr,
		"img":   startImg,
		"ul":    startUL,
		"ol":    startOL,
		"li":    startLI,
		"table": startTable,
		"tr":    startTR,
		"td":    startCell,
		"th":    startCell,
	}
}

func defaultEndHandlers() map[string]TagHandlerFunc {
	return map[string]TagHandlerFunc{
		"a":     endAnchor,
		"ul":    endList,
		"ol":    endList,
		"td":    endCell,
		"th":    endCell,
		"table": endTable,
	}
}

func startAnchor(en *Engine, node *html.Node, elem *HtmlElement) {
	target := ""
	if en.config.DisplayLinks {
		target = attrVal(node, "href")
	}
	if target == "" && en.config.DisplayAnchors {
		target = attrVal(node, "name")
	}
	en.linkStack = append(en.linkStack, target)
	if target != "" {
		elem.Canvas.Write(elem, "[")
	}
}

func endAnchor(en *Engine, node *html.Node, elem *HtmlElement) {
	if len(en.linkStack) == 0 {
		return
	}
	target := en.linkStack[len(en.linkStack)-1]
	en.linkStack = en.linkStack[:len(en.linkStack)-1]
	if target != "" {
		elem.Canvas.Write(elem, "]("+target+")")
	}
}

func startBr(en *Engine, node *html.Node, elem *HtmlElement) {
	elem.Canvas.WriteNewline()
}

func startImg(en *Engine, node *html.Node, elem *HtmlElement) {
	if !en.config.DisplayImages {
		return
	}
	caption := attrVal(node, "alt")
	if caption == "" {
		caption = attrVal(node, "title")
	}
	if caption == "" {
		return
	}
	if en.config.DeduplicateCaptions && caption == en.lastCaption {
		return
	}
	elem.Canvas.Write(elem, "["+caption+"]")
	en.lastCaption = caption
}

func startUL(en *Engine, node *html.Node, elem *HtmlElement) {
	en.ulDepth++
	bullet := ulBullets[(en.ulDepth-1)%len(ulBullets)]
	en.listStack = append(en.listStack, &listFrame{bullet: bullet})
}

func startOL(en *Engine, node *html.Node, elem *HtmlElement) {
	start := 1
	if v := attrVal(node, "value"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			start = n
		}
	}
	en.listStack = append(en.listStack, &listFrame{ordered: true, counter: start})
}

func endList(en *Engine, node *html.Node, elem *HtmlElement) {
	if len(en.listStack) == 0 {
		return
	}
	top := en.listStack[len(en.listStack)-1]
	en.listStack = en.listStack[:len(en.listStack)-1]
	if !top.ordered {
		en.ulDepth--
	}
}

func startLI(en *Engine, node *html.Node, elem *HtmlElement) {
	if len(en.listStack) == 0 {
		return
	}
	top := en.listStack[len(en.listStack)-1]
	if top.ordered {
		if v := attrVal(node, "value"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				top.counter = n
			}
		}
		elem.ListBullet = fmt.Sprintf("%d. ", top.counter)
		top.counter++
	} else {
		elem.ListBullet = top.bullet
	}
}

func startTable(en *Engine, node *html.Node, elem *HtmlElement) {
	outer := elem.Canvas
	en.tableOuterCanvas = append(en.tableOuterCanvas, outer)
	en.tableSpliceStart = append(en.tableSpliceStart, outer.CurrentIdx())

	sep := en.config.TableCellSeparator
	en.tables = append(en.tables, NewTable(outer.LeftMargin(), sep))
	en.rowStack = append(en.rowStack, nil)

	elem.Canvas = NewCanvas()
}

func startTR(en *Engine, node *html.Node, elem *HtmlElement) {
	if len(en.tables) == 0 {
		return
	}
	tbl := en.tables[len(en.tables)-1]
	en.rowStack[len(en.rowStack)-1] = tbl.AddRow()
}

func startCell(en *Engine, node *html.Node, elem *HtmlElement) {
	if len(en.tables) == 0 {
		return
	}
	tbl := en.tables[len(en.tables)-1]
	row := en.rowStack[len(en.rowStack)-1]
	if row == nil {
		row = tbl.AddRow()
		en.rowStack[len(en.rowStack)-1] = row
	}
	cell := NewTableCell(elem.Align, elem.Valign)
	row.AddCell(cell)
	elem.Canvas = cell.Canvas
}

func endCell(en *Engine, node *html.Node, elem *HtmlElement) {}

func endTable(en *Engine, node *html.Node, elem *HtmlElement) {
	if len(en.tables) == 0 {
		return
	}
	tbl := en.tables[len(en.tables)-1]
	en.tables = en.tables[:len(en.tables)-1]
	en.rowStack = en.rowStack[:len(en.rowStack)-1]

	outer := en.tableOuterCanvas[len(en.tableOuterCanvas)-1]
	en.tableOuterCanvas = en.tableOuterCanvas[:len(en.tableOuterCanvas)-1]
	preSplice := en.tableSpliceStart[len(en.tableSpliceStart)-1]
	en.tableSpliceStart = en.tableSpliceStart[:len(en.tableSpliceStart)-1]

	text, cellAnns := tbl.Render(preSplice)
	outer.WriteExplicit(text, WhiteSpacePre)
	for _, a := range cellAnns {
		outer.AppendAnnotation(a)
	}

	if len(elem.Annotation) > 0 {
		postSplice := outer.CurrentIdx()
		if postSplice != preSplice {
			for _, label := range elem.Annotation {
				outer.AppendAnnotation(annotation.Annotation{Start: preSplice, End: postSplice, Label: label})
			}
		}
	}

	elem.Canvas = outer
}