// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/weichselbraun/inscriptis-go/annotation"
)

// TableCell is a Canvas whose rendered content is later laid out as one
// column of a table row. align/valign mirror the <td>/<th> element's
// effective alignment; the remaining fields are populated by Table.Render
// so that annotations recorded while the cell was being written can later
// be translated into the outer document's coordinate space.
type TableCell struct {
	*Canvas
	Align  HorizontalAlignment
	Valign VerticalAlignment

	blocks          []string
	originalLineLen []int
	verticalPadding int
	lineWidth       []int
	width           int
	height          int
}

// NewTableCell returns an empty table cell with the given alignment.
func NewTableCell(align HorizontalAlignment, valign VerticalAlignment) *TableCell {
	return &TableCell{Canvas: NewCanvas(), Align: align, Valign: valign}
}

// TableRow is an ordered list of table cells.
type TableRow struct {
	Columns []*TableCell
}

// AddCell appends cell as the row's next column.
func (r *TableRow) AddCell(cell *TableCell) {
	r.Columns = append(r.Columns, cell)
}

// Table lays out a sequence of rows into aligned, fixed-width columns.
// LeftMarginLen records the left indentation of the context the table was
// opened in, needed to translate intra-table offsets to outer-canvas
// offsets; CellSeparator is the string placed between adjacent cells.
type Table struct {
	Rows          []*TableRow
	LeftMarginLen int
	CellSeparator string
}

// NewTable returns an empty table.
func NewTable(leftMarginLen int, cellSeparator string) *Table {
	if cellSeparator == "" {
		cellSeparator = "  "
	}
	return &Table{LeftMarginLen: leftMarginLen, CellSeparator: cellSeparator}
}

// AddRow appends and returns a new, empty row.
func (t *Table) AddRow() *TableRow {
	row := &TableRow{}
	t.Rows = append(t.Rows, row)
	return row
}

// Render computes column widths and row heights, formats every cell, and
// returns the table's rendered text together with every in-cell annotation
// translated into offsets absolute to spliceIdx, the position in the outer
// canvas where the rendered table text will be written.
func (t *Table) Render(spliceIdx int) (string, []annotation.Annotation) {
	t.normalizeBlocks()
	t.setRowHeight()
	rowWidths := t.setColumnWidth()

	// rowStart is the character offset of each row's first line within the
	// rendered table text; rows may differ in width, so it is accumulated
	// row by row.
	rowStart := make([]int, len(t.Rows))
	offset := 0
	for i, row := range t.Rows {
		rowStart[i] = offset
		offset += rowHeight(row) * (rowWidths[i] + 1)
	}

	var anns []annotation.Annotation
	var lines []string
	for ri, row := range t.Rows {
		height := rowHeight(row)
		for l := 0; l < height; l++ {
			parts := make([]string, len(row.Columns))
			for ci, cell := range row.Columns {
				if l < len(cell.blocks) {
					parts[ci] = cell.blocks[l]
				}
			}
			lines = append(lines, strings.Join(parts, t.CellSeparator))
		}

		for ci, cell := range row.Columns {
			colOffset := t.LeftMarginLen + ci*len([]rune(t.CellSeparator))
			for _, prior := range row.Columns[:ci] {
				colOffset += prior.width
			}
			for _, a := range cell.Annotations() {
				anns = append(anns, t.transferAnnotation(a, cell, spliceIdx, rowWidths[ri], rowStart[ri], colOffset))
			}
		}
	}

	text := strings.Join(lines, "\n")
	if len(lines) > 0 {
		text += "\n"
	}
	return text, anns
}

func rowHeight(row *TableRow) int {
	h := 0
	for _, c := range row.Columns {
		if c.height > h {
			h = c.height
		}
	}
	return h
}

func (t *Table) normalizeBlocks() {
	for _, row := range t.Rows {
		for _, cell := range row.Columns {
			text := cell.GetText()
			lines := strings.Split(text, "\n")
			cell.blocks = lines
			cell.originalLineLen = make([]int, len(lines))
			for i, l := range lines {
				cell.originalLineLen[i] = len([]rune(l))
			}
			cell.height = len(lines)
		}
	}
}

func (t *Table) setRowHeight() {
	for _, row := range t.Rows {
		height := rowHeight(row)
		for _, cell := range row.Columns {
			delta := height - cell.height
			if delta <= 0 {
				continue
			}
			switch cell.Valign {
			case VAlignTop:
				for i := 0; i < delta; i++ {
					cell.blocks = append(cell.blocks, "")
				}
			case VAlignBottom:
				cell.blocks = append(make([]string, delta), cell.blocks...)
				cell.verticalPadding = delta
			default:
				top := delta / 2
				bottom := delta - top
				cell.blocks = append(make([]string, top), cell.blocks...)
				for i := 0; i < bottom; i++ {
					cell.blocks = append(cell.blocks, "")
				}
				cell.verticalPadding = top
			}
			cell.height = height
		}
	}
}

// setColumnWidth equalizes every column's width across the rows that have
// that many columns, pads each cell's lines to it, and returns each row's
// total visual width (the table's LeftMarginLen plus the sum of its
// columns' widths and separators).
func (t *Table) setColumnWidth() []int {
	maxColumns := 0
	for _, row := range t.Rows {
		if len(row.Columns) > maxColumns {
			maxColumns = len(row.Columns)
		}
	}

	for c := 0; c < maxColumns; c++ {
		width := 0
		for _, row := range t.Rows {
			if c < len(row.Columns) {
				if w := cellMaxLineWidth(row.Columns[c]); w > width {
					width = w
				}
			}
		}
		for _, row := range t.Rows {
			if c >= len(row.Columns) {
				continue
			}
			cell := row.Columns[c]
			cell.lineWidth = make([]int, len(cell.blocks))
			for i, l := range cell.blocks {
				cell.lineWidth[i] = runewidth.StringWidth(l)
			}
			for i, l := range cell.blocks {
				cell.blocks[i] = padToWidth(l, width, cell.Align)
			}
			cell.width = width
		}
	}

	sepLen := len([]rune(t.CellSeparator))
	rowWidths := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		w := t.LeftMarginLen
		for ci, cell := range row.Columns {
			w += cell.width
			if ci > 0 {
				w += sepLen
			}
		}
		rowWidths[i] = w
	}
	return rowWidths
}

func cellMaxLineWidth(cell *TableCell) int {
	w := 0
	for _, l := range cell.blocks {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	return w
}

func padToWidth(s string, width int, align HorizontalAlignment) string {
	switch align {
	case AlignRight:
		return runewidth.FillLeft(s, width)
	case AlignCenter:
		w := runewidth.StringWidth(s)
		gap := width - w
		if gap <= 0 {
			return s
		}
		left := gap / 2
		right := gap - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return runewidth.FillRight(s, width)
	}
}

// transferAnnotation relocates a single in-cell annotation (recorded in
// offsets local to the cell's own, pre-padding text) to its final position
// in the outer canvas, accounting for vertical padding inserted above the
// annotation's line, horizontal padding within the line, and the line's
// position within the overall table.
func (t *Table) transferAnnotation(a annotation.Annotation, cell *TableCell, spliceIdx, rowWidth, rowStart, colOffset int) annotation.Annotation {
	origLine, col := locateLine(a.Start, cell.originalLineLen)
	finalLine := origLine + cell.verticalPadding
	contentWidth := 0
	if finalLine < len(cell.lineWidth) {
		contentWidth = cell.lineWidth[finalLine]
	}

	shiftBase := spliceIdx + rowStart + finalLine*(rowWidth+1) + colOffset

	shifted := annotation.Shift(
		[]annotation.Annotation{{Start: col, End: col + (a.End - a.Start), Label: a.Label}},
		contentWidth, cell.width, toAnnotationAlign(cell.Align), shiftBase,
	)
	return shifted[0]
}

func locateLine(offset int, lineLens []int) (lineIdx, col int) {
	pos := 0
	for i, l := range lineLens {
		lineEnd := pos + l
		if offset <= lineEnd {
			return i, offset - pos
		}
		pos = lineEnd + 1
	}
	if len(lineLens) == 0 {
		return 0, offset
	}
	last := len(lineLens) - 1
	return last, offset - pos
}

func toAnnotationAlign(a HorizontalAlignment) annotation.HorizontalAlignment {
	switch a {
	case AlignRight:
		return annotation.AlignRight
	case AlignCenter:
		return annotation.AlignCenter
	default:
		return annotation.AlignLeft
	}
}