package renderer

import (
	"strings"

	"github.com/realbigsean/helix/internal/renderer/core"
	"github.com/realbigsean/helix/internal/renderer/format"
)

// LinePos describes one visual line of the frame as it is rendered.
type LinePos struct {
	// DocLine is the document line index.
	DocLine int

	// VisualLine is the viewport row the line's text occupies.
	VisualLine int

	// RowOffset is the line's visual row within its document line:
	// 0 for the first row, counting up under soft wrap.
	RowOffset int
}

// Decorations is the hook surface the render loop drives. It is
// implemented by decoration.Manager; the render loop only needs the
// dispatch entry points, not the registry.
type Decorations interface {
	// PrepareForRendering is called once before the first visual line.
	PrepareForRendering(firstVisibleChar int)

	// DecorateLine is called before any text of a visual line is drawn.
	DecorateLine(r *TextRenderer, pos LinePos)

	// DecorateGrapheme is called for every grapheme, in stream order.
	DecorateGrapheme(r *TextRenderer, g *format.FormattedGrapheme)

	// RenderVirtualLines is called after a visual line's text is drawn
	// and returns the number of virtual rows claimed below it.
	RenderVirtualLines(r *TextRenderer, pos LinePos) int
}

// RenderDocument renders one frame: it formats text (whose first
// character has document index firstVisibleChar), paints it in the
// given style, and dispatches every line, grapheme, and virtual-line
// event to decorations. Rows claimed by virtual lines push subsequent
// text rows down; rendering stops at the bottom of the viewport.
//
// decorations may be nil for plain text rendering.
func RenderDocument(
	tr *TextRenderer,
	text string,
	firstVisibleChar int,
	cfg format.TextFormat,
	ann *format.Annotations,
	style core.Style,
	decorations Decorations,
) {
	df := format.New(text, cfg, ann, firstVisibleChar)
	if decorations != nil {
		decorations.PrepareForRendering(firstVisibleChar)
	}

	// rowShift accumulates virtual rows claimed above the current line.
	rowShift := 0
	curRow := -1
	lastDocLine := -1
	rowOffset := 0
	var pos LinePos
	lineOpen := false

	for {
		g, ok := df.Next()
		if !ok {
			break
		}

		if g.VisualPos.Row != curRow {
			if lineOpen && decorations != nil {
				rowShift += decorations.RenderVirtualLines(tr, pos)
			}
			lineOpen = false

			// Rows with no graphemes are empty document lines; they
			// still get their line and virtual-line events.
			for skipped := curRow + 1; skipped < g.VisualPos.Row; skipped++ {
				emptyRow := skipped + rowShift
				if emptyRow >= tr.ViewportHeight() {
					return
				}
				lastDocLine++
				emptyPos := LinePos{DocLine: lastDocLine, VisualLine: emptyRow}
				if decorations != nil {
					decorations.DecorateLine(tr, emptyPos)
					rowShift += decorations.RenderVirtualLines(tr, emptyPos)
				}
			}

			if g.DocLine == lastDocLine {
				rowOffset++
			} else {
				rowOffset = 0
				lastDocLine = g.DocLine
			}

			screenRow := g.VisualPos.Row + rowShift
			if screenRow >= tr.ViewportHeight() {
				return
			}
			curRow = g.VisualPos.Row
			pos = LinePos{DocLine: g.DocLine, VisualLine: screenRow, RowOffset: rowOffset}
			lineOpen = true
			if decorations != nil {
				decorations.DecorateLine(tr, pos)
			}
		}

		// Decorations observe final screen rows, so fold the virtual
		// row shift into the grapheme they see.
		sg := g
		sg.VisualPos.Row += rowShift
		if decorations != nil {
			decorations.DecorateGrapheme(tr, &sg)
		}

		if tr.ColumnInBounds(g.VisualPos.Col) {
			tr.DrawGrapheme(g.Raw, g.Width, style, sg.VisualPos.Row, g.VisualPos.Col-tr.ColOffset())
		}
	}

	if lineOpen && decorations != nil {
		rowShift += decorations.RenderVirtualLines(tr, pos)
	}

	// Document lines after the last grapheme are empty, but decorations
	// may still be anchored there (a completion on a fresh line); they
	// get their line and virtual-line events like any other row.
	totalLines := strings.Count(text, "\n") + 1
	for docLine := lastDocLine + 1; docLine < totalLines; docLine++ {
		curRow++
		screenRow := curRow + rowShift
		if screenRow >= tr.ViewportHeight() {
			return
		}
		tail := LinePos{DocLine: docLine, VisualLine: screenRow}
		if decorations != nil {
			decorations.DecorateLine(tr, tail)
			rowShift += decorations.RenderVirtualLines(tr, tail)
		}
	}
}
