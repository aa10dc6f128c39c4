// Package renderer draws formatted document text to a display backend
// and drives the decoration dispatch for each frame.
//
// The renderer owns the per-frame pass: it pulls positioned graphemes
// from the formatter, paints them, and lets registered decorations ride
// along the same stream so that character-to-screen translation happens
// exactly once.
package renderer

import (
	"github.com/realbigsean/helix/internal/renderer/backend"
	"github.com/realbigsean/helix/internal/renderer/core"
	"github.com/realbigsean/helix/internal/renderer/viewport"
)

// TextRenderer is the draw surface handed to decorations. It couples a
// display backend with the viewport geometry of the current frame.
type TextRenderer struct {
	backend backend.Backend
	vp      *viewport.Viewport
}

// NewTextRenderer creates a renderer over the given backend and viewport.
func NewTextRenderer(b backend.Backend, vp *viewport.Viewport) *TextRenderer {
	return &TextRenderer{backend: b, vp: vp}
}

// ViewportWidth returns the viewport width in columns.
func (r *TextRenderer) ViewportWidth() int { return r.vp.Width() }

// ViewportHeight returns the viewport height in rows.
func (r *TextRenderer) ViewportHeight() int { return r.vp.Height() }

// ColOffset returns the horizontal scroll offset: the document visual
// column shown in the viewport's first column.
func (r *TextRenderer) ColOffset() int { return r.vp.LeftColumn() }

// ColumnInBounds reports whether a document visual column is within the
// horizontally scrolled view.
func (r *TextRenderer) ColumnInBounds(col int) bool {
	return r.vp.IsColumnVisible(col)
}

// DrawDecorationGrapheme draws one styled grapheme at a viewport
// relative position. Out-of-bounds positions are silently ignored, so
// decorations never need to clip their own output.
func (r *TextRenderer) DrawDecorationGrapheme(raw string, style core.Style, row, col int) {
	r.DrawGrapheme(raw, core.StringWidth(raw), style, row, col)
}

// DrawGrapheme draws a grapheme cluster occupying width columns at a
// viewport relative position. Tabs render as blank columns.
func (r *TextRenderer) DrawGrapheme(raw string, width int, style core.Style, row, col int) {
	if row < 0 || row >= r.vp.Height() || col >= r.vp.Width() {
		return
	}

	if raw == "\t" {
		for i := 0; i < width; i++ {
			r.setCell(col+i, row, core.NewStyledCell(' ', style))
		}
		return
	}

	// The cell grid holds one rune per column; the cluster's base rune
	// carries the glyph and wide clusters claim a continuation cell.
	var base rune
	for _, rn := range raw {
		base = rn
		break
	}
	r.setCell(col, row, core.Cell{Rune: base, Width: width, Style: style})
	for i := 1; i < width; i++ {
		cont := core.ContinuationCell()
		cont.Style = style
		r.setCell(col+i, row, cont)
	}
}

func (r *TextRenderer) setCell(x, y int, cell core.Cell) {
	if x < 0 || x >= r.vp.Width() {
		return
	}
	r.backend.SetCell(x, y, cell)
}

// ShowCaret positions the hardware cursor at a viewport relative
// position, typically taken from the caret cache after a pass.
func (r *TextRenderer) ShowCaret(pos core.ScreenPos) {
	r.backend.ShowCursor(pos.Col, pos.Row)
}

// HideCaret hides the hardware cursor.
func (r *TextRenderer) HideCaret() {
	r.backend.HideCursor()
}
