package decoration

import (
	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/format"
)

// Manager owns an ordered registry of decorations and dispatches the
// render pass events to them. Registration order is both rendering
// order and virtual-line stacking order.
//
// A manager lives for one render pass. Hosts either register fresh
// decorations each frame or keep the instances around when their state
// should carry over (the caret cache works that way).
type Manager struct {
	decorations []entry
}

type entry struct {
	dec    Decoration
	anchor Anchor
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddDecoration appends a decoration to the registry. The initial
// anchor is corrected by the next PrepareForRendering.
func (m *Manager) AddDecoration(d Decoration) {
	m.decorations = append(m.decorations, entry{dec: d, anchor: AnchorAt(0)})
}

// PrepareForRendering establishes every decoration's first anchor for
// the pass. Must be called once before the first visual line of a
// frame is processed.
func (m *Manager) PrepareForRendering(firstVisibleChar int) {
	for i := range m.decorations {
		m.decorations[i].anchor = m.decorations[i].dec.ResetPos(firstVisibleChar)
	}
}

// DecorateGrapheme advances every decoration across the grapheme.
// Anchors that fell behind the stream (their target was concealed) are
// caught up with skip events first; an anchor that matches exactly
// fires the grapheme hook.
func (m *Manager) DecorateGrapheme(r *renderer.TextRenderer, g *format.FormattedGrapheme) {
	for i := range m.decorations {
		e := &m.decorations[i]
	dispatch:
		for e.anchor.Active() {
			switch {
			case e.anchor.CharIdx() < g.CharIdx:
				// The anchor's span was concealed, or this is the first
				// grapheme of the pass. Each skip must strictly advance
				// the anchor, so this loop is bounded by contract.
				e.anchor = e.dec.SkipConcealedAnchor(g.CharIdx)
			case e.anchor.CharIdx() == g.CharIdx:
				e.anchor = e.dec.DecorateGrapheme(r, g)
			default:
				// Not yet relevant.
				break dispatch
			}
		}
	}
}

// DecorateLine fires every decoration's line hook, in registration
// order, before the line's text is drawn.
func (m *Manager) DecorateLine(r *renderer.TextRenderer, pos renderer.LinePos) {
	for i := range m.decorations {
		m.decorations[i].dec.DecorateLine(r, pos)
	}
}

// RenderVirtualLines gives each decoration, in registration order, a
// disjoint run of virtual rows below the line. Decorations whose rows
// would start past the bottom of the viewport are skipped: truncation,
// not an error. Returns the total number of virtual rows consumed.
func (m *Manager) RenderVirtualLines(r *renderer.TextRenderer, pos renderer.LinePos) int {
	// Offset 0 is the text line itself and is never claimed.
	virtOff := 1
	for i := range m.decorations {
		if pos.VisualLine+virtOff >= r.ViewportHeight() {
			break
		}
		virtOff += m.decorations[i].dec.RenderVirtLines(r, pos, virtOff)
	}
	return virtOff - 1
}

// Len returns the number of registered decorations.
func (m *Manager) Len() int {
	return len(m.decorations)
}
