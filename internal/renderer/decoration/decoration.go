// Package decoration implements the overlay protocol for the renderer.
//
// Any on-screen element anchored to rendered text in some form (the
// caret, inline AI completions, diagnostics) is a Decoration.
// Translating character positions to screen positions is expensive and
// must not be repeated per overlay; translations happen once while the
// text is rendered and the results are fed to every registered
// decoration as the pass goes by.
package decoration

import (
	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/format"
)

// Anchor is the next document character index at which a decoration
// expects to act. The zero value is inactive: the decoration takes no
// further grapheme events this pass.
type Anchor struct {
	charIdx int
	active  bool
}

// AnchorAt returns an anchor watching the given character index.
func AnchorAt(charIdx int) Anchor {
	return Anchor{charIdx: charIdx, active: true}
}

// NoAnchor returns the inactive anchor.
func NoAnchor() Anchor {
	return Anchor{}
}

// Active reports whether the anchor is watching for a position.
func (a Anchor) Active() bool { return a.active }

// CharIdx returns the watched character index. Only meaningful when
// the anchor is active.
func (a Anchor) CharIdx() int { return a.charIdx }

// Decoration is implemented by every overlay riding along a render
// pass. Embed NoHooks to pick up no-op defaults for the hooks a
// decoration does not need.
type Decoration interface {
	// ResetPos is called once per frame with the character index of the
	// first visible document position. It returns the first anchor this
	// decoration wants to act at, or the inactive anchor.
	ResetPos(firstVisibleChar int) Anchor

	// SkipConcealedAnchor is called when the span containing the
	// current anchor was concealed before a grapheme was produced for
	// it. concealEndCharIdx is the first character index at or past the
	// end of the concealed span. The returned anchor must not precede
	// the current one. Decorations with a meaningful ResetPos usually
	// forward to it.
	SkipConcealedAnchor(concealEndCharIdx int) Anchor

	// DecorateLine fires before any text of a visual line is drawn.
	// Setting a foreground color here is pointless as the text drawing
	// overwrites it; backgrounds and markers are fair game.
	DecorateLine(r *renderer.TextRenderer, pos renderer.LinePos)

	// DecorateGrapheme fires when the current anchor equals the
	// grapheme's character index, and returns the next anchor.
	DecorateGrapheme(r *renderer.TextRenderer, g *format.FormattedGrapheme) Anchor

	// RenderVirtLines fires after a visual line's text is drawn.
	// virtOff is the number of virtual rows already claimed below this
	// line by earlier decorations; content goes to rows starting at
	// pos.VisualLine + virtOff. Returns the number of rows consumed.
	RenderVirtLines(r *renderer.TextRenderer, pos renderer.LinePos, virtOff int) int
}

// NoHooks provides no-op defaults for every Decoration hook.
type NoHooks struct{}

func (NoHooks) ResetPos(int) Anchor { return NoAnchor() }

func (NoHooks) SkipConcealedAnchor(int) Anchor { return NoAnchor() }

func (NoHooks) DecorateLine(*renderer.TextRenderer, renderer.LinePos) {}

func (NoHooks) DecorateGrapheme(*renderer.TextRenderer, *format.FormattedGrapheme) Anchor {
	return NoAnchor()
}

func (NoHooks) RenderVirtLines(*renderer.TextRenderer, renderer.LinePos, int) int { return 0 }
