package decoration

import (
	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/core"
	"github.com/realbigsean/helix/internal/renderer/format"
)

// CaretCache is a single-slot, frame-scoped output cell holding the
// resolved screen position of the primary caret. The Caret decoration
// writes it at most once per pass; the caret drawing step reads it
// strictly afterward, so plain sequencing keeps it consistent.
type CaretCache struct {
	pos core.ScreenPos
	set bool
}

// Set stores the caret's screen position.
func (c *CaretCache) Set(pos core.ScreenPos) {
	c.pos = pos
	c.set = true
}

// Get returns the cached position and whether one was recorded this
// frame.
func (c *CaretCache) Get() (core.ScreenPos, bool) {
	return c.pos, c.set
}

// Reset clears the cache for the next frame.
func (c *CaretCache) Reset() {
	c.set = false
}

// Caret records where the primary caret lands on screen. Caret drawing
// itself is done externally; all this decoration does is save the
// position of the caret's grapheme as the stream passes it.
type Caret struct {
	NoHooks

	// Cache receives the resolved screen position.
	Cache *CaretCache

	// Target is the caret's document character index.
	Target int
}

func (c *Caret) ResetPos(firstVisibleChar int) Anchor {
	if firstVisibleChar <= c.Target {
		return AnchorAt(c.Target)
	}
	// The caret is behind the visible region; it cannot appear this
	// pass.
	return NoAnchor()
}

func (c *Caret) SkipConcealedAnchor(concealEndCharIdx int) Anchor {
	return c.ResetPos(concealEndCharIdx)
}

func (c *Caret) DecorateGrapheme(r *renderer.TextRenderer, g *format.FormattedGrapheme) Anchor {
	if r.ColumnInBounds(g.VisualPos.Col) {
		c.Cache.Set(core.ScreenPos{
			Row: g.VisualPos.Row,
			Col: g.VisualPos.Col - r.ColOffset(),
		})
	}
	// Fires at most once per frame.
	return NoAnchor()
}
