package decoration

import (
	"strings"

	"github.com/google/uuid"

	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/core"
	"github.com/realbigsean/helix/internal/renderer/format"
)

// InlineSuggestion paints a completion as ghost text continuing from
// the insertion point. The first suggestion line rides the target's own
// visual line; the remaining lines claim virtual rows below it.
//
// The suggestion reflows its own text against a viewport width,
// independent of the document's wrapping and with nothing concealed.
// Wrapping stays off: a ghost line wider than the viewport clips at
// the edge, since wrapped tails would spill into rows already promised
// to later decorations.
type InlineSuggestion struct {
	NoHooks

	id    string
	text  string
	row   int
	col   int
	style core.Style
	width int
}

// NewInlineSuggestion creates a suggestion anchored at the given
// document row and column, reflowed against width columns.
func NewInlineSuggestion(text string, row, col int, style core.Style, width int) *InlineSuggestion {
	return &InlineSuggestion{
		id:    uuid.NewString(),
		text:  text,
		row:   row,
		col:   col,
		style: style,
		width: width,
	}
}

// ID returns the suggestion's request ID, letting hosts correlate an
// accept or dismissal with the completion request that produced it.
func (s *InlineSuggestion) ID() string { return s.id }

// Text returns the full suggestion text.
func (s *InlineSuggestion) Text() string { return s.text }

func (s *InlineSuggestion) reflow(line string) *format.DocumentFormatter {
	cfg := format.TextFormat{ViewportWidth: s.width, TabWidth: 4}
	return format.New(line, cfg, nil, 0)
}

func (s *InlineSuggestion) DecorateLine(r *renderer.TextRenderer, pos renderer.LinePos) {
	if pos.DocLine != s.row {
		return
	}

	firstLine := s.text
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}

	df := s.reflow(firstLine)
	for {
		g, ok := df.Next()
		if !ok {
			break
		}
		// Only the tail from the insertion column on is ghost text.
		if g.CharIdx < s.col {
			continue
		}
		r.DrawDecorationGrapheme(g.Raw, s.style,
			pos.VisualLine+g.VisualPos.Row, g.VisualPos.Col)
	}
}

func (s *InlineSuggestion) RenderVirtLines(r *renderer.TextRenderer, pos renderer.LinePos, virtOff int) int {
	if pos.DocLine != s.row {
		return 0
	}

	lines := strings.Split(s.text, "\n")[1:]
	// Count before rendering so the row claim is settled regardless of
	// how much of the content survives clipping.
	n := len(lines)

	for idx, line := range lines {
		df := s.reflow(line)
		for {
			g, ok := df.Next()
			if !ok {
				break
			}
			r.DrawDecorationGrapheme(g.Raw, s.style,
				pos.VisualLine+virtOff+idx+g.VisualPos.Row, g.VisualPos.Col)
		}
	}

	return n
}
