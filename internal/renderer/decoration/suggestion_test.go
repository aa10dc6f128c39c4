package decoration

import (
	"testing"

	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/core"
)

func TestInlineSuggestionMultiline(t *testing.T) {
	tr, b := testRenderer(t, 80, 24)
	s := NewInlineSuggestion("foo(\n  bar,\n)", 3, 0, core.Style{}, 80)

	pos := renderer.LinePos{DocLine: 3, VisualLine: 5}
	s.DecorateLine(tr, pos)
	n := s.RenderVirtLines(tr, pos, 1)

	if n != 2 {
		t.Errorf("virtual rows = %d, want 2", n)
	}
	if got := b.RowString(5); got != "foo(" {
		t.Errorf("row 5 = %q, want %q", got, "foo(")
	}
	if got := b.RowString(6); got != "  bar," {
		t.Errorf("row 6 = %q, want %q", got, "  bar,")
	}
	if got := b.RowString(7); got != ")" {
		t.Errorf("row 7 = %q, want %q", got, ")")
	}
}

func TestInlineSuggestionSingleLineClaimsNoRows(t *testing.T) {
	tr, b := testRenderer(t, 80, 24)
	s := NewInlineSuggestion("return nil", 0, 0, core.Style{}, 80)

	pos := renderer.LinePos{DocLine: 0, VisualLine: 0}
	s.DecorateLine(tr, pos)
	if n := s.RenderVirtLines(tr, pos, 1); n != 0 {
		t.Errorf("virtual rows = %d, want 0", n)
	}
	if got := b.RowString(0); got != "return nil" {
		t.Errorf("row 0 = %q, want %q", got, "return nil")
	}
}

func TestInlineSuggestionSkipsPrefixColumns(t *testing.T) {
	tr, b := testRenderer(t, 80, 24)
	// Only the tail from the insertion column is ghost text; the host
	// already drew "val x = " itself.
	s := NewInlineSuggestion("val x = 42", 0, 8, core.Style{}, 80)

	s.DecorateLine(tr, renderer.LinePos{DocLine: 0, VisualLine: 0})

	if got := b.RowString(0); got != "        42" {
		t.Errorf("row 0 = %q, want ghost tail at column 8", got)
	}
}

func TestInlineSuggestionOverlongLineClipsNotWraps(t *testing.T) {
	tr, b := testRenderer(t, 10, 24)
	s := NewInlineSuggestion("x\nabcdefghijklmn", 0, 0, core.Style{}, 10)
	after := &recorder{virtRows: 1}

	m := NewManager()
	m.AddDecoration(s)
	m.AddDecoration(after)

	pos := renderer.LinePos{DocLine: 0, VisualLine: 0}
	used := m.RenderVirtualLines(tr, pos)

	if used != 2 {
		t.Errorf("total virtual rows = %d, want 2", used)
	}
	if got := b.RowString(1); got != "abcdefghij" {
		t.Errorf("row 1 = %q, want clipped %q", got, "abcdefghij")
	}
	// The overlong line must not spill onto the row promised to the
	// next decoration.
	if got := b.RowString(2); got != "" {
		t.Errorf("row 2 = %q, want empty", got)
	}
	if len(after.virtCalls) != 1 || after.virtCalls[0] != 2 {
		t.Errorf("next decoration offsets = %v, want [2]", after.virtCalls)
	}
}

func TestInlineSuggestionWrongLineNoop(t *testing.T) {
	tr, b := testRenderer(t, 80, 24)
	s := NewInlineSuggestion("foo(\nbar", 3, 0, core.Style{}, 80)

	pos := renderer.LinePos{DocLine: 2, VisualLine: 2}
	s.DecorateLine(tr, pos)
	if n := s.RenderVirtLines(tr, pos, 1); n != 0 {
		t.Errorf("virtual rows = %d, want 0 on a non-anchor line", n)
	}
	if got := b.RowString(2); got != "" {
		t.Errorf("row 2 = %q, want empty", got)
	}
}

func TestInlineSuggestionStyleApplied(t *testing.T) {
	tr, b := testRenderer(t, 80, 24)
	ghost := core.NewStyle(core.ColorFromRGB(128, 128, 128)).Italic()
	s := NewInlineSuggestion("hint", 0, 0, ghost, 80)

	s.DecorateLine(tr, renderer.LinePos{DocLine: 0, VisualLine: 0})

	cell := b.CellAt(0, 0)
	if !cell.Style.Equals(ghost) {
		t.Errorf("cell style = %+v, want ghost style", cell.Style)
	}
}

func TestInlineSuggestionIDsDistinct(t *testing.T) {
	a := NewInlineSuggestion("x", 0, 0, core.Style{}, 80)
	b := NewInlineSuggestion("x", 0, 0, core.Style{}, 80)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("IDs not distinct: %q vs %q", a.ID(), b.ID())
	}
	if a.Text() != "x" {
		t.Errorf("Text() = %q, want %q", a.Text(), "x")
	}
}
