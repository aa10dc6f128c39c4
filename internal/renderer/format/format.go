// Package format turns document text into a positioned grapheme stream.
//
// Translating character positions to screen coordinates is expensive,
// so it happens here exactly once per formatting pass. Anything drawn
// on top of the text (carets, ghost text, diagnostics) rides along the
// resulting stream instead of recomputing positions.
package format

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TextFormat configures how text is laid out.
type TextFormat struct {
	// ViewportWidth is the wrap width in columns. 0 disables wrapping.
	ViewportWidth int

	// TabWidth is the tab stop distance in columns.
	TabWidth int

	// SoftWrap wraps long lines onto additional visual rows instead of
	// letting them run past ViewportWidth.
	SoftWrap bool
}

// DefaultTextFormat returns a format for the given viewport width.
func DefaultTextFormat(width int) TextFormat {
	return TextFormat{
		ViewportWidth: width,
		TabWidth:      4,
		SoftWrap:      true,
	}
}

// VisualPos is a position in the formatted output, relative to the
// first formatted row.
type VisualPos struct {
	Row int
	Col int
}

// FormattedGrapheme is one user-perceived character positioned by the
// formatter. Graphemes are produced in non-decreasing CharIdx order.
type FormattedGrapheme struct {
	// CharIdx is the character index of the grapheme's first rune,
	// counted from the start of the document.
	CharIdx int

	// DocLine is the document line the grapheme belongs to.
	DocLine int

	// VisualPos is where the grapheme lands after tab expansion and
	// soft wrap.
	VisualPos VisualPos

	// Raw is the rendered grapheme cluster.
	Raw string

	// Width is the display width in columns.
	Width int
}

// ConcealedRange is a half-open character range [Start, End) elided
// from the rendered stream, e.g. a folded region.
type ConcealedRange struct {
	Start int
	End   int
}

// Annotations carries the compositing information for one formatting
// pass. The zero value (or a nil pointer) means plain reflow with
// nothing concealed, which is how overlay text such as inline
// suggestions is formatted.
type Annotations struct {
	concealed []ConcealedRange
}

// Conceal marks [start, end) as elided. Empty or inverted ranges are
// ignored.
func (a *Annotations) Conceal(start, end int) {
	if start >= end {
		return
	}
	// Keep ranges sorted by start; insertion is rare and sets are tiny.
	i := len(a.concealed)
	for i > 0 && a.concealed[i-1].Start > start {
		i--
	}
	a.concealed = append(a.concealed, ConcealedRange{})
	copy(a.concealed[i+1:], a.concealed[i:])
	a.concealed[i] = ConcealedRange{Start: start, End: end}
}

// covers reports whether charIdx falls inside a concealed range.
func (a *Annotations) covers(charIdx int) bool {
	if a == nil {
		return false
	}
	for _, r := range a.concealed {
		if r.Start > charIdx {
			return false
		}
		if charIdx < r.End {
			return true
		}
	}
	return false
}

// DocumentFormatter lazily yields positioned graphemes for a span of
// text. It is pull-based: call Next until it reports false. A formatter
// is not restartable; construct a new one to format again.
type DocumentFormatter struct {
	clusters *uniseg.Graphemes
	cfg      TextFormat
	ann      *Annotations

	charIdx int
	docLine int
	row     int
	col     int
}

// New creates a formatter for text, whose first character has document
// index firstCharIdx. ann may be nil.
func New(text string, cfg TextFormat, ann *Annotations, firstCharIdx int) *DocumentFormatter {
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 4
	}
	return &DocumentFormatter{
		clusters: uniseg.NewGraphemes(text),
		cfg:      cfg,
		ann:      ann,
		charIdx:  firstCharIdx,
	}
}

// Next returns the next positioned grapheme. The second return value is
// false when the text is exhausted.
func (f *DocumentFormatter) Next() (FormattedGrapheme, bool) {
	for f.clusters.Next() {
		raw := f.clusters.Str()
		idx := f.charIdx
		f.charIdx += len(f.clusters.Runes())

		if raw == "\n" || raw == "\r\n" {
			f.docLine++
			f.row++
			f.col = 0
			continue
		}

		// Concealed spans never reach the stream; character indices
		// jump past them.
		if f.ann.covers(idx) {
			continue
		}

		var width int
		if raw == "\t" {
			width = f.cfg.TabWidth - f.col%f.cfg.TabWidth
		} else {
			width = runewidth.StringWidth(raw)
			if width == 0 {
				// Control characters and bare combining marks have no
				// cell of their own.
				continue
			}
		}

		if f.cfg.SoftWrap && f.cfg.ViewportWidth > 0 &&
			f.col > 0 && f.col+width > f.cfg.ViewportWidth {
			f.row++
			f.col = 0
			if raw == "\t" {
				width = f.cfg.TabWidth
			}
		}

		g := FormattedGrapheme{
			CharIdx:   idx,
			DocLine:   f.docLine,
			VisualPos: VisualPos{Row: f.row, Col: f.col},
			Raw:       raw,
			Width:     width,
		}
		f.col += width
		return g, true
	}
	return FormattedGrapheme{}, false
}
