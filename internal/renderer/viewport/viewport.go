// Package viewport provides the visible-region geometry for the
// renderer: size, scroll offsets, and buffer/screen coordinate
// mapping. A viewport is owned by one render pass at a time and is not
// safe for concurrent use.
package viewport

// Viewport represents the visible portion of a document.
type Viewport struct {
	// Position in the document (first visible line, leftmost column).
	topLine    int
	leftColumn int

	// Size in screen cells.
	width  int
	height int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func New(width, height int) *Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Viewport{width: width, height: height}
}

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible document line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible column (horizontal scroll offset).
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// Resize updates the viewport size, clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// ScrollTo positions the viewport at the given top line and left
// column. Negative values clamp to zero.
func (v *Viewport) ScrollTo(topLine, leftColumn int) {
	if topLine < 0 {
		topLine = 0
	}
	if leftColumn < 0 {
		leftColumn = 0
	}
	v.topLine = topLine
	v.leftColumn = leftColumn
}

// IsRowVisible returns true if the viewport-relative row is in bounds.
func (v *Viewport) IsRowVisible(row int) bool {
	return row >= 0 && row < v.height
}

// IsColumnVisible returns true if the document visual column is within
// the horizontally scrolled view.
func (v *Viewport) IsColumnVisible(col int) bool {
	return col >= v.leftColumn && col < v.leftColumn+v.width
}

// ColumnToScreen converts a document visual column to a screen column.
func (v *Viewport) ColumnToScreen(col int) int {
	return col - v.leftColumn
}

// LineToScreen converts a document line to a viewport row.
// Returns -1 if the line is above the viewport; callers still need to
// bounds-check against Height for lines below it.
func (v *Viewport) LineToScreen(line int) int {
	if line < v.topLine {
		return -1
	}
	return line - v.topLine
}
