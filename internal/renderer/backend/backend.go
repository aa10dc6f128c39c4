// Package backend provides the terminal display abstraction for the
// renderer. Implementations handle actual drawing to the terminal or,
// for tests, to an in-memory cell grid.
package backend

import "github.com/realbigsean/helix/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event. Only the fields relevant to the
// event type are set.
type Event struct {
	Type EventType

	// Key event fields.
	Rune rune
	Ctrl bool

	// Resize event fields.
	Width, Height int
}

// Backend defines the interface for display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Fini releases backend resources and restores terminal state.
	Fini()

	// Size returns the current display dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the display are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire display with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event
}

// Null is an in-memory backend for testing. It records every cell set
// on it and the last cursor position.
type Null struct {
	width, height int
	cells         [][]core.Cell

	cursorX, cursorY int
	cursorVisible    bool

	events chan Event
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	b := &Null{
		width:  width,
		height: height,
		events: make(chan Event, 16),
	}
	b.reset()
	return b
}

func (b *Null) reset() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

func (b *Null) Init() error { return nil }

func (b *Null) Fini() {}

func (b *Null) Size() (int, int) { return b.width, b.height }

func (b *Null) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *Null) Clear() { b.reset() }

func (b *Null) Show() {}

func (b *Null) ShowCursor(x, y int) {
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *Null) HideCursor() { b.cursorVisible = false }

func (b *Null) PollEvent() Event { return <-b.events }

// PostEvent queues a synthetic event. Drops the event if the queue is
// full, which keeps tests non-blocking.
func (b *Null) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// CellAt returns the cell at the given position for test assertions.
func (b *Null) CellAt(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// RowString returns the text content of a row with trailing spaces
// trimmed, for test assertions.
func (b *Null) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.IsContinuation() {
			continue
		}
		runes = append(runes, c.Rune)
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}

// Cursor returns the last cursor position and whether it is visible.
func (b *Null) Cursor() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}
