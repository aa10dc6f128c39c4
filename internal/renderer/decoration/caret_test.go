package decoration

import (
	"testing"

	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/backend"
	"github.com/realbigsean/helix/internal/renderer/core"
	"github.com/realbigsean/helix/internal/renderer/viewport"
)

func TestCaretRecordsScreenPosition(t *testing.T) {
	tr, _ := testRenderer(t, 80, 24)
	cache := &CaretCache{}
	caret := &Caret{Cache: cache, Target: 42}

	m := NewManager()
	m.AddDecoration(caret)
	m.PrepareForRendering(0)

	for idx := 40; idx <= 44; idx++ {
		m.DecorateGrapheme(tr, grapheme(idx, 3, idx-40))
	}

	pos, ok := cache.Get()
	if !ok {
		t.Fatal("caret position not recorded")
	}
	want := core.ScreenPos{Row: 3, Col: 2}
	if pos != want {
		t.Errorf("caret pos = %+v, want %+v", pos, want)
	}
}

func TestCaretSubtractsHorizontalScroll(t *testing.T) {
	vp := viewport.New(80, 24)
	vp.ScrollTo(0, 10)
	b := backend.NewNull(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("backend init: %v", err)
	}
	tr := renderer.NewTextRenderer(b, vp)

	cache := &CaretCache{}
	caret := &Caret{Cache: cache, Target: 5}

	m := NewManager()
	m.AddDecoration(caret)
	m.PrepareForRendering(0)
	m.DecorateGrapheme(tr, grapheme(5, 0, 25))

	pos, ok := cache.Get()
	if !ok {
		t.Fatal("caret position not recorded")
	}
	if pos.Col != 15 {
		t.Errorf("caret col = %d, want 15 (25 minus scroll 10)", pos.Col)
	}
}

func TestCaretOffscreenColumnNotRecorded(t *testing.T) {
	vp := viewport.New(20, 24)
	vp.ScrollTo(0, 40)
	b := backend.NewNull(20, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("backend init: %v", err)
	}
	tr := renderer.NewTextRenderer(b, vp)

	cache := &CaretCache{}
	caret := &Caret{Cache: cache, Target: 5}

	m := NewManager()
	m.AddDecoration(caret)
	m.PrepareForRendering(0)
	// The caret's grapheme sits left of the scrolled-in region.
	m.DecorateGrapheme(tr, grapheme(5, 0, 5))

	if _, ok := cache.Get(); ok {
		t.Error("caret recorded despite being horizontally scrolled out")
	}
}

func TestCaretAbsentTargetLeavesCacheUntouched(t *testing.T) {
	tr, _ := testRenderer(t, 80, 24)
	cache := &CaretCache{}
	caret := &Caret{Cache: cache, Target: 42}

	m := NewManager()
	m.AddDecoration(caret)
	m.PrepareForRendering(0)

	// The stream never reaches 42.
	for idx := 0; idx < 10; idx++ {
		m.DecorateGrapheme(tr, grapheme(idx, 0, idx))
	}

	if _, ok := cache.Get(); ok {
		t.Error("cache set although the caret's grapheme never appeared")
	}
}

func TestCaretBehindViewportInactive(t *testing.T) {
	caret := &Caret{Cache: &CaretCache{}, Target: 42}

	if a := caret.ResetPos(100); a.Active() {
		t.Errorf("anchor active for caret behind first visible char, got %d", a.CharIdx())
	}
	if a := caret.ResetPos(42); !a.Active() || a.CharIdx() != 42 {
		t.Errorf("anchor = %+v, want active at 42", a)
	}
}

func TestCaretConcealedTargetReanchors(t *testing.T) {
	tr, _ := testRenderer(t, 80, 24)
	cache := &CaretCache{}
	caret := &Caret{Cache: cache, Target: 42}

	m := NewManager()
	m.AddDecoration(caret)
	m.PrepareForRendering(0)

	// 42 is inside a concealed span; the stream jumps 40 -> 50. The
	// caret re-anchors past the span and never lands this frame.
	m.DecorateGrapheme(tr, grapheme(40, 0, 0))
	m.DecorateGrapheme(tr, grapheme(50, 0, 1))
	m.DecorateGrapheme(tr, grapheme(51, 0, 2))

	if _, ok := cache.Get(); ok {
		t.Error("cache set although the caret's grapheme was concealed")
	}
}

func TestCaretCacheResetClears(t *testing.T) {
	cache := &CaretCache{}
	cache.Set(core.ScreenPos{Row: 1, Col: 2})
	if _, ok := cache.Get(); !ok {
		t.Fatal("cache empty after Set")
	}
	cache.Reset()
	if _, ok := cache.Get(); ok {
		t.Error("cache still set after Reset")
	}
}
