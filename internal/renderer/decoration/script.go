package decoration

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/core"
	"github.com/realbigsean/helix/internal/renderer/format"
)

// Script is a decoration whose hooks live in a Lua table, letting
// plugins contribute overlays without recompiling the editor. Each hook
// is optional; missing ones behave like the no-op defaults.
//
// The recognized fields are functions named reset_pos,
// skip_concealed_anchor, decorate_line, decorate_grapheme, and
// render_virt_lines, mirroring the Decoration interface. Line and
// grapheme arguments arrive as tables; anchors cross the bridge as
// numbers, with nil meaning inactive.
//
// A hook that raises an error disables the script for the remainder of
// the pass; the frame itself is never aborted by plugin code.
type Script struct {
	state *lua.LState
	hooks *lua.LTable
	style core.Style

	// tr is the renderer of the hook currently executing; the draw
	// helper exposed to Lua writes through it.
	tr     *renderer.TextRenderer
	failed bool
}

// NewScript wraps a Lua hook table as a decoration. A `draw(raw, row,
// col)` helper is installed on the table for the script's hooks to
// paint with; it draws in the style given here and is a no-op outside
// a hook invocation.
func NewScript(state *lua.LState, hooks *lua.LTable, style core.Style) *Script {
	s := &Script{state: state, hooks: hooks, style: style}
	hooks.RawSetString("draw", state.NewFunction(s.luaDraw))
	return s
}

func (s *Script) luaDraw(L *lua.LState) int {
	raw := L.CheckString(1)
	row := L.CheckInt(2)
	col := L.CheckInt(3)
	if s.tr != nil {
		s.tr.DrawDecorationGrapheme(raw, s.style, row, col)
	}
	return 0
}

// call invokes the named hook if present. The second return value is
// false when the hook is missing or the script has failed this pass.
func (s *Script) call(name string, nret int, args ...lua.LValue) (lua.LValue, bool) {
	if s.failed {
		return lua.LNil, false
	}
	fn := s.hooks.RawGetString(name)
	if fn == lua.LNil {
		return lua.LNil, false
	}
	if err := s.state.CallByParam(lua.P{Fn: fn, NRet: nret, Protect: true}, args...); err != nil {
		s.failed = true
		return lua.LNil, false
	}
	if nret == 0 {
		return lua.LNil, true
	}
	ret := s.state.Get(-1)
	s.state.Pop(1)
	return ret, true
}

func (s *Script) anchorFrom(v lua.LValue, floor int) Anchor {
	n, ok := v.(lua.LNumber)
	if !ok {
		return NoAnchor()
	}
	idx := int(n)
	if idx < floor {
		// A plugin that walks its anchor backwards would stall the
		// dispatch loop; it loses the rest of the pass instead.
		return NoAnchor()
	}
	return AnchorAt(idx)
}

func (s *Script) ResetPos(firstVisibleChar int) Anchor {
	s.failed = false
	ret, ok := s.call("reset_pos", 1, lua.LNumber(firstVisibleChar))
	if !ok {
		return NoAnchor()
	}
	return s.anchorFrom(ret, firstVisibleChar)
}

func (s *Script) SkipConcealedAnchor(concealEndCharIdx int) Anchor {
	ret, ok := s.call("skip_concealed_anchor", 1, lua.LNumber(concealEndCharIdx))
	if ok {
		return s.anchorFrom(ret, concealEndCharIdx)
	}
	if s.failed {
		return NoAnchor()
	}
	// Default mirrors the interface contract: re-anchor past the
	// concealed span.
	ret, ok = s.call("reset_pos", 1, lua.LNumber(concealEndCharIdx))
	if !ok {
		return NoAnchor()
	}
	return s.anchorFrom(ret, concealEndCharIdx)
}

func (s *Script) DecorateLine(r *renderer.TextRenderer, pos renderer.LinePos) {
	s.tr = r
	defer func() { s.tr = nil }()
	s.call("decorate_line", 0, s.linePosTable(pos))
}

func (s *Script) DecorateGrapheme(r *renderer.TextRenderer, g *format.FormattedGrapheme) Anchor {
	s.tr = r
	defer func() { s.tr = nil }()

	t := s.state.NewTable()
	t.RawSetString("char_idx", lua.LNumber(g.CharIdx))
	t.RawSetString("row", lua.LNumber(g.VisualPos.Row))
	t.RawSetString("col", lua.LNumber(g.VisualPos.Col))
	t.RawSetString("raw", lua.LString(g.Raw))
	t.RawSetString("width", lua.LNumber(g.Width))

	ret, ok := s.call("decorate_grapheme", 1, t)
	if !ok {
		return NoAnchor()
	}
	return s.anchorFrom(ret, g.CharIdx+1)
}

func (s *Script) RenderVirtLines(r *renderer.TextRenderer, pos renderer.LinePos, virtOff int) int {
	s.tr = r
	defer func() { s.tr = nil }()

	ret, ok := s.call("render_virt_lines", 1, s.linePosTable(pos), lua.LNumber(virtOff))
	if !ok {
		return 0
	}
	n, isNum := ret.(lua.LNumber)
	if !isNum || n < 0 {
		return 0
	}
	return int(n)
}

func (s *Script) linePosTable(pos renderer.LinePos) *lua.LTable {
	t := s.state.NewTable()
	t.RawSetString("doc_line", lua.LNumber(pos.DocLine))
	t.RawSetString("visual_line", lua.LNumber(pos.VisualLine))
	t.RawSetString("row_offset", lua.LNumber(pos.RowOffset))
	return t
}
