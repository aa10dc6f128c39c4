// Package main is a small interactive demo of the decoration pipeline:
// a fixed document rendered with a movable caret, an inline completion
// suggestion, and any Lua decoration scripts named in the config.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	lua "github.com/yuin/gopher-lua"

	"github.com/realbigsean/helix/internal/config"
	"github.com/realbigsean/helix/internal/renderer"
	"github.com/realbigsean/helix/internal/renderer/backend"
	"github.com/realbigsean/helix/internal/renderer/core"
	"github.com/realbigsean/helix/internal/renderer/decoration"
	"github.com/realbigsean/helix/internal/renderer/format"
	"github.com/realbigsean/helix/internal/renderer/viewport"
)

const sampleDoc = `func greet(name string) string {
	message := "Hello, "

	return message
}

func main() {
	fmt.Println(greet("world"))
}`

// The suggestion completes the return statement on document line 3.
const (
	suggestionLine = 3
	suggestionCol  = 1
	suggestionText = "\treturn message + name + \"!\"\n\t// suggested by the demo\n"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		term.Fini()
		os.Exit(0)
	}()

	s := newSession(cfg, term)
	defer s.close()
	return s.loop()
}

// session holds the state that survives between frames.
type session struct {
	cfg  *config.Config
	term *backend.Terminal
	vp   *viewport.Viewport

	doc        string
	caret      int
	caretCache *decoration.CaretCache
	suggestion *decoration.InlineSuggestion

	scripts []*decoration.Script
	states  []*lua.LState
}

func newSession(cfg *config.Config, term *backend.Terminal) *session {
	w, h := term.Size()
	s := &session{
		cfg:        cfg,
		term:       term,
		vp:         viewport.New(w, h),
		doc:        sampleDoc,
		caretCache: &decoration.CaretCache{},
	}
	if cfg.Suggestion.Enabled {
		s.suggestion = decoration.NewInlineSuggestion(
			suggestionText, suggestionLine, suggestionCol,
			cfg.SuggestionStyle(), s.vp.Width())
	}
	s.loadScripts()
	return s
}

func (s *session) loadScripts() {
	for _, sc := range s.cfg.Scripts {
		L := lua.NewState()
		if err := L.DoFile(sc.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: script %s: %v\n", sc.Path, err)
			L.Close()
			continue
		}
		hooks, ok := L.GetGlobal("hooks").(*lua.LTable)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: script %s defines no hooks table\n", sc.Path)
			L.Close()
			continue
		}
		s.states = append(s.states, L)
		s.scripts = append(s.scripts, decoration.NewScript(L, hooks, s.cfg.ScriptStyle(sc)))
	}
}

func (s *session) close() {
	for _, L := range s.states {
		L.Close()
	}
}

func (s *session) loop() int {
	for {
		s.render()

		switch ev := s.term.PollEvent(); ev.Type {
		case backend.EventResize:
			s.vp.Resize(ev.Width, ev.Height)
		case backend.EventKey:
			if ev.Ctrl || ev.Rune == 'q' || ev.Rune == 0x1b {
				return 0
			}
			s.handleKey(ev.Rune)
		case backend.EventNone:
			return 0
		}
	}
}

func (s *session) handleKey(r rune) {
	switch r {
	case 'h':
		if s.caret > 0 {
			s.caret--
		}
	case 'l':
		if s.caret < len([]rune(s.doc))-1 {
			s.caret++
		}
	case '\t':
		s.acceptSuggestion()
	}
}

// acceptSuggestion splices the completion into the document and retires
// the decoration.
func (s *session) acceptSuggestion() {
	if s.suggestion == nil {
		return
	}
	lines := strings.Split(s.doc, "\n")
	if suggestionLine < len(lines) {
		lines[suggestionLine] = strings.TrimSuffix(s.suggestion.Text(), "\n")
		s.doc = strings.Join(lines, "\n")
	}
	s.suggestion = nil
}

func (s *session) render() {
	s.term.Clear()
	tr := renderer.NewTextRenderer(s.term, s.vp)

	s.caretCache.Reset()
	m := decoration.NewManager()
	m.AddDecoration(&decoration.Caret{Cache: s.caretCache, Target: s.caret})
	if s.suggestion != nil {
		m.AddDecoration(s.suggestion)
	}
	for _, sc := range s.scripts {
		m.AddDecoration(sc)
	}

	fmtCfg := format.TextFormat{
		ViewportWidth: s.vp.Width(),
		TabWidth:      s.cfg.Editor.TabWidth,
		SoftWrap:      s.cfg.Editor.SoftWrap,
	}
	renderer.RenderDocument(tr, s.doc, 0, fmtCfg, nil, core.DefaultStyle(), m)

	if pos, ok := s.caretCache.Get(); ok {
		tr.ShowCaret(pos)
	} else {
		tr.HideCaret()
	}
	s.term.Show()
}
