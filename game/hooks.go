package game

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hopper/prefabs"
)

// OverlayText is what the overlay shows for a status. An empty Title means
// the overlay stays hidden.
type OverlayText struct {
	Title  string
	Detail string
}

// HookInfo is passed to the status script alongside the status name.
type HookInfo struct {
	Cause  Cause
	Resets int
}

// StatusHooks runs the onEnter function of a tengo script whenever the game
// enters a status.
type StatusHooks struct {
	path     string
	compiled *tengo.Compiled
}

const statusDispatchScript = `
__result := onEnter(__status, __info)
`

// LoadStatusHooks compiles prefabs/scripts/<name>.
func LoadStatusHooks(name string) (*StatusHooks, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("hooks: %w", err)
	}
	return CompileStatusHooks(name, src)
}

// CompileStatusHooks compiles a status script from source.
func CompileStatusHooks(name string, src []byte) (*StatusHooks, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + statusDispatchScript))
	_ = script.Add("__status", "")
	_ = script.Add("__info", map[string]interface{}{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("hooks: compile %s: %w", name, err)
	}
	return &StatusHooks{path: name, compiled: compiled}, nil
}

func (h *StatusHooks) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}

// OnEnter returns the overlay text for status. A nil receiver, or a script
// that gives GAME_OVER no title, falls back to DefaultOverlayText.
func (h *StatusHooks) OnEnter(status Status, info HookInfo) (OverlayText, error) {
	if h == nil || h.compiled == nil {
		return DefaultOverlayText(status, info), nil
	}

	if err := h.compiled.Set("__status", status.String()); err != nil {
		return OverlayText{}, fmt.Errorf("hooks: set status: %w", err)
	}
	if err := h.compiled.Set("__info", map[string]interface{}{
		"cause":  info.Cause.String(),
		"resets": info.Resets,
	}); err != nil {
		return OverlayText{}, fmt.Errorf("hooks: set info: %w", err)
	}
	if err := h.compiled.Run(); err != nil {
		return OverlayText{}, fmt.Errorf("hooks: run %s: %w", h.path, err)
	}

	var text OverlayText
	if result := h.compiled.Get("__result"); !result.IsUndefined() {
		m := result.Map()
		text = OverlayText{
			Title:  stringValue(m["title"]),
			Detail: stringValue(m["detail"]),
		}
	}
	// GAME_OVER always reveals the overlay, so it needs a title.
	if status == StatusGameOver && text.Title == "" {
		return DefaultOverlayText(status, info), nil
	}
	return text, nil
}

// DefaultOverlayText is the text used without a status script.
func DefaultOverlayText(status Status, info HookInfo) OverlayText {
	if status != StatusGameOver {
		return OverlayText{}
	}
	detail := "You fell off the stage."
	if info.Cause == CauseSpike {
		detail = "You ran into the spikes."
	}
	return OverlayText{Title: "GAME OVER", Detail: detail + " Press R to restart."}
}

func stringValue(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
