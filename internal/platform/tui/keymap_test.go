package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gemswap/gemswap/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tc.key, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	ev, ok := km.MapMouse(press)
	if !ok {
		t.Fatal("left press should map to a pointer event")
	}
	if ev.X != 12 || ev.Y != 7 || !ev.Pressed {
		t.Errorf("pointer event = %+v, want {12 7 true}", ev)
	}

	release := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if _, ok := km.MapMouse(release); ok {
		t.Error("release should not map to a pointer event")
	}

	right := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if _, ok := km.MapMouse(right); ok {
		t.Error("right button should not map to a pointer event")
	}

	motion := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
	if _, ok := km.MapMouse(motion); ok {
		t.Error("motion should not map to a pointer event")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"q", MenuActionQuit},
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"z", MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}
