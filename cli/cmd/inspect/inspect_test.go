package inspect

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/denv/env"
)

func testModel(t *testing.T) model {
	t.Helper()

	e := env.NewEnv(
		"MAYA_VERSION", "2018",
		"MAYA_LOCATION", "/opt/maya2018",
		"PATH", "/opt/maya2018/bin:/usr/bin",
		"ARNOLD_HOME", "/opt/arnold",
	)

	return newModel(context.Background(), e, env.PlatformFor(env.Linux), NewHistory(""))
}

func update(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)

		var ok bool
		if m, ok = next.(model); !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}

	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInitialMatches(t *testing.T) {
	m := testModel(t)

	if len(m.matches) != 4 {
		t.Fatalf("matches = %d, want 4", len(m.matches))
	}

	if key, _ := m.selected(); key != "MAYA_VERSION" {
		t.Errorf("selected() = %q, want MAYA_VERSION", key)
	}
}

func TestModelFilter(t *testing.T) {
	m := update(t, testModel(t), runes("arnold"))

	if m.input.Value() != "arnold" {
		t.Fatalf("input = %q, want arnold", m.input.Value())
	}

	if len(m.matches) != 1 || m.matches[0].Str != "ARNOLD_HOME" {
		t.Errorf("matches = %v, want [ARNOLD_HOME]", m.matches)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.input.Value() != "" || len(m.matches) != 4 {
		t.Errorf("Esc did not clear filter: %q, %d matches", m.input.Value(), len(m.matches))
	}
}

func TestModelNavigation(t *testing.T) {
	m := update(t, testModel(t),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)

	if key, _ := m.selected(); key != "PATH" {
		t.Errorf("selected() = %q, want PATH", key)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if key, _ := m.selected(); key != "ARNOLD_HOME" {
		t.Errorf("selected() after PgDown = %q, want ARNOLD_HOME", key)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.cursor != 0 {
		t.Errorf("cursor after PgUp = %d, want 0", m.cursor)
	}
}

func TestModelScroll(t *testing.T) {
	m := update(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: chromeLines + 2})

	if m.pageSize() != 2 {
		t.Fatalf("pageSize() = %d, want 2", m.pageSize())
	}

	m = update(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)

	if m.cursor != 3 || m.offset != 2 {
		t.Errorf("cursor, offset = %d, %d, want 3, 2", m.cursor, m.offset)
	}

	view := m.View()
	if strings.Contains(view, "MAYA_VERSION") || !strings.Contains(view, "ARNOLD_HOME") {
		t.Errorf("View() shows the wrong page:\n%s", view)
	}
}

func TestModelDetail(t *testing.T) {
	m := update(t, testModel(t), runes("PATH"), tea.KeyMsg{Type: tea.KeyTab})

	if !m.detail {
		t.Fatal("Tab did not open details")
	}

	view := m.View()
	for _, entry := range []string{"/opt/maya2018/bin", "/usr/bin"} {
		if !strings.Contains(view, entry) {
			t.Errorf("View() missing entry %q:\n%s", entry, view)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail {
		t.Error("Esc did not close details")
	}

	if m.input.Value() != "PATH" {
		t.Errorf("Esc in details cleared the filter")
	}
}

func TestModelSelect(t *testing.T) {
	m := testModel(t)
	m = update(t, m, runes("loc"))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	if m.chosen != "MAYA_LOCATION" {
		t.Errorf("chosen = %q, want MAYA_LOCATION", m.chosen)
	}

	if !m.quitting || cmd == nil {
		t.Error("Enter did not quit")
	}

	if m.View() != "" {
		t.Error("View() after quitting should be empty")
	}

	if got := m.history.Entries(); len(got) != 1 || got[0] != "loc" {
		t.Errorf("history = %v, want [loc]", got)
	}
}

func TestModelHistory(t *testing.T) {
	m := testModel(t)

	for _, q := range []string{"maya", "path"} {
		if err := m.history.Write(q); err != nil {
			t.Fatal(err)
		}
	}

	m.historyIdx = m.history.Len()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.input.Value() != "path" {
		t.Errorf("Ctrl+P = %q, want path", m.input.Value())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP}, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.input.Value() != "maya" {
		t.Errorf("Ctrl+P at oldest = %q, want maya", m.input.Value())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN}, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.input.Value() != "" {
		t.Errorf("Ctrl+N past newest = %q, want empty", m.input.Value())
	}
}

func TestModelQuit(t *testing.T) {
	m := update(t, testModel(t), tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.quitting || m.chosen != "" {
		t.Errorf("Ctrl+C: quitting = %v, chosen = %q", m.quitting, m.chosen)
	}
}

func TestFindMatches(t *testing.T) {
	keys := []string{"MAYA_VERSION", "PATH", "PYTHONPATH"}

	if got := findMatches("", keys); len(got) != 3 || got[1].Str != "PATH" {
		t.Errorf("findMatches(\"\") = %v", got)
	}

	got := findMatches("path", keys)
	if len(got) != 2 {
		t.Fatalf("findMatches(path) = %v, want 2 matches", got)
	}

	if got[0].Str != "PATH" {
		t.Errorf("best match = %q, want PATH", got[0].Str)
	}
}
