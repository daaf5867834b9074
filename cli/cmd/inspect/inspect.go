package inspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/denv/env"
	"github.com/ardnew/denv/log"
)

const filterPrompt = "➜ "

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	entryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	selectedMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Render("› ")
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// chromeLines counts the lines of the view outside the variable list.
	chromeLines = 3
)

// model is the Bubble Tea model for the browser.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	env        env.Env
	keys       []string
	platform   env.Platform
	history    *History
	historyIdx int
	matches    fuzzy.Matches // current matches, best first
	cursor     int           // selected index into matches
	offset     int           // index of the first visible match
	detail     bool          // whether the selected value is expanded
	width      int
	height     int
	chosen     string // key selected with Enter
	quitting   bool
}

// Run browses e interactively until the user exits. If the user selects a
// variable, it is written to out as KEY=VALUE. Filter history is kept in
// cacheDir.
func Run(
	ctx context.Context,
	e env.Env,
	p env.Platform,
	cacheDir string,
	out io.Writer,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		log.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	log.TraceContext(ctx, "inspect start",
		slog.Int("keys", e.Len()),
		slog.Int("history", history.Len()),
	)

	final, err := tea.NewProgram(
		newModel(ctx, e, p, history),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(model); ok && m.chosen != "" {
		_, err = fmt.Fprintf(out, "%s=%s\n", m.chosen, m.env.Get(m.chosen))
	}

	return err
}

func newModel(
	ctx context.Context,
	e env.Env,
	p env.Platform,
	history *History,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(filterPrompt)
	ti.Placeholder = "filter"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	m := model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		env:        e,
		keys:       keysOf(e),
		platform:   p,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(filterPrompt) - 2
		m.scroll()

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	return m.render()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	log.TraceContext(m.ctxFunc(), "inspect keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.setFilter("")

		return m, nil

	case tea.KeyEsc:
		switch {
		case m.detail:
			m.detail = false
		case m.input.Value() != "":
			m.setFilter("")
		default:
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		key, ok := m.selected()
		if !ok {
			return m, nil
		}

		if err := m.history.Write(m.input.Value()); err != nil {
			log.WarnContext(m.ctxFunc(), "could not save history",
				slog.Any("error", err),
			)
		}

		m.chosen = key
		m.quitting = true

		return m, tea.Quit

	case tea.KeyTab:
		if _, ok := m.selected(); ok {
			m.detail = !m.detail
		}

		return m, nil

	case tea.KeyUp:
		m.move(-1)

		return m, nil

	case tea.KeyDown:
		m.move(1)

		return m, nil

	case tea.KeyPgUp:
		m.move(-m.pageSize())

		return m, nil

	case tea.KeyPgDown:
		m.move(m.pageSize())

		return m, nil

	case tea.KeyCtrlP:
		return m.historyPrev(), nil

	case tea.KeyCtrlN:
		return m.historyNext(), nil
	}

	var cmd tea.Cmd

	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != prev {
		m.historyIdx = m.history.Len()
		m.refresh()
	}

	return m, cmd
}

// setFilter replaces the filter text and recomputes the matches.
func (m *model) setFilter(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.refresh()
}

// refresh recomputes the matches for the current filter and resets the
// selection.
func (m *model) refresh() {
	m.matches = findMatches(m.input.Value(), m.keys)
	m.cursor = 0
	m.offset = 0
	m.detail = false
}

// selected returns the key of the selected match.
func (m model) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return "", false
	}

	return m.matches[m.cursor].Str, true
}

// move shifts the selection by delta, clamped to the matches.
func (m *model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}

	m.cursor = max(0, min(len(m.matches)-1, m.cursor+delta))
	m.scroll()
}

// scroll keeps the selection within the visible page.
func (m *model) scroll() {
	page := m.pageSize()

	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

// pageSize returns the number of list rows that fit the terminal.
func (m model) pageSize() int {
	return max(1, m.height-chromeLines)
}

func (m model) historyPrev() model {
	if m.historyIdx <= 0 {
		return m
	}

	line, err := m.history.Get(m.historyIdx - 1)
	if err != nil {
		return m
	}

	m.historyIdx--
	m.setFilter(line)

	return m
}

func (m model) historyNext() model {
	if m.historyIdx >= m.history.Len() {
		return m
	}

	m.historyIdx++

	line, err := m.history.Get(m.historyIdx)
	if err != nil {
		line = ""
	}

	m.setFilter(line)

	return m
}
