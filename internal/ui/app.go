package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stint-cli/stint/internal/config"
	"github.com/stint-cli/stint/internal/format"
	"github.com/stint-cli/stint/internal/notify"
	"github.com/stint-cli/stint/internal/remind"
	"github.com/stint-cli/stint/internal/storage"
	"github.com/stint-cli/stint/internal/tracker"
	"github.com/stint-cli/stint/internal/version"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmDelete
)

// Model is the TUI state. Everything that touches the store runs on the
// update loop; commands only do I/O that produces messages.
type Model struct {
	store  *tracker.Store
	kv     storage.KV
	cfg    config.Config
	loc    *time.Location
	logger *slog.Logger

	mode      mode
	cursor    int
	input     textinput.Model
	deleteID  string
	themeName string
	st        Theme

	now      time.Time
	width    int
	height   int
	counting bool // a countdown tick is in flight
	monitor  *remind.Monitor
	status   string
}

// Run starts the full-screen tracker UI over an already-loaded store.
func Run(st *tracker.Store, kv storage.KV, cfg config.Config, logger *slog.Logger) error {
	ti := textinput.New()
	ti.Placeholder = "project name"
	ti.CharLimit = 80
	ti.Width = 32

	themeName := cfg.Theme
	if v, ok, err := kv.Get(storage.ThemeKey); err == nil && ok {
		themeName = v
	}
	themeName = normalizeTheme(themeName)

	after := time.Duration(0)
	if cfg.Reminder.Enabled {
		after = cfg.ReminderAfter()
	}

	m := Model{
		store:     st,
		kv:        kv,
		cfg:       cfg,
		loc:       cfg.Location(),
		logger:    logger,
		input:     ti,
		themeName: themeName,
		st:        themeByName(themeName),
		now:       time.Now(),
		monitor:   remind.NewMonitor(after),
	}

	// a persisted open interval resumes with the countdown already live
	if id := st.ActiveID(); id != "" {
		m.counting = true
		if p, ok := st.Get(id); ok {
			if begun, ok := p.StartedAt(); ok {
				m.monitor.Watch(begun)
			}
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.counting {
		return tea.Batch(clockTick(), countTick())
	}
	return clockTick()
}

// ---------- messages & commands ----------

type clockTickMsg struct{ now time.Time }
type countTickMsg struct{ now time.Time }

// clockTick drives the header clock and always reschedules.
func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg{now: t} })
}

// countTick drives the live elapsed display and the long-run nudge. Its
// handler reschedules it only while a timer runs; toggling a timer on
// revives it.
func countTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return countTickMsg{now: t} })
}

func stopNoticeCmd(name string, secs int64) tea.Cmd {
	return func() tea.Msg {
		_ = notify.Stopped(name, secs)
		return nil
	}
}

func nudgeCmd(name string, secs int64) tea.Cmd {
	return func() tea.Msg {
		_ = notify.Nudge(name, secs)
		return nil
	}
}

// ---------- Update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clockTickMsg:
		m.now = msg.now
		return m, clockTick()

	case countTickMsg:
		active := m.store.ActiveID()
		if active == "" {
			m.counting = false
			return m, nil
		}
		m.counting = true
		if m.cfg.Notifications.Enabled && m.monitor.Due(msg.now) {
			if p, ok := m.store.Get(active); ok {
				return m, tea.Batch(countTick(), nudgeCmd(p.Name, m.store.DisplaySeconds(active, msg.now)))
			}
		}
		return m, countTick()

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.store.Projects()

	switch msg.String() {
	case "q", "ctrl+c":
		m.store.Save()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
		return m, nil

	case " ", "enter":
		if len(entries) == 0 {
			return m, nil
		}
		if m.cursor >= len(entries) {
			m.cursor = len(entries) - 1
		}
		return m.toggle(entries[m.cursor])

	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.status = ""
		return m, m.input.Focus()

	case "d":
		if len(entries) == 0 {
			return m, nil
		}
		if m.cursor >= len(entries) {
			m.cursor = len(entries) - 1
		}
		m.mode = modeConfirmDelete
		m.deleteID = entries[m.cursor].ID
		return m, nil

	case "t":
		m.themeName = nextTheme(m.themeName)
		m.st = themeByName(m.themeName)
		if err := m.kv.Set(storage.ThemeKey, m.themeName); err != nil {
			m.logger.Warn("theme preference save failed", "error", err)
		}
		return m, nil
	}
	return m, nil
}

// toggle flips the timer on the selected project and keeps the countdown
// loop and the nudge monitor in step with the outcome.
func (m Model) toggle(e tracker.Entry) (tea.Model, tea.Cmd) {
	wasRunning := m.store.ActiveID() == e.ID
	var session int64
	if wasRunning {
		session = m.store.DisplaySeconds(e.ID, time.Now()) - e.Project.TotalSeconds
	}

	m.store.ToggleTimer(e.ID)

	if wasRunning {
		m.monitor.Clear()
		m.status = fmt.Sprintf("stopped %s after %s", e.Project.Name, format.Human(session))
		if m.cfg.Notifications.Enabled {
			return m, stopNoticeCmd(e.Project.Name, session)
		}
		return m, nil
	}

	if p, ok := m.store.Get(e.ID); ok {
		if begun, ok := p.StartedAt(); ok {
			m.monitor.Watch(begun)
		}
	}
	m.status = fmt.Sprintf("tracking %s", e.Project.Name)
	if !m.counting {
		m.counting = true
		return m, countTick()
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case "enter":
		name := m.input.Value()
		m.mode = modeList
		m.input.Blur()
		if id := m.store.AddProject(name); id != "" {
			m.status = fmt.Sprintf("added %s", strings.TrimSpace(name))
			m.cursor = m.indexOf(id)
		}
		// a blank name just closes the form
		return m, nil

	case "ctrl+c":
		m.store.Save()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteID
		m.mode = modeList
		m.deleteID = ""
		p, ok := m.store.Get(id)
		if !ok {
			return m, nil
		}
		if id == m.store.ActiveID() {
			m.monitor.Clear()
		}
		m.store.DeleteProject(id)
		m.status = fmt.Sprintf("deleted %s", p.Name)
		if n := len(m.store.Projects()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case "n", "N", "esc":
		m.mode = modeList
		m.deleteID = ""
		return m, nil

	case "ctrl+c":
		m.store.Save()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) indexOf(id string) int {
	for i, e := range m.store.Projects() {
		if e.ID == id {
			return i
		}
	}
	return 0
}

// ---------- View ----------

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	title := m.st.Title.Render("stint")
	clock := m.st.Clock.Render(format.Stamp(m.now, m.loc))

	var total int64
	for _, e := range m.store.Projects() {
		total += m.store.DisplaySeconds(e.ID, m.now)
	}
	summary := m.st.Summary.Render("total " + format.Clock(total))

	left := title + "  " + summary
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(clock)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + clock
}

func (m Model) listView() string {
	entries := m.store.Projects()
	if len(entries) == 0 {
		return m.st.Hint.Render("no projects yet, press a to add one")
	}

	nameW := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Project.Name); w > nameW {
			nameW = w
		}
	}

	active := m.store.ActiveID()
	var b strings.Builder
	for i, e := range entries {
		cursor := "  "
		if i == m.cursor {
			cursor = m.st.Cursor.Render("> ")
		}

		marker := " "
		name := m.st.Name.Render(format.Pad(e.Project.Name, nameW))
		clock := m.st.Time.Render(format.Clock(m.store.DisplaySeconds(e.ID, m.now)))
		if e.ID == active {
			marker = m.st.Running.Render("●")
			name = m.st.Running.Render(format.Pad(e.Project.Name, nameW))
			clock = m.st.Running.Render(format.Clock(m.store.DisplaySeconds(e.ID, m.now)))
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, marker, name, clock))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) footerView() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.st.Hint.Render(m.status))
	}
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("new project: " + m.input.View() + "\n")
		b.WriteString(m.st.Hint.Render("enter save · esc cancel"))

	case modeConfirmDelete:
		name := m.deleteID
		warn := ""
		if p, ok := m.store.Get(m.deleteID); ok {
			name = p.Name
			if m.deleteID == m.store.ActiveID() {
				warn = " (still running, unsaved time is lost)"
			}
		}
		b.WriteString(m.st.Danger.Render(fmt.Sprintf("delete %s?%s (y/n)", name, warn)))

	default:
		hints := "space start/stop · a add · d delete · t theme · q quit"
		b.WriteString(m.st.Hint.Render(hints))
	}

	b.WriteString("\n")
	b.WriteString(m.st.Hint.Render(version.Short()))
	return b.String()
}
