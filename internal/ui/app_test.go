package ui

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stint-cli/stint/internal/config"
	"github.com/stint-cli/stint/internal/remind"
	"github.com/stint-cli/stint/internal/storage"
	"github.com/stint-cli/stint/internal/tracker"
)

func newTestModel(t *testing.T) (Model, *tracker.Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := tracker.New(kv, logger)

	cfg := config.Default()
	cfg.Notifications.Enabled = false // no desktop noise from tests

	ti := textinput.New()
	m := Model{
		store:     st,
		kv:        kv,
		cfg:       cfg,
		loc:       time.UTC,
		logger:    logger,
		input:     ti,
		themeName: "dark",
		st:        themeByName("dark"),
		now:       time.Unix(1_700_000_000, 0).UTC(),
		monitor:   remind.NewMonitor(0),
		width:     80,
		height:    24,
	}
	return m, st, kv
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	return nm.(Model), cmd
}

func TestAddFlow(t *testing.T) {
	m, st, _ := newTestModel(t)

	m, _ = press(t, m, keyRunes("a"))
	assert.Equal(t, modeAdd, m.mode)

	m, _ = press(t, m, keyRunes("Writing"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeList, m.mode)
	entries := st.Projects()
	require.Len(t, entries, 1)
	assert.Equal(t, "Writing", entries[0].Project.Name)
	assert.Contains(t, m.status, "added")
}

func TestAddBlankNameJustCloses(t *testing.T) {
	m, st, _ := newTestModel(t)

	m, _ = press(t, m, keyRunes("a"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, st.Projects())
	assert.Empty(t, m.status)
}

func TestEscCancelsAdd(t *testing.T) {
	m, st, _ := newTestModel(t)

	m, _ = press(t, m, keyRunes("a"))
	m, _ = press(t, m, keyRunes("half typed"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, st.Projects())
}

func TestSpaceTogglesTimer(t *testing.T) {
	m, st, _ := newTestModel(t)
	id := st.AddProject("Writing")

	m, cmd := press(t, m, keyRunes(" "))
	assert.Equal(t, id, st.ActiveID())
	assert.True(t, m.counting)
	assert.NotNil(t, cmd, "starting must revive the countdown loop")

	m, _ = press(t, m, keyRunes(" "))
	assert.Empty(t, st.ActiveID())
	assert.Contains(t, m.status, "stopped")
}

func TestCursorMovesAndSwitchesProjects(t *testing.T) {
	m, st, _ := newTestModel(t)
	a := st.AddProject("Writing")
	b := st.AddProject("Reading")

	m, _ = press(t, m, keyRunes(" ")) // start first
	assert.Equal(t, a, st.ActiveID())

	m, _ = press(t, m, keyRunes("j"))
	m, _ = press(t, m, keyRunes(" ")) // toggle second switches
	assert.Equal(t, b, st.ActiveID())

	m, _ = press(t, m, keyRunes("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestCountTickParksWhenIdle(t *testing.T) {
	m, st, _ := newTestModel(t)
	st.AddProject("Writing")
	m.counting = true

	m, cmd := press(t, m, countTickMsg{now: time.Now()})
	assert.Nil(t, cmd, "no timer, no reschedule")
	assert.False(t, m.counting)
}

func TestCountTickReschedulesWhileRunning(t *testing.T) {
	m, st, _ := newTestModel(t)
	id := st.AddProject("Writing")
	st.StartTimer(id)

	_, cmd := press(t, m, countTickMsg{now: time.Now()})
	assert.NotNil(t, cmd)
}

func TestCountTickNudgesLongRunningTimer(t *testing.T) {
	m, st, _ := newTestModel(t)
	m.cfg.Notifications.Enabled = true
	m.monitor = remind.NewMonitor(time.Minute)

	id := st.AddProject("Writing")
	st.StartTimer(id)
	p, _ := st.Get(id)
	begun, _ := p.StartedAt()
	m.monitor.Watch(begun)

	m, cmd := press(t, m, countTickMsg{now: begun.Add(2 * time.Minute)})
	assert.NotNil(t, cmd)
	// firing consumed the arm, so this interval will not nudge again
	assert.False(t, m.monitor.Due(begun.Add(3*time.Minute)))
}

func TestClockTickAlwaysReschedules(t *testing.T) {
	m, _, _ := newTestModel(t)
	now := time.Unix(1_800_000_000, 0).UTC()

	m, cmd := press(t, m, clockTickMsg{now: now})
	assert.Equal(t, now, m.now)
	assert.NotNil(t, cmd)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, st, _ := newTestModel(t)
	id := st.AddProject("Writing")

	m, _ = press(t, m, keyRunes("d"))
	assert.Equal(t, modeConfirmDelete, m.mode)
	assert.Equal(t, id, m.deleteID)

	m, _ = press(t, m, keyRunes("n"))
	assert.Equal(t, modeList, m.mode)
	require.Len(t, st.Projects(), 1, "declining keeps the project")

	m, _ = press(t, m, keyRunes("d"))
	m, _ = press(t, m, keyRunes("y"))
	assert.Empty(t, st.Projects())
	assert.Contains(t, m.status, "deleted")
}

func TestDeleteRunningProjectClearsTimer(t *testing.T) {
	m, st, _ := newTestModel(t)
	id := st.AddProject("Writing")
	st.StartTimer(id)

	m, _ = press(t, m, keyRunes("d"))
	m, _ = press(t, m, keyRunes("y"))

	assert.Empty(t, st.ActiveID())
	assert.Empty(t, st.Projects())
	assert.Contains(t, m.status, "deleted")
}

func TestThemeToggleIsPersisted(t *testing.T) {
	m, _, kv := newTestModel(t)

	m, _ = press(t, m, keyRunes("t"))
	assert.Equal(t, "light", m.themeName)
	v, ok, err := kv.Get(storage.ThemeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v)

	m, _ = press(t, m, keyRunes("t"))
	assert.Equal(t, "dark", m.themeName)
}

func TestQuitFlushesState(t *testing.T) {
	m, st, kv := newTestModel(t)
	id := st.AddProject("Writing")
	st.StartTimer(id) // lazy, not yet persisted

	_, cmd := press(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)

	raw, ok, err := kv.Get(storage.StateKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, fmt.Sprintf(`"activeProjectId":%q`, id),
		"quit must flush the open interval")
}

func TestViewRendersStates(t *testing.T) {
	m, st, _ := newTestModel(t)
	assert.Contains(t, m.View(), "no projects yet")

	st.AddProject("Writing")
	assert.Contains(t, m.View(), "Writing")
	assert.Contains(t, m.View(), "0:00:00")

	m, _ = press(t, m, keyRunes("d"))
	assert.Contains(t, m.View(), "delete Writing?")
}
