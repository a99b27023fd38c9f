// Package format renders durations, timestamps, and the project table.
// Everything here is deterministic plain text; callers layer styling on
// top.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Clock renders seconds as H:MM:SS, the ledger style the project list
// uses. Hours grow without wrapping.
func Clock(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// Human renders seconds the way people say them, e.g. "2h 05m" or "45s".
// Used for notifications and status lines.
func Human(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Stamp renders a wall-clock reading in the given zone for the header
// clock.
func Stamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon 15:04:05")
}

// Row is one line of the project table.
type Row struct {
	ID      string
	Name    string
	Seconds int64
	Running bool
}

// Table renders rows as a plain aligned table with a running marker in
// the first column. Empty input renders nothing; callers decide on an
// empty-state message.
func Table(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	nameW := lipgloss.Width("NAME")
	timeW := lipgloss.Width("TIME")
	for _, r := range rows {
		if w := lipgloss.Width(r.Name); w > nameW {
			nameW = w
		}
		if w := lipgloss.Width(Clock(r.Seconds)); w > timeW {
			timeW = w
		}
	}

	var b strings.Builder
	b.WriteString("  " + Pad("NAME", nameW) + "  " + Pad("TIME", timeW) + "  ID\n")
	for _, r := range rows {
		marker := " "
		if r.Running {
			marker = "●"
		}
		b.WriteString(marker + " " + Pad(r.Name, nameW) + "  " + Pad(Clock(r.Seconds), timeW) + "  " + r.ID + "\n")
	}
	return b.String()
}

// Pad right-pads to a display width; fmt's %-*s counts bytes, which breaks
// on multibyte names.
func Pad(s string, w int) string {
	if d := w - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
