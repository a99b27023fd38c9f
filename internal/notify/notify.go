package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/stint-cli/stint/internal/format"
)

// Stopped announces a closed interval with what it added up to.
func Stopped(name string, secs int64) error {
	return beeep.Notify("stint", fmt.Sprintf("Stopped %s: %s this session", name, format.Human(secs)), "")
}

// Nudge pokes the user about a timer that has been running a while.
func Nudge(name string, secs int64) error {
	return beeep.Alert("stint", fmt.Sprintf("%s has been running for %s. Still on it?", name, format.Human(secs)), "")
}
