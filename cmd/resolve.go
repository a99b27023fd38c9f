package cmd

import (
	"fmt"
	"strings"

	"github.com/stint-cli/stint/internal/tracker"
)

// resolveProject maps a command-line argument to a project id. Exact ids win,
// then an exact name match (case-insensitive), then a unique name prefix.
func resolveProject(st *tracker.Store, arg string) (string, error) {
	if _, ok := st.Get(arg); ok {
		return arg, nil
	}
	q := strings.ToLower(strings.TrimSpace(arg))
	if q == "" {
		return "", fmt.Errorf("no project matches %q", arg)
	}
	var exact, prefixed []string
	for _, e := range st.Projects() {
		name := strings.ToLower(e.Project.Name)
		switch {
		case name == q:
			exact = append(exact, e.ID)
		case strings.HasPrefix(name, q):
			prefixed = append(prefixed, e.ID)
		}
	}
	switch {
	case len(exact) == 1:
		return exact[0], nil
	case len(exact) > 1:
		return "", fmt.Errorf("%q names several projects, use an id from 'stint ls'", arg)
	case len(prefixed) == 1:
		return prefixed[0], nil
	case len(prefixed) > 1:
		return "", fmt.Errorf("%q is ambiguous, use an id from 'stint ls'", arg)
	}
	return "", fmt.Errorf("no project matches %q", arg)
}
