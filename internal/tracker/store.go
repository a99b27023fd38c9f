package tracker

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stint-cli/stint/internal/storage"
)

// Store owns the in-memory tracker state and its persistence. It is not
// safe for concurrent use: the CLI and the TUI both drive it from a single
// goroutine.
//
// Mutating operations never fail. Bad input and storage trouble degrade to
// the nearest safe state and are logged, so callers need no error paths.
type Store struct {
	kv     storage.KV
	logger *slog.Logger
	now    func() time.Time

	projects map[string]*Project
	activeID string
	lastIDMs int64
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store over kv and loads the persisted state.
func New(kv storage.KV, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kv:       kv,
		logger:   logger,
		now:      time.Now,
		projects: make(map[string]*Project),
	}
	for _, o := range opts {
		o(s)
	}
	s.Load()
	return s
}

// Load replaces the in-memory state with whatever is persisted under the
// state key. An absent, empty, or unreadable blob loads as an empty store.
// Both the current wrapped shape and the legacy bare id->project map are
// accepted; the result is then reconciled so the invariants hold.
func (s *Store) Load() {
	s.projects = make(map[string]*Project)
	s.activeID = ""

	raw, ok, err := s.kv.Get(storage.StateKey)
	if err != nil {
		s.logger.Warn("state load failed, starting empty", "error", err)
		return
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}

	var st state
	if err := json.Unmarshal([]byte(raw), &st); err == nil && st.Projects != nil {
		s.projects = st.Projects
		if st.ActiveProjectID != nil {
			s.activeID = *st.ActiveProjectID
		}
	} else {
		// blobs from before the wrapper were a bare id -> project map
		var bare map[string]*Project
		if err := json.Unmarshal([]byte(raw), &bare); err != nil || bare == nil || hasWrapperKeys(bare) {
			s.logger.Warn("discarding unreadable state", "error", err)
			return
		}
		s.projects = bare
	}
	s.reconcile()
}

// hasWrapperKeys reports whether a map read as the legacy bare shape in
// fact carries the wrapped shape's keys. That happens when a wrapped blob
// fails the typed decode; unknown inner fields drop silently, so rereading
// it as a bare map would invent a project out of the wrapper key.
func hasWrapperKeys(m map[string]*Project) bool {
	_, p := m["projects"]
	_, a := m["activeProjectId"]
	return p || a
}

// reconcile enforces the load-time contract: drop broken entries, clamp
// negative totals, validate the active id, and clear stray start times.
// An entry with no name after trimming counts as broken; nothing in the
// app writes one. A stray start time is what a crash leaves behind when
// it lands between a start and the next persisting operation.
func (s *Store) reconcile() {
	for id, p := range s.projects {
		if p == nil {
			s.logger.Warn("dropping null project entry", "id", id)
			delete(s.projects, id)
			continue
		}
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			s.logger.Warn("dropping project entry with no name", "id", id)
			delete(s.projects, id)
			continue
		}
		if p.TotalSeconds < 0 {
			s.logger.Warn("clamping negative total", "id", id, "totalSeconds", p.TotalSeconds)
			p.TotalSeconds = 0
		}
	}

	if s.activeID != "" {
		if p, ok := s.projects[s.activeID]; !ok {
			s.logger.Warn("discarding active id with no matching project", "id", s.activeID)
			s.activeID = ""
		} else if p.StartTime == nil {
			s.logger.Warn("active project has no start time, clearing", "id", s.activeID)
			s.activeID = ""
		}
	}

	for id, p := range s.projects {
		if id != s.activeID && p.StartTime != nil {
			s.logger.Debug("clearing stray start time", "id", id)
			p.StartTime = nil
		}
	}
}

// Save writes the current state under the state key. A failed write is
// logged and not retried; the in-memory state stays authoritative for the
// rest of the session.
func (s *Store) Save() {
	st := state{Projects: s.projects}
	if s.activeID != "" {
		id := s.activeID
		st.ActiveProjectID = &id
	}

	blob, err := json.Marshal(st)
	if err != nil {
		s.logger.Warn("state encode failed", "error", err)
		return
	}
	if err := s.kv.Set(storage.StateKey, string(blob)); err != nil {
		s.logger.Warn("state save failed, keeping in-memory state", "error", err)
	}
}

// AddProject creates a project with the given name and persists. Names are
// trimmed; a blank name is a no-op returning "". Duplicate names are fine,
// ids keep projects apart.
func (s *Store) AddProject(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.Debug("ignoring add with blank name")
		return ""
	}
	id := s.newID()
	s.projects[id] = &Project{Name: name}
	s.Save()
	s.logger.Debug("project added", "id", id, "name", name)
	return id
}

// StartTimer opens an interval on id and makes it the running project,
// stopping the current one first (with its usual accrual and save).
// Unknown ids and the already-running project are no-ops.
//
// The start itself is not persisted. The open interval reaches storage
// with the next persisting operation; until then a crash loses it, which
// is exactly the case reconcile cleans up on load.
func (s *Store) StartTimer(id string) {
	p, ok := s.projects[id]
	if !ok {
		s.logger.Warn("start for unknown project", "id", id)
		return
	}
	if id == s.activeID {
		return
	}
	if s.activeID != "" {
		s.StopTimer(s.activeID)
	}
	ms := s.now().UnixMilli()
	p.StartTime = &ms
	s.activeID = id
	s.logger.Debug("timer started", "id", id, "name", p.Name)
}

// StopTimer closes the open interval on id, folds the elapsed whole
// seconds into the total, and persists. Only the running project can be
// stopped; anything else is a no-op.
func (s *Store) StopTimer(id string) {
	if id == "" || id != s.activeID {
		s.logger.Debug("stop for project that is not running", "id", id)
		return
	}
	p, ok := s.projects[id]
	if !ok {
		// the active id always names a project after reconcile; recover anyway
		s.activeID = ""
		return
	}
	if p.StartTime != nil {
		if elapsed := s.now().UnixMilli() - *p.StartTime; elapsed > 0 {
			p.TotalSeconds += elapsed / 1000
		}
		p.StartTime = nil
	}
	s.activeID = ""
	s.Save()
	s.logger.Debug("timer stopped", "id", id, "name", p.Name, "totalSeconds", p.TotalSeconds)
}

// ToggleTimer is the single entry point timer controls go through: stop
// the project if it is running, otherwise start it.
func (s *Store) ToggleTimer(id string) {
	if id != "" && id == s.activeID {
		s.StopTimer(id)
		return
	}
	s.StartTimer(id)
}

// DeleteProject removes id and persists. Deleting the running project
// clears the active id; its open interval is discarded, not accrued.
func (s *Store) DeleteProject(id string) {
	if _, ok := s.projects[id]; !ok {
		s.logger.Warn("delete for unknown project", "id", id)
		return
	}
	if id == s.activeID {
		s.activeID = ""
	}
	delete(s.projects, id)
	s.Save()
	s.logger.Debug("project deleted", "id", id)
}

// DisplaySeconds returns the seconds to show for id at the given time: the
// accrued total plus, for the running project, the elapsed whole seconds
// of the open interval. Unknown ids read as 0. Pure read, never persists.
func (s *Store) DisplaySeconds(id string, now time.Time) int64 {
	p, ok := s.projects[id]
	if !ok {
		return 0
	}
	total := p.TotalSeconds
	if id == s.activeID && p.StartTime != nil {
		if elapsed := now.UnixMilli() - *p.StartTime; elapsed > 0 {
			total += elapsed / 1000
		}
	}
	return total
}

// Projects returns (id, project) snapshots sorted by id. Ids embed their
// creation time, so the order is creation order, stable across loads.
func (s *Store) Projects() []Entry {
	entries := make([]Entry, 0, len(s.projects))
	for id, p := range s.projects {
		entries = append(entries, Entry{ID: id, Project: cloneProject(p)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// ActiveID returns the running project's id, or "".
func (s *Store) ActiveID() string {
	return s.activeID
}

// Get returns a snapshot of the project for id.
func (s *Store) Get(id string) (Project, bool) {
	p, ok := s.projects[id]
	if !ok {
		return Project{}, false
	}
	return cloneProject(p), true
}

// newID returns a fresh project id. The millisecond prefix is forced
// strictly increasing per call so ids sort in creation order even under a
// frozen test clock; the uuid suffix keeps ids from other runs distinct.
func (s *Store) newID() string {
	ms := s.now().UnixMilli()
	if ms <= s.lastIDMs {
		ms = s.lastIDMs + 1
	}
	s.lastIDMs = ms
	return fmt.Sprintf("%013d-%s", ms, uuid.NewString()[:8])
}
