package tracker

import "time"

// Project is one tracked project. TotalSeconds holds the accrued whole
// seconds; StartTime is the wall-clock start of the open interval in epoch
// milliseconds, nil unless the project is the running one.
type Project struct {
	Name         string `json:"name"`
	TotalSeconds int64  `json:"totalSeconds"`
	StartTime    *int64 `json:"startTime"`
}

// Running reports whether the project has an open interval.
func (p Project) Running() bool {
	return p.StartTime != nil
}

// StartedAt returns the open interval's start as a time, if running.
func (p Project) StartedAt() (time.Time, bool) {
	if p.StartTime == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*p.StartTime), true
}

// Entry pairs a project with its id for ordered listings.
type Entry struct {
	ID      string
	Project Project
}

// state is the persisted wire shape: the project map plus the running
// project's id. StartTime and ActiveProjectID serialize as null when
// absent, matching the blobs older versions wrote.
type state struct {
	Projects        map[string]*Project `json:"projects"`
	ActiveProjectID *string             `json:"activeProjectId"`
}

func cloneProject(p *Project) Project {
	c := *p
	if p.StartTime != nil {
		ms := *p.StartTime
		c.StartTime = &ms
	}
	return c
}
