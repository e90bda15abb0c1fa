package domain

import "strings"

// RunStatus represents the lifecycle state of a single sweep run.
type RunStatus string

const (
	// StatusPending indicates the run is waiting to be executed.
	StatusPending RunStatus = "pending"
	// StatusRunning indicates the run is currently executing.
	StatusRunning RunStatus = "running"
	// StatusCompleted indicates the run finished successfully.
	StatusCompleted RunStatus = "completed"
	// StatusFailed indicates the run failed during build, solve, or extraction.
	StatusFailed RunStatus = "failed"
	// StatusCached indicates the run was skipped because a stored result matched its input hash.
	StatusCached RunStatus = "cached"
)

// IsTerminal reports whether the status is a terminal state.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCached:
		return true
	default:
		return false
	}
}

// FailurePolicy controls how a sweep reacts to a failing run.
type FailurePolicy string

const (
	// FailContinue records the failure against the entry and continues the sweep.
	FailContinue FailurePolicy = "continue"
	// FailAbort stops the sweep at the first failing run.
	FailAbort FailurePolicy = "abort"
)

// ParseFailurePolicy converts a string to a FailurePolicy.
// The empty string defaults to FailContinue.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(s) {
	case "", string(FailContinue):
		return FailContinue, nil
	case string(FailAbort):
		return FailAbort, nil
	default:
		return "", ErrUnknownFailurePolicy
	}
}

// SweepEntry pairs one input resolution with the outcome of its run.
type SweepEntry struct {
	Spec   ResolutionSpec
	Status RunStatus
	Series OutputSeries
	Err    error
}

// Succeeded reports whether the entry holds a usable series.
func (e SweepEntry) Succeeded() bool {
	return e.Status == StatusCompleted || e.Status == StatusCached
}

// SweepResult holds one entry per input resolution, in input order, so
// index-based labeling stays aligned with the caller's resolution list.
// In abort mode the entries are the prefix completed before the failure.
type SweepResult struct {
	Observable string
	Span       TimeSpan
	Entries    []SweepEntry
}

// Succeeded returns the number of entries with a usable series.
func (r *SweepResult) Succeeded() int {
	n := 0
	for _, e := range r.Entries {
		if e.Succeeded() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed entries.
func (r *SweepResult) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == StatusFailed {
			n++
		}
	}
	return n
}
