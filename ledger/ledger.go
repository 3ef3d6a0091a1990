// Package ledger maintains the per-activity time aggregate and the
// append-only log of committed sessions.
package ledger

import (
	"maps"
	"slices"

	"github.com/UzielLH/PSP/internal/models"
)

// Snapshot is a point-in-time copy of the aggregate totals, consumed
// by reporting and charting.
type Snapshot struct {
	// Activities maps activity name to accumulated effective minutes.
	Activities map[string]int

	// TotalActiveMinutes is the sum over all activities.
	TotalActiveMinutes int

	// TotalPausedMinutes is the global paused-minutes counter.
	TotalPausedMinutes int
}

// Ledger accumulates committed sessions into the project document.
type Ledger struct {
	doc *models.Document
}

// New returns a ledger writing into the given document.
func New(doc *models.Document) *Ledger {
	return &Ledger{doc: doc}
}

// Record appends a committed log entry and updates the aggregates: the
// entry's active minutes are added to its activity's total, and its
// paused minutes are added to the global counter. The global counter
// also receives per-segment increments on every resume, so a session's
// paused time contributes twice; this mirrors the recording process
// this tool reproduces. Entries are never edited or removed.
func (l *Ledger) Record(entry models.LogEntry) {
	l.doc.ActivityLogs = append(l.doc.ActivityLogs, entry)
	l.doc.Activities[entry.Activity] += entry.ActiveMinutes
	l.doc.TotalPausedMinutes += entry.PausedMinutes
}

// Entries returns a copy of the committed log in append order.
func (l *Ledger) Entries() []models.LogEntry {
	return slices.Clone(l.doc.ActivityLogs)
}

// Snapshot returns a copy of the current aggregate totals.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Activities:         maps.Clone(l.doc.Activities),
		TotalActiveMinutes: l.doc.TotalActiveMinutes(),
		TotalPausedMinutes: l.doc.TotalPausedMinutes,
	}
}
