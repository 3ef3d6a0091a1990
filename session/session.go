// Package session drives the activity timer: one activity at a time,
// started, paused, resumed, and stopped by the user, with all duration
// accounting truncated to whole minutes.
package session

import (
	"time"

	"github.com/UzielLH/PSP/internal/activity"
	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/internal/timeutil"
)

// Status is the state of the session machine.
type Status string

const (
	Idle    Status = "idle"
	Running Status = "running"
	Paused  Status = "paused"
)

// DefaultThreshold is the elapsed time after which the long-session
// notification fires.
const DefaultThreshold = 60 * time.Minute

// Recorder commits a finished session to the activity ledger.
type Recorder interface {
	Record(entry models.LogEntry)
}

// Saver persists the project document.
type Saver interface {
	Save(doc *models.Document) error
}

// Machine is the session state machine. It owns the transient timing
// state for at most one in-progress activity; committed results live
// in the project document. It must only be used from a single
// goroutine.
type Machine struct {
	// Clock reads the current wall-clock time. Replaceable in tests.
	Clock func() time.Time

	// Threshold is the elapsed duration that triggers the one-shot
	// long-session notification while running.
	Threshold time.Duration

	doc    *models.Document
	ledger Recorder
	store  Saver

	status     Status
	activity   string
	comments   string
	startTime  time.Time
	pauseStart time.Time
	accumPause time.Duration
	notified   bool
}

// New returns an idle session machine operating on the given document.
func New(doc *models.Document, ledger Recorder, store Saver) *Machine {
	return &Machine{
		Clock:     time.Now,
		Threshold: DefaultThreshold,
		doc:       doc,
		ledger:    ledger,
		store:     store,
		status:    Idle,
	}
}

// Status returns the machine's current state.
func (m *Machine) Status() Status {
	return m.status
}

// Active reports whether a session is in progress (running or paused).
func (m *Machine) Active() bool {
	return m.status == Running || m.status == Paused
}

// Activity returns the activity being timed, or "" while idle.
func (m *Machine) Activity() string {
	return m.activity
}

// Comments returns the comments captured when the session started.
func (m *Machine) Comments() string {
	return m.comments
}

// StartedAt returns the session start time. Meaningful only while a
// session is in progress.
func (m *Machine) StartedAt() time.Time {
	return m.startTime
}

// Start begins timing the named activity. Valid only from the idle
// state; the activity must be drawn from the catalog. Comments may be
// empty but the prompt for them is mandatory before this call.
func (m *Machine) Start(name, comments string) error {
	if m.status != Idle {
		return errAlreadyRunning
	}

	if !activity.InCatalog(name) {
		return errUnknownActivity.Fmt(name)
	}

	m.activity = name
	m.comments = comments
	m.startTime = m.Clock()
	m.accumPause = 0
	m.pauseStart = time.Time{}
	m.notified = false
	m.status = Running

	return nil
}

// Pause interrupts a running session. The open pause segment is only
// accounted for when it is closed by Resume.
func (m *Machine) Pause() error {
	if m.status != Running {
		return errNotRunning
	}

	m.pauseStart = m.Clock()
	m.status = Paused

	return nil
}

// Resume closes the open pause segment: the segment is added to the
// accumulated pause, its whole minutes are added to the project's
// paused-minutes total, and the updated counter is saved. Fractional
// seconds below one minute are truncated and lost.
func (m *Machine) Resume() error {
	if m.status != Paused {
		return errNotPaused
	}

	segment := m.Clock().Sub(m.pauseStart)
	m.accumPause += segment
	m.doc.TotalPausedMinutes += timeutil.WholeMinutes(segment)
	m.pauseStart = time.Time{}
	m.status = Running

	if err := m.store.Save(m.doc); err != nil {
		return errSaveFailed.Wrap(err)
	}

	return nil
}

// Elapsed returns the active time so far: wall clock since start minus
// completed pauses. Meaningful only while running; the presentation
// layer freezes the last displayed value during pauses.
func (m *Machine) Elapsed() time.Duration {
	if m.status != Running {
		return 0
	}

	return m.Clock().Sub(m.startTime) - m.accumPause
}

// AccumulatedPause returns the total of completed pause segments for
// the in-progress session.
func (m *Machine) AccumulatedPause() time.Duration {
	return m.accumPause
}

// PausedElapsed returns the total paused time including the open pause
// segment. Meaningful only while paused.
func (m *Machine) PausedElapsed() time.Duration {
	if m.status != Paused {
		return 0
	}

	return m.accumPause + m.Clock().Sub(m.pauseStart)
}

// ThresholdCheck is called on every presentation tick while running.
// It reports true exactly once per session when the elapsed time
// crosses the threshold; pauses do not rearm it, only Start does.
func (m *Machine) ThresholdCheck() bool {
	if m.status != Running || m.notified {
		return false
	}

	if m.Elapsed() < m.Threshold {
		return false
	}

	m.notified = true

	return true
}

// Stop finalises the session: it commits a log entry to the ledger,
// persists the document, and resets the machine to idle. Stopping
// while paused discards the open pause segment from the paused total;
// only segments completed by Resume count. The returned flag reports
// whether the session's active time reached the long-session
// threshold.
func (m *Machine) Stop() (models.LogEntry, bool, error) {
	if m.status != Running && m.status != Paused {
		return models.LogEntry{}, false, errNotActive
	}

	end := m.Clock()

	entry := models.LogEntry{
		StartDate:     timeutil.LongDate(m.startTime),
		StartTime:     m.startTime.Format(timeutil.ClockFormat),
		EndTime:       end.Format(timeutil.ClockFormat),
		PausedMinutes: timeutil.WholeMinutes(m.accumPause),
		ActiveMinutes: timeutil.WholeMinutes(end.Sub(m.startTime) - m.accumPause),
		Activity:      m.activity,
		Comments:      m.comments,
	}

	m.ledger.Record(entry)

	longSession := time.Duration(entry.ActiveMinutes)*time.Minute >= m.Threshold

	m.status = Idle
	m.activity = ""
	m.comments = ""
	m.startTime = time.Time{}
	m.pauseStart = time.Time{}
	m.accumPause = 0
	m.notified = false

	if err := m.store.Save(m.doc); err != nil {
		return entry, longSession, errSaveFailed.Wrap(err)
	}

	return entry, longSession, nil
}
