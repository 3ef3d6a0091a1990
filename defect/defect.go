// Package defect records quality defects found while a session is in
// progress, each with its own independently timed repair duration.
package defect

import (
	"time"

	"github.com/UzielLH/PSP/internal/activity"
	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/internal/timeutil"
	"github.com/UzielLH/PSP/session"
)

// Ledger appends defect entries to the project document. An entry is
// opened while its repair is being timed and closed to commit it; at
// most one entry is open at a time.
type Ledger struct {
	// Clock reads the current wall-clock time. Replaceable in tests.
	Clock func() time.Time

	doc   *models.Document
	sess  *session.Machine
	store session.Saver

	open *openEntry
}

type openEntry struct {
	number      int
	foundIn     string
	removedIn   string
	repairStart time.Time
}

// New returns a defect ledger tied to the given session machine.
func New(doc *models.Document, sess *session.Machine, store session.Saver) *Ledger {
	return &Ledger{
		Clock: time.Now,
		doc:   doc,
		sess:  sess,
		store: store,
	}
}

// Open begins timing a defect repair and reserves the next sequence
// number. A session must be running or paused. removedIn defaults to
// the activity currently being timed when left empty.
func (l *Ledger) Open(foundIn, removedIn string) error {
	if !l.sess.Active() {
		return errNoSession
	}

	if l.open != nil {
		return errAlreadyOpen
	}

	if removedIn == "" {
		removedIn = l.sess.Activity()
	}

	l.open = &openEntry{
		number:      len(l.doc.Defects) + 1,
		foundIn:     foundIn,
		removedIn:   removedIn,
		repairStart: l.Clock(),
	}

	return nil
}

// Opened reports whether a defect entry is currently being timed.
func (l *Ledger) Opened() bool {
	return l.open != nil
}

// RepairElapsed returns the repair time of the open entry so far.
func (l *Ledger) RepairElapsed() time.Duration {
	if l.open == nil {
		return 0
	}

	return l.Clock().Sub(l.open.repairStart)
}

// Discard abandons the open entry without recording it. Its reserved
// sequence number is released.
func (l *Ledger) Discard() {
	l.open = nil
}

// Close commits the open entry with the repair duration truncated to
// whole minutes. The type code must be one of the ten recognised
// codes; on a validation failure the entry stays open and untouched.
func (l *Ledger) Close(typeCode int, fixed bool, description string) (models.DefectEntry, error) {
	if l.open == nil {
		return models.DefectEntry{}, errNoOpenEntry
	}

	if !activity.ValidDefectType(typeCode) {
		return models.DefectEntry{}, errUnknownType.Fmt(typeCode)
	}

	now := l.Clock()

	entry := models.DefectEntry{
		Date:          now.Format(timeutil.DateFormat),
		Number:        l.open.number,
		Type:          typeCode,
		FoundIn:       l.open.foundIn,
		RemovedIn:     l.open.removedIn,
		RepairMinutes: timeutil.WholeMinutes(now.Sub(l.open.repairStart)),
		Fixed:         fixed,
		Description:   description,
	}

	l.doc.Defects = append(l.doc.Defects, entry)
	l.open = nil

	if err := l.store.Save(l.doc); err != nil {
		return entry, errSaveFailed.Wrap(err)
	}

	return entry, nil
}
