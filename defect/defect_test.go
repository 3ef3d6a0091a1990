package defect_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/UzielLH/PSP/defect"
	"github.com/UzielLH/PSP/internal/apperr"
	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/ledger"
	"github.com/UzielLH/PSP/session"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type memStore struct {
	saves int
}

func (s *memStore) Save(_ *models.Document) error {
	s.saves++

	return nil
}

func fixture(t *testing.T) (*defect.Ledger, *session.Machine, *models.Document, *fakeClock) {
	t.Helper()

	doc := models.NewDocument()
	st := &memStore{}

	sess := session.New(doc, ledger.New(doc), st)

	clk := &fakeClock{
		now: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local),
	}
	sess.Clock = clk.Now

	l := defect.New(doc, sess, st)
	l.Clock = clk.Now

	return l, sess, doc, clk
}

func TestOpenRequiresSession(t *testing.T) {
	l, _, _, _ := fixture(t)

	err := l.Open("Codificar", "")
	if !apperr.IsKind(err, apperr.InvalidTransition) {
		t.Fatalf("Open without session: got %v, want invalid transition", err)
	}
}

func TestOpenDuringPause(t *testing.T) {
	l, sess, _, clk := fixture(t)

	if err := sess.Start("Codificar", ""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	clk.Advance(time.Minute)

	if err := sess.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	// A paused session still counts as in progress.
	if err := l.Open("Testear", ""); err != nil {
		t.Fatalf("Open during pause failed: %v", err)
	}
}

func TestSingleOpenEntry(t *testing.T) {
	l, sess, _, _ := fixture(t)

	if err := sess.Start("Codificar", ""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := l.Open("Codificar", ""); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	err := l.Open("Codificar", "")
	if !apperr.IsKind(err, apperr.InvalidTransition) {
		t.Fatalf("second Open: got %v, want invalid transition", err)
	}
}

func TestCloseCommitsEntry(t *testing.T) {
	l, sess, doc, clk := fixture(t)

	if err := sess.Start("Codificar", "feature work"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := l.Open("Codificar", ""); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	clk.Advance(7*time.Minute + 40*time.Second)

	got, err := l.Close(20, true, "índice fuera de rango")
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	want := models.DefectEntry{
		Date:          "04/03/2024",
		Number:        1,
		Type:          20,
		FoundIn:       "Codificar",
		RemovedIn:     "Codificar",
		RepairMinutes: 7,
		Fixed:         true,
		Description:   "índice fuera de rango",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defect entry mismatch (-want +got):\n%s", diff)
	}

	if len(doc.Defects) != 1 {
		t.Fatalf("defect count = %d, want 1", len(doc.Defects))
	}

	if l.Opened() {
		t.Error("entry still open after close")
	}
}

func TestRemovedInDefaultsToCurrentActivity(t *testing.T) {
	l, sess, _, _ := fixture(t)

	if err := sess.Start("Testear", ""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := l.Open("Codificar", ""); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	got, err := l.Close(10, false, "caso sin cubrir")
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got.RemovedIn != "Testear" {
		t.Errorf("removed-in = %q, want the running activity", got.RemovedIn)
	}
}

// Sequence numbers count all recorded defects for the project, not per
// session, and a discarded entry releases its reserved number.
func TestSequenceNumbers(t *testing.T) {
	l, sess, _, clk := fixture(t)

	record := func(activityName string) models.DefectEntry {
		t.Helper()

		if err := sess.Start(activityName, ""); err != nil {
			t.Fatalf("Start failed: %v", err)
		}

		if err := l.Open(activityName, ""); err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		clk.Advance(time.Minute)

		e, err := l.Close(30, true, "x")
		if err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		if _, _, err := sess.Stop(); err != nil {
			t.Fatalf("Stop failed: %v", err)
		}

		return e
	}

	first := record("Codificar")
	second := record("Testear")

	if first.Number != 1 || second.Number != 2 {
		t.Fatalf("numbers = %d, %d; want 1, 2", first.Number, second.Number)
	}

	if err := sess.Start("Codificar", ""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := l.Open("Codificar", ""); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	l.Discard()

	if err := l.Open("Codificar", ""); err != nil {
		t.Fatalf("Open after discard failed: %v", err)
	}

	e, err := l.Close(40, true, "y")
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if e.Number != 3 {
		t.Errorf("number after discard = %d, want 3", e.Number)
	}
}

func TestCloseRejectsUnknownType(t *testing.T) {
	l, sess, doc, _ := fixture(t)

	if err := sess.Start("Codificar", ""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := l.Open("Codificar", ""); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for _, code := range []int{0, 15, 101, -10} {
		_, err := l.Close(code, true, "z")
		if !apperr.IsKind(err, apperr.Validation) {
			t.Errorf("Close(%d): got %v, want validation error", code, err)
		}
	}

	// The failed close leaves the entry open and nothing recorded.
	if !l.Opened() {
		t.Error("entry closed despite validation failure")
	}

	if len(doc.Defects) != 0 {
		t.Errorf("defect count = %d, want 0", len(doc.Defects))
	}
}

func TestCloseWithoutOpen(t *testing.T) {
	l, _, _, _ := fixture(t)

	_, err := l.Close(10, true, "w")
	if !apperr.IsKind(err, apperr.InvalidTransition) {
		t.Fatalf("Close without open entry: got %v, want invalid transition", err)
	}
}

func TestRepairElapsed(t *testing.T) {
	l, sess, _, clk := fixture(t)

	if err := sess.Start("Codificar", ""); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if got := l.RepairElapsed(); got != 0 {
		t.Errorf("RepairElapsed with no open entry = %v, want 0", got)
	}

	if err := l.Open("Codificar", ""); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	clk.Advance(3 * time.Minute)

	if got := l.RepairElapsed(); got != 3*time.Minute {
		t.Errorf("RepairElapsed = %v, want 3m", got)
	}
}
