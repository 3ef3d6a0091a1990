package ledger_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/ledger"
)

func entry(activity string, active, paused int) models.LogEntry {
	return models.LogEntry{
		StartDate:     "Lunes, 04 marzo 2024",
		StartTime:     "09:00:00",
		EndTime:       "09:30:00",
		PausedMinutes: paused,
		ActiveMinutes: active,
		Activity:      activity,
	}
}

func TestRecord(t *testing.T) {
	doc := models.NewDocument()
	l := ledger.New(doc)

	l.Record(entry("Codificar", 15, 5))
	l.Record(entry("Codificar", 10, 0))
	l.Record(entry("Testear", 7, 2))

	if len(doc.ActivityLogs) != 3 {
		t.Fatalf("log count = %d, want 3", len(doc.ActivityLogs))
	}

	wantAggregates := map[string]int{
		"Codificar": 25,
		"Testear":   7,
	}
	if diff := cmp.Diff(wantAggregates, doc.Activities); diff != "" {
		t.Errorf("aggregates mismatch (-want +got):\n%s", diff)
	}

	if doc.TotalPausedMinutes != 7 {
		t.Errorf("total paused minutes = %d, want 7", doc.TotalPausedMinutes)
	}

	// Earlier entries are append-only history; recording must not
	// rewrite them.
	if doc.ActivityLogs[0].ActiveMinutes != 15 {
		t.Errorf("first entry active minutes = %d, want 15", doc.ActivityLogs[0].ActiveMinutes)
	}
}

// The per-activity aggregates always equal the sum of the entries that
// produced them.
func TestAggregateConsistency(t *testing.T) {
	doc := models.NewDocument()
	l := ledger.New(doc)

	entries := []models.LogEntry{
		entry("Analizar", 12, 3),
		entry("Codificar", 45, 0),
		entry("Analizar", 8, 1),
		entry("Reunión", 30, 10),
	}

	for _, e := range entries {
		l.Record(e)
	}

	sums := make(map[string]int)
	for _, e := range doc.ActivityLogs {
		sums[e.Activity] += e.ActiveMinutes
	}

	if diff := cmp.Diff(sums, doc.Activities); diff != "" {
		t.Errorf("aggregates diverge from entries (-want +got):\n%s", diff)
	}
}

func TestSnapshot(t *testing.T) {
	doc := models.NewDocument()
	l := ledger.New(doc)

	l.Record(entry("Codificar", 20, 4))

	snap := l.Snapshot()

	if snap.TotalActiveMinutes != 20 {
		t.Errorf("snapshot total active = %d, want 20", snap.TotalActiveMinutes)
	}

	// Snapshot returns a copy; mutating it must not leak into the
	// document.
	snap.Activities["Codificar"] = 999

	if doc.Activities["Codificar"] != 20 {
		t.Errorf("document aggregate changed through snapshot: %d", doc.Activities["Codificar"])
	}
}

func TestEntriesClone(t *testing.T) {
	doc := models.NewDocument()
	l := ledger.New(doc)

	l.Record(entry("Testear", 5, 0))

	got := l.Entries()
	got[0].ActiveMinutes = 999

	if doc.ActivityLogs[0].ActiveMinutes != 5 {
		t.Errorf("document entry changed through Entries copy: %d", doc.ActivityLogs[0].ActiveMinutes)
	}
}
