package report_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/ledger"
	"github.com/UzielLH/PSP/report"
)

func TestLogRows(t *testing.T) {
	entries := []models.LogEntry{
		{
			StartDate:     "Lunes, 04 marzo 2024",
			StartTime:     "09:00:00",
			EndTime:       "09:20:00",
			PausedMinutes: 5,
			ActiveMinutes: 15,
			Activity:      "Codificar",
			Comments:      "parser",
		},
	}

	got := report.LogRows(entries)

	want := [][]string{
		{
			"Fecha", "Inicio", "Fin", "Interrupción (min)",
			"A Tiempo (min)", "Actividad", "Comentarios",
		},
		{
			"Lunes, 04 marzo 2024", "09:00:00", "09:20:00",
			"5", "15", "Codificar", "parser",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log rows mismatch (-want +got):\n%s", diff)
	}
}

func TestDefectRows(t *testing.T) {
	defects := []models.DefectEntry{
		{
			Date:          "04/03/2024",
			Number:        1,
			Type:          20,
			FoundIn:       "Testear",
			RemovedIn:     "Codificar",
			RepairMinutes: 7,
			Fixed:         true,
			Description:   "índice fuera de rango",
		},
		{
			Date:          "05/03/2024",
			Number:        2,
			Type:          80,
			FoundIn:       "Codificar",
			RemovedIn:     "Codificar",
			RepairMinutes: 0,
			Fixed:         false,
			Description:   "condición invertida",
		},
	}

	got := report.DefectRows(defects)

	if len(got) != 3 {
		t.Fatalf("row count = %d, want 3", len(got))
	}

	if got[1][2] != "20 - Sintaxis" {
		t.Errorf("type cell = %q, want code with label", got[1][2])
	}

	if got[1][6] != "Sí" || got[2][6] != "No" {
		t.Errorf("fixed cells = %q, %q; want Sí, No", got[1][6], got[2][6])
	}
}

func TestShares(t *testing.T) {
	doc := models.NewDocument()
	doc.Activities["Codificar"] = 30
	doc.Activities["Testear"] = 10

	shares := report.Shares(ledger.New(doc).Snapshot())

	if len(shares) != 9 {
		t.Fatalf("share count = %d, want one per catalog activity", len(shares))
	}

	byName := make(map[string]report.Share)
	for _, s := range shares {
		byName[s.Activity] = s
	}

	if got := byName["Codificar"]; got.Minutes != 30 || math.Abs(got.Percent-75) > 1e-9 {
		t.Errorf("Codificar share = %+v, want 30 min / 75%%", got)
	}

	if got := byName["Testear"]; got.Minutes != 10 || math.Abs(got.Percent-25) > 1e-9 {
		t.Errorf("Testear share = %+v, want 10 min / 25%%", got)
	}

	if got := byName["Analizar"]; got.Minutes != 0 || got.Percent != 0 {
		t.Errorf("Analizar share = %+v, want zero", got)
	}
}

func TestSharesEmpty(t *testing.T) {
	shares := report.Shares(ledger.New(models.NewDocument()).Snapshot())

	for _, s := range shares {
		if s.Percent != 0 {
			t.Errorf("%s percent = %v with no recorded time", s.Activity, s.Percent)
		}
	}
}

func TestPrintEmptyStates(t *testing.T) {
	var buf bytes.Buffer

	report.PrintLogs(nil, &buf)

	if !strings.Contains(buf.String(), "No hay registros") {
		t.Errorf("empty log output = %q", buf.String())
	}

	buf.Reset()
	report.PrintDefects(nil, &buf)

	if !strings.Contains(buf.String(), "No hay defectos") {
		t.Errorf("empty defects output = %q", buf.String())
	}
}

func TestRenderBarChart(t *testing.T) {
	doc := models.NewDocument()
	doc.Activities["Codificar"] = 30

	path := filepath.Join(t.TempDir(), "barras.png")

	if err := report.RenderBarChart(ledger.New(doc).Snapshot(), path); err != nil {
		t.Fatalf("RenderBarChart failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}

	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestRenderChartsWithoutData(t *testing.T) {
	snap := ledger.New(models.NewDocument()).Snapshot()
	dir := t.TempDir()

	if err := report.RenderBarChart(snap, filepath.Join(dir, "b.png")); err == nil {
		t.Error("bar chart rendered with no recorded time")
	}

	if err := report.RenderPieChart(snap, filepath.Join(dir, "p.png")); err == nil {
		t.Error("pie chart rendered with no recorded time")
	}
}
