// Package report renders ledger data as tables, charts, and a PDF
// document. It only reads plain data produced by the core packages.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/UzielLH/PSP/internal/activity"
	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/internal/ui"
	"github.com/UzielLH/PSP/ledger"
)

var (
	logHeaders = []string{
		"Fecha",
		"Inicio",
		"Fin",
		"Interrupción (min)",
		"A Tiempo (min)",
		"Actividad",
		"Comentarios",
	}

	defectHeaders = []string{
		"Fecha",
		"Número",
		"Tipo",
		"Encontrado",
		"Removido",
		"Compostura (min)",
		"Arreglado",
		"Descripción",
	}
)

// LogRows builds the activity log table, header row first.
func LogRows(entries []models.LogEntry) [][]string {
	rows := [][]string{logHeaders}

	for _, e := range entries {
		rows = append(rows, []string{
			e.StartDate,
			e.StartTime,
			e.EndTime,
			strconv.Itoa(e.PausedMinutes),
			strconv.Itoa(e.ActiveMinutes),
			e.Activity,
			e.Comments,
		})
	}

	return rows
}

// DefectRows builds the defect log table, header row first. Type codes
// are rendered with their labels.
func DefectRows(defects []models.DefectEntry) [][]string {
	rows := [][]string{defectHeaders}

	for _, d := range defects {
		fixed := "No"
		if d.Fixed {
			fixed = "Sí"
		}

		rows = append(rows, []string{
			d.Date,
			strconv.Itoa(d.Number),
			fmt.Sprintf("%d - %s", d.Type, activity.DefectTypes[d.Type]),
			d.FoundIn,
			d.RemovedIn,
			strconv.Itoa(d.RepairMinutes),
			fixed,
			d.Description,
		})
	}

	return rows
}

// Share is one activity's slice of the effective-time total.
type Share struct {
	Activity string
	Minutes  int
	Percent  float64
}

// Shares computes each catalog activity's share of the total effective
// time, in catalog order. Percent is zero across the board when no
// time has been recorded yet.
func Shares(snap ledger.Snapshot) []Share {
	shares := make([]Share, 0, len(activity.Catalog))

	for _, name := range activity.Catalog {
		mins := snap.Activities[name]

		var pct float64
		if snap.TotalActiveMinutes > 0 {
			pct = float64(mins) / float64(snap.TotalActiveMinutes) * 100
		}

		shares = append(shares, Share{
			Activity: name,
			Minutes:  mins,
			Percent:  pct,
		})
	}

	return shares
}

// PrintLogs writes the activity log table.
func PrintLogs(entries []models.LogEntry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No hay registros de actividad todavía")
		return
	}

	ui.PrintTable(LogRows(entries), w)
}

// PrintDefects writes the defect log table.
func PrintDefects(defects []models.DefectEntry, w io.Writer) {
	if len(defects) == 0 {
		fmt.Fprintln(w, "No hay defectos registrados todavía")
		return
	}

	ui.PrintTable(DefectRows(defects), w)
}

// PrintStats writes the aggregate summary and a horizontal bar chart
// of minutes per activity to the terminal.
func PrintStats(snap ledger.Snapshot, w io.Writer) {
	fmt.Fprintf(w, "Tiempo total efectivo: %s\n",
		ui.Green(fmt.Sprintf("%d minutos", snap.TotalActiveMinutes)),
	)
	fmt.Fprintf(w, "Tiempo total en pausa: %s\n\n",
		ui.Red(fmt.Sprintf("%d minutos", snap.TotalPausedMinutes)),
	)

	bars := make(pterm.Bars, 0, len(activity.Catalog))

	for _, share := range Shares(snap) {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%s (%.1f%%)", share.Activity, share.Percent),
			Value: share.Minutes,
		})
	}

	chart, err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render activity chart: %s", err.Error())
		return
	}

	fmt.Fprintln(w, chart)
}
