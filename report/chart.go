package report

import (
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/UzielLH/PSP/ledger"
)

// RenderBarChart writes a PNG bar chart of minutes per activity. It
// fails with a validation error when no time has been recorded, since
// an all-zero value range cannot be plotted.
func RenderBarChart(snap ledger.Snapshot, path string) error {
	if snap.TotalActiveMinutes == 0 {
		return errNoChartData
	}

	shares := Shares(snap)

	bars := make([]chart.Value, 0, len(shares))
	for _, s := range shares {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s\n%d min (%.1f%%)", s.Activity, s.Minutes, s.Percent),
			Value: float64(s.Minutes),
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Tiempo empleado en actividades: %d minutos efectivos, %d en pausa", snap.TotalActiveMinutes, snap.TotalPausedMinutes),
		Width:    1000,
		Height:   500,
		BarWidth: 80,
		Bars:     bars,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 30},
		},
	}

	return renderToFile(path, graph.Render)
}

// RenderPieChart writes a PNG pie chart comparing effective time
// against paused time. It fails with a validation error when both
// totals are zero, matching the "insufficient data" guard in the
// reporting flow.
func RenderPieChart(snap ledger.Snapshot, path string) error {
	if snap.TotalActiveMinutes+snap.TotalPausedMinutes == 0 {
		return errNoChartData
	}

	graph := chart.PieChart{
		Title:  "Tiempo Efectivo vs Tiempo en Pausa",
		Width:  700,
		Height: 500,
		Values: []chart.Value{
			{
				Label: fmt.Sprintf("Tiempo Efectivo (%d min)", snap.TotalActiveMinutes),
				Value: float64(snap.TotalActiveMinutes),
				Style: chart.Style{FillColor: drawing.ColorGreen},
			},
			{
				Label: fmt.Sprintf("Tiempo en Pausa (%d min)", snap.TotalPausedMinutes),
				Value: float64(snap.TotalPausedMinutes),
				Style: chart.Style{FillColor: drawing.ColorRed},
			},
		},
	}

	return renderToFile(path, graph.Render)
}

func renderToFile(path string, render func(chart.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errRenderChart.Fmt(path).Wrap(err)
	}

	defer f.Close()

	if err := render(chart.PNG, f); err != nil {
		return errRenderChart.Fmt(path).Wrap(err)
	}

	return nil
}
