package report

import (
	"os"
	"path/filepath"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/internal/timeutil"
	"github.com/UzielLH/PSP/ledger"
)

// ExportPDF writes the full project report: chart pages followed by
// the activity log and defect tables. Chart images are rendered to a
// temporary directory and embedded.
func ExportPDF(doc *models.Document, snap ledger.Snapshot, outPath string) error {
	tmpDir, err := os.MkdirTemp("", "psp-charts")
	if err != nil {
		return errWritePDF.Fmt(outPath).Wrap(err)
	}

	defer os.RemoveAll(tmpDir)

	barPath := filepath.Join(tmpDir, "bar.png")
	piePath := filepath.Join(tmpDir, "pie.png")

	haveCharts := true

	if err := RenderBarChart(snap, barPath); err != nil {
		haveCharts = false
	}

	if haveCharts {
		if err := RenderPieChart(snap, piePath); err != nil {
			haveCharts = false
		}
	}

	m := pdf.NewMaroto(consts.Landscape, consts.Letter)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text("Proyecto: "+doc.ProjectName, props.Text{
					Style: consts.Bold,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text(headerDates(doc), props.Text{
					Align: consts.Center,
					Size:  9,
				})
			})
		})

		if doc.StudentName != "" || doc.InstructorName != "" {
			m.Row(6, func() {
				m.Col(12, func() {
					m.Text(
						"Alumno: "+doc.StudentName+"    Instructor: "+doc.InstructorName,
						props.Text{Align: consts.Center, Size: 9},
					)
				})
			})
		}
	})

	if haveCharts {
		m.Row(120, func() {
			m.Col(12, func() {
				_ = m.FileImage(barPath, props.Rect{
					Center:  true,
					Percent: 90,
				})
			})
		})

		m.AddPage()

		m.Row(120, func() {
			m.Col(12, func() {
				_ = m.FileImage(piePath, props.Rect{
					Center:  true,
					Percent: 90,
				})
			})
		})

		m.AddPage()
	} else {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(
					"No se pueden mostrar las gráficas debido a que no hay datos suficientes.",
					props.Text{Align: consts.Center, Size: 10},
				)
			})
		})
	}

	logTable := LogRows(doc.ActivityLogs)
	addTable(m, "Registro de Actividades", logTable[0], logTable[1:])

	m.AddPage()

	defectTable := DefectRows(doc.Defects)
	addTable(m, "Registro de Defectos", defectTable[0], defectTable[1:])

	if err := m.OutputFileAndClose(outPath); err != nil {
		return errWritePDF.Fmt(outPath).Wrap(err)
	}

	return nil
}

func addTable(m pdf.Maroto, title string, headers []string, rows [][]string) {
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Style: consts.Bold,
				Size:  12,
			})
		})
	})

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size: 9,
		},
		ContentProp: props.TableListContent{
			Size: 8,
		},
		Align: consts.Center,
		AlternatedBackground: &color.Color{
			Red:   235,
			Green: 235,
			Blue:  235,
		},
		HeaderContentSpace: 2,
		Line:               true,
	})
}

func headerDates(doc *models.Document) string {
	generated := timeutil.LongDate(time.Now())

	start := doc.StartDate
	if t, err := timeutil.ParseDate(doc.StartDate); err == nil {
		start = timeutil.LongDate(t)
	}

	return "Fecha de inicio: " + start + "    Fecha de generación: " + generated
}
