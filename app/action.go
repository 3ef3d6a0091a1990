package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/UzielLH/PSP/config"
	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/internal/ui"
	"github.com/UzielLH/PSP/ledger"
	"github.com/UzielLH/PSP/report"
	"github.com/UzielLH/PSP/store"
	"github.com/UzielLH/PSP/tracker"
)

const (
	envNoColor    = "NO_COLOR"
	envPSPNoColor = "PSP_NO_COLOR"
)

func beforeAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	config.InitLogging()

	ui.DarkTheme = cfg.DarkTheme

	if _, ok := os.LookupEnv(envNoColor); ok {
		disableStyling()
	}

	if _, ok := os.LookupEnv(envPSPNoColor); ok {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

// projectPath resolves the project file for the invocation: the --file
// flag wins, then the most recently opened project, then a fresh file
// in the configured projects directory.
func projectPath(ctx *cli.Context, registry *store.Registry) string {
	if path := ctx.String("file"); path != "" {
		return path
	}

	if registry != nil {
		if ref, ok, err := registry.Last(); err == nil && ok {
			return ref.Path
		}
	}

	return tracker.DefaultProjectPath(config.Get(ctx).ProjectsDir)
}

// loadProject opens the project document for the read-only reporting
// commands. The registry is consulted but not modified.
func loadProject(ctx *cli.Context) (*store.Store, *models.Document, error) {
	registry, err := store.OpenRegistry(config.RegistryFilePath())
	if err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = registry.Close()
	}()

	st := store.New(projectPath(ctx, registry))
	doc := st.Load()

	return st, doc, nil
}

// defaultAction opens the project and runs the interactive tracker.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	registry, err := store.OpenRegistry(config.RegistryFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = registry.Close()
	}()

	st := store.New(projectPath(ctx, registry))
	doc := st.Load()

	// A file with no project metadata is a brand new project: ask for
	// its details before tracking starts.
	if doc.ProjectName == "" {
		printInstructions()

		details, err := tracker.CollectProjectDetails()
		if err != nil {
			return err
		}

		doc.ProjectName = details.Name
		doc.StartDate = details.StartDate
		doc.StudentName = details.Student
		doc.InstructorName = details.Instructor

		if err := st.Save(doc); err != nil {
			return err
		}
	}

	if err := registry.Touch(store.ProjectRef{
		Path: st.Path(),
		Name: doc.ProjectName,
	}); err != nil {
		slog.Warn("unable to update project registry", slog.Any("error", err))
	}

	slog.Info("tracking project",
		slog.String("project", doc.ProjectName),
		slog.String("path", st.Path()),
	)

	_, err = tea.NewProgram(tracker.New(cfg, st, registry, doc)).Run()

	return err
}

func printInstructions() {
	pterm.Info.Println(`Registro de tiempos:
1. Cada proyecto se guarda en su propio archivo de datos.
2. Al crear un nuevo proyecto se solicitará el nombre, la fecha de inicio,
   el alumno y el instructor.
3. Al iniciar una actividad se solicitarán comentarios y el cronómetro
   comenzará a registrar el tiempo.
4. Si la actividad se pausa, el tiempo en pausa se sigue registrando.
5. Al parar la actividad se guarda un registro con fecha, horas, tiempos
   en pausa y sin pausa, actividad y comentarios.
6. Los defectos se registran mientras hay una actividad en curso.`)
}

func reportAction(ctx *cli.Context) error {
	_, doc, err := loadProject(ctx)
	if err != nil {
		return err
	}

	report.PrintLogs(doc.ActivityLogs, os.Stdout)

	return nil
}

func defectsAction(ctx *cli.Context) error {
	_, doc, err := loadProject(ctx)
	if err != nil {
		return err
	}

	report.PrintDefects(doc.Defects, os.Stdout)

	return nil
}

func statsAction(ctx *cli.Context) error {
	_, doc, err := loadProject(ctx)
	if err != nil {
		return err
	}

	report.PrintStats(ledger.New(doc).Snapshot(), os.Stdout)

	return nil
}

func exportAction(ctx *cli.Context) error {
	st, doc, err := loadProject(ctx)
	if err != nil {
		return err
	}

	outPath := ctx.String("output")
	if outPath == "" {
		outPath = strings.TrimSuffix(st.Path(), filepath.Ext(st.Path())) + ".pdf"
	}

	snap := ledger.New(doc).Snapshot()

	if err := report.ExportPDF(doc, snap, outPath); err != nil {
		return err
	}

	pterm.Success.Printfln("El PDF ha sido generado exitosamente: %s", outPath)

	return nil
}

func chartsAction(ctx *cli.Context) error {
	st, doc, err := loadProject(ctx)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(st.Path(), filepath.Ext(st.Path()))
	snap := ledger.New(doc).Snapshot()

	if err := report.RenderBarChart(snap, base+"_barras.png"); err != nil {
		return err
	}

	if err := report.RenderPieChart(snap, base+"_pastel.png"); err != nil {
		return err
	}

	pterm.Success.Printfln("Gráficas generadas: %s_barras.png, %s_pastel.png", base, base)

	return nil
}

func projectsAction(ctx *cli.Context) error {
	registry, err := store.OpenRegistry(config.RegistryFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = registry.Close()
	}()

	refs, err := registry.List()
	if err != nil {
		return err
	}

	if len(refs) == 0 {
		pterm.Info.Println("No hay proyectos registrados todavía")
		return nil
	}

	rows := [][]string{{"Proyecto", "Archivo", "Último uso"}}

	for _, ref := range refs {
		rows = append(rows, []string{
			ref.Name,
			ref.Path,
			ref.LastOpened.Format("02/01/2006 15:04"),
		})
	}

	ui.PrintTable(rows, os.Stdout)

	return nil
}

func editConfigAction(_ *cli.Context) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, config.ConfigFilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("unable to open %s with %s: %w", config.ConfigFilePath(), editor, err)
	}

	return nil
}
