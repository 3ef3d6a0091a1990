package tracker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/UzielLH/PSP/internal/activity"
	"github.com/UzielLH/PSP/internal/timeutil"
)

// ProjectDetails holds the answers to the new-project form.
type ProjectDetails struct {
	Name       string
	StartDate  string
	Student    string
	Instructor string
}

func activityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(activity.Catalog))
	for _, name := range activity.Catalog {
		opts = append(opts, huh.NewOption(name, name))
	}

	return opts
}

// startForm selects the activity to time and asks for comments. The
// comments prompt is mandatory even though the answer may be empty.
func (t *Tracker) startForm() *huh.Form {
	t.formActivity = ""
	t.formComments = ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Seleccione una actividad").
				Options(activityOptions()...).
				Value(&t.formActivity),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Comentarios para la actividad").
				Value(&t.formComments),
		),
	)
}

// defectForm collects the defect details while its repair timer runs.
func (t *Tracker) defectForm() *huh.Form {
	t.defectType = 0
	t.defectFixed = true
	t.defectDesc = ""

	typeOpts := make([]huh.Option[int], 0, len(activity.DefectTypes))
	for _, code := range activity.DefectTypeCodes() {
		typeOpts = append(typeOpts, huh.NewOption(
			fmt.Sprintf("%d - %s", code, activity.DefectTypes[code]),
			code,
		))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Tipo de defecto").
				Options(typeOpts...).
				Value(&t.defectType),
			huh.NewConfirm().
				Title("¿Defecto arreglado?").
				Affirmative("Sí").
				Negative("No").
				Value(&t.defectFixed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Descripción del defecto").
				Validate(requireText("la descripción")).
				Value(&t.defectDesc),
		),
	)
}

// switchForm asks for the project file to change to, suggesting
// recently opened projects from the registry.
func (t *Tracker) switchForm() *huh.Form {
	t.switchPath = ""

	var suggestions []string

	if t.registry != nil {
		if refs, err := t.registry.List(); err == nil {
			for _, ref := range refs {
				suggestions = append(suggestions, ref.Path)
			}
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Archivo del proyecto (.txt)").
				Suggestions(suggestions).
				Validate(requireText("la ruta del archivo")).
				Value(&t.switchPath),
		),
	)
}

// ProjectForm collects the metadata for a brand new project. It is
// also used by the command layer before the tracker starts.
func ProjectForm(details *ProjectDetails) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre del proyecto").
				Validate(requireText("el nombre del proyecto")).
				Value(&details.Name),
			huh.NewInput().
				Title("Fecha de inicio (dd/mm/aaaa)").
				Validate(func(s string) error {
					_, err := timeutil.ParseDate(s)
					return err
				}).
				Value(&details.StartDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre del alumno").
				Value(&details.Student),
			huh.NewInput().
				Title("Nombre del instructor").
				Value(&details.Instructor),
		),
	)
}

func requireText(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s no puede estar vacío", what)
		}

		return nil
	}
}

// CollectProjectDetails runs the new-project form outside the tracker
// loop. Used on first open of a file that has no project yet.
func CollectProjectDetails() (ProjectDetails, error) {
	var details ProjectDetails

	if err := ProjectForm(&details).Run(); err != nil {
		return details, err
	}

	details.Name = strings.TrimSpace(details.Name)

	return details, nil
}

// DefaultProjectPath builds the project file path for a fresh start
// when none was given on the command line.
func DefaultProjectPath(projectsDir string) string {
	return filepath.Join(projectsDir, "proyecto.txt")
}
