package tracker

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"

	"github.com/UzielLH/PSP/session"
	"github.com/UzielLH/PSP/store"
)

type keymap struct {
	start   key.Binding
	pause   key.Binding
	stop    key.Binding
	defect  key.Binding
	project key.Binding
	ack     key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "iniciar"),
	),
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pausar/reanudar"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "parar"),
	),
	defect: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "registrar defecto"),
	),
	project: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cambiar proyecto"),
	),
	ack: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "silenciar alerta"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "salir"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.start, k.pause, k.stop, k.defect, k.project, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (t *Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height

		return t, nil

	case tickMsg:
		return t.handleTick()

	case tea.KeyMsg:
		if t.mode != modeTracking {
			return t.updateForm(msg)
		}

		return t.handleKey(msg)
	}

	if t.mode != modeTracking {
		return t.updateForm(msg)
	}

	return t, nil
}

// handleTick refreshes the displayed durations and runs the one-shot
// threshold check. The tick only performs read-only queries on the
// session machine besides that check.
func (t *Tracker) handleTick() (tea.Model, tea.Cmd) {
	if t.sess.Status() == session.Running {
		t.lastElapsed = t.sess.Elapsed()
	}

	if t.sess.ThresholdCheck() {
		t.alert.Start()
		t.notify(
			"Registro de Tiempo",
			"La actividad '"+t.sess.Activity()+"' ha durado "+
				t.cfg.Threshold().String()+" o más.",
		)

		slog.Info("long session threshold crossed",
			slog.String("activity", t.sess.Activity()),
		)
	}

	return t, tick()
}

func (t *Tracker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.alert.Ringing() && key.Matches(msg, t.keymap.ack) {
		t.alert.Stop()
		return t, nil
	}

	switch {
	case key.Matches(msg, t.keymap.quit):
		if t.sess.Active() && msg.String() != "ctrl+c" {
			t.status = "Pare la actividad antes de salir"
			return t, nil
		}

		t.quitting = true
		t.alert.Stop()

		return t, tea.Quit

	case key.Matches(msg, t.keymap.start):
		if t.sess.Active() {
			t.status = "Ya hay una actividad en curso"
			return t, nil
		}

		t.mode = modeStartForm
		t.form = t.startForm()

		return t, t.form.Init()

	case key.Matches(msg, t.keymap.pause):
		return t.togglePause()

	case key.Matches(msg, t.keymap.stop):
		return t.stopSession()

	case key.Matches(msg, t.keymap.defect):
		if err := t.defects.Open(t.sess.Activity(), ""); err != nil {
			t.status = err.Error()
			return t, nil
		}

		t.mode = modeDefectForm
		t.form = t.defectForm()

		return t, t.form.Init()

	case key.Matches(msg, t.keymap.project):
		if t.sess.Active() {
			t.status = "No se puede cambiar de proyecto mientras se registra una actividad"
			return t, nil
		}

		t.mode = modeSwitchForm
		t.form = t.switchForm()

		return t, t.form.Init()
	}

	return t, nil
}

func (t *Tracker) togglePause() (tea.Model, tea.Cmd) {
	switch t.sess.Status() {
	case session.Running:
		if err := t.sess.Pause(); err != nil {
			t.status = err.Error()
		} else {
			t.status = ""
		}
	case session.Paused:
		if err := t.sess.Resume(); err != nil {
			t.status = err.Error()
		} else {
			t.status = ""
		}
	default:
		t.status = "No hay actividad en curso"
	}

	return t, nil
}

func (t *Tracker) stopSession() (tea.Model, tea.Cmd) {
	if !t.sess.Active() {
		t.status = "No hay actividad en curso"
		return t, nil
	}

	if t.defects.Opened() {
		t.defects.Discard()
	}

	entry, longSession, err := t.sess.Stop()
	if err != nil {
		t.status = err.Error()
	} else {
		t.status = "Registrado: " + entry.Activity + " (" +
			strconv.Itoa(entry.ActiveMinutes) + " min efectivos, " +
			strconv.Itoa(entry.PausedMinutes) + " min en pausa)"
	}

	t.lastElapsed = 0
	t.alert.Stop()

	if longSession {
		t.notify(
			"Registro de Tiempo",
			"La actividad '"+entry.Activity+"' ha durado "+
				t.cfg.Threshold().String()+" o más.",
		)
	}

	slog.Info("session committed",
		slog.String("activity", entry.Activity),
		slog.Int("active_minutes", entry.ActiveMinutes),
		slog.Int("paused_minutes", entry.PausedMinutes),
	)

	return t, nil
}

// updateForm relays messages to the open huh form and applies the
// answers once it completes.
func (t *Tracker) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		if t.mode == modeDefectForm {
			t.defects.Discard()
		}

		t.mode = modeTracking
		t.form = nil

		return t, nil
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State != huh.StateCompleted {
		return t, cmd
	}

	mode := t.mode
	t.mode = modeTracking
	t.form = nil

	switch mode {
	case modeStartForm:
		if err := t.sess.Start(t.formActivity, t.formComments); err != nil {
			t.status = err.Error()
		} else {
			t.status = ""
		}

	case modeDefectForm:
		entry, err := t.defects.Close(t.defectType, t.defectFixed, t.defectDesc)
		if err != nil {
			t.status = err.Error()
		} else {
			t.status = "Defecto #" + strconv.Itoa(entry.Number) + " registrado"
		}

	case modeSwitchForm:
		return t.switchProject()

	case modeProjectForm:
		t.applyProjectDetails()
	}

	return t, nil
}

func (t *Tracker) switchProject() (tea.Model, tea.Cmd) {
	doc, err := t.projects.Switch(t.switchPath, t.sess.Status())
	if err != nil {
		t.status = err.Error()
		return t, nil
	}

	t.rebind(doc)

	if t.registry != nil {
		_ = t.registry.Touch(store.ProjectRef{
			Path: t.projects.Path(),
			Name: doc.ProjectName,
		})
	}

	if doc.ProjectName == "" {
		t.project = ProjectDetails{}
		t.mode = modeProjectForm
		t.form = ProjectForm(&t.project)

		return t, t.form.Init()
	}

	t.status = "Se ha cargado el proyecto: " + doc.ProjectName

	return t, nil
}

// applyProjectDetails stores a new project's metadata and saves it.
func (t *Tracker) applyProjectDetails() {
	t.doc.ProjectName = t.project.Name
	t.doc.StartDate = t.project.StartDate
	t.doc.StudentName = t.project.Student
	t.doc.InstructorName = t.project.Instructor

	if err := t.projects.Save(t.doc); err != nil {
		t.status = err.Error()
		return
	}

	if t.registry != nil {
		_ = t.registry.Touch(store.ProjectRef{
			Path: t.projects.Path(),
			Name: t.doc.ProjectName,
		})
	}

	t.status = "Se ha creado el proyecto: " + t.doc.ProjectName
}

func (t *Tracker) notify(title, message string) {
	if !t.cfg.Notify {
		return
	}

	if err := beeep.Notify(title, message, ""); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}
