package tracker

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/UzielLH/PSP/internal/timeutil"
	"github.com/UzielLH/PSP/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Width(22)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	activityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	statusStyle = lipgloss.NewStyle().
			Faint(true)
)

func (t *Tracker) View() string {
	if t.quitting {
		return ""
	}

	if t.mode != modeTracking && t.form != nil {
		return t.form.View()
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Proyecto: "+t.doc.ProjectName) + "\n\n")

	now := time.Now()

	s.WriteString(labelStyle.Render("Hora Actual"))
	s.WriteString(clockStyle.Render(now.Format(timeutil.ClockFormat)) + "\n")

	s.WriteString(labelStyle.Render("Tiempo de Actividad"))
	s.WriteString(elapsedStyle.Render(timeutil.FormatDuration(t.displayElapsed())) + "\n")

	s.WriteString(labelStyle.Render("Tiempo en Pausa"))
	s.WriteString(pausedStyle.Render(timeutil.FormatDuration(t.displayPaused())) + "\n\n")

	switch t.sess.Status() {
	case session.Running:
		s.WriteString(activityStyle.Render("Actividad Actual: "+t.sess.Activity()) + "\n")
	case session.Paused:
		s.WriteString(activityStyle.Render("Actividad Actual: "+t.sess.Activity()) +
			pausedStyle.Render("  [En Pausa]") + "\n")
	default:
		s.WriteString(statusStyle.Render("Sin actividad en curso") + "\n")
	}

	if t.defects.Opened() {
		s.WriteString(labelStyle.Render("Compostura de defecto"))
		s.WriteString(timeutil.FormatDuration(t.defects.RepairElapsed()) + "\n")
	}

	if t.alert.Ringing() {
		s.WriteString("\n" + alertStyle.Render(
			"⏰ La actividad ha durado "+t.cfg.Threshold().String()+
				" o más. Presione ENTER para silenciar.") + "\n")
	}

	if t.status != "" {
		s.WriteString("\n" + statusStyle.Render(t.status) + "\n")
	}

	s.WriteString("\n" + t.help.View(t.keymap))

	return s.String()
}

// displayElapsed freezes the activity time at its last running value
// while the session is paused.
func (t *Tracker) displayElapsed() time.Duration {
	if t.sess.Status() == session.Running {
		return t.sess.Elapsed()
	}

	return t.lastElapsed
}

// displayPaused shows the live paused total during a pause and the
// accumulated total of completed pauses while running.
func (t *Tracker) displayPaused() time.Duration {
	switch t.sess.Status() {
	case session.Paused:
		return t.sess.PausedElapsed()
	case session.Running:
		return t.sess.AccumulatedPause()
	default:
		return 0
	}
}
