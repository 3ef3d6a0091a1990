// Package tracker is the interactive terminal surface for recording
// activity time. It drives the session state machine with a once-per
// second tick and funnels every mutation through the core packages.
package tracker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/UzielLH/PSP/config"
	"github.com/UzielLH/PSP/defect"
	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/ledger"
	"github.com/UzielLH/PSP/session"
	"github.com/UzielLH/PSP/store"
)

type mode int

const (
	modeTracking mode = iota
	modeStartForm
	modeDefectForm
	modeSwitchForm
	modeProjectForm
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Tracker is the bubbletea model for the tracking screen.
type Tracker struct {
	cfg      *config.Config
	projects *store.Store
	registry *store.Registry

	doc     *models.Document
	ledg    *ledger.Ledger
	sess    *session.Machine
	defects *defect.Ledger

	alert  *Alerter
	help   help.Model
	keymap keymap

	mode mode
	form *huh.Form

	// form value holders
	formActivity string
	formComments string
	defectType   int
	defectFixed  bool
	defectDesc   string
	switchPath   string
	project      ProjectDetails

	// lastElapsed freezes the displayed activity time during pauses.
	lastElapsed time.Duration

	status   string
	width    int
	height   int
	quitting bool
}

// New assembles the tracker around an already loaded project.
func New(
	cfg *config.Config,
	projects *store.Store,
	registry *store.Registry,
	doc *models.Document,
) *Tracker {
	ledg := ledger.New(doc)
	sess := session.New(doc, ledg, projects)
	sess.Threshold = cfg.Threshold()

	return &Tracker{
		cfg:      cfg,
		projects: projects,
		registry: registry,
		doc:      doc,
		ledg:     ledg,
		sess:     sess,
		defects:  defect.New(doc, sess, projects),
		alert:    &Alerter{},
		help:     help.New(),
		keymap:   defaultKeymap,
	}
}

// rebind swaps in a freshly loaded document after a project switch.
// The session machine is idle by construction; a new one is built so
// every core component points at the new document.
func (t *Tracker) rebind(doc *models.Document) {
	t.doc = doc
	t.ledg = ledger.New(doc)
	t.sess = session.New(doc, t.ledg, t.projects)
	t.sess.Threshold = t.cfg.Threshold()
	t.defects = defect.New(doc, t.sess, t.projects)
	t.lastElapsed = 0
}

func (t *Tracker) Init() tea.Cmd {
	return tick()
}
