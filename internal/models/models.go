// Package models defines the persisted representation of a PSP project.
package models

// LogEntry is one committed activity session. Entries are append-only:
// once recorded they are never edited or removed. The JSON keys are the
// on-disk contract and must not change.
type LogEntry struct {
	StartDate     string `json:"fecha_inicio"`
	StartTime     string `json:"hora_inicio"`
	EndTime       string `json:"hora_fin"`
	PausedMinutes int    `json:"tiempo_en_pausa_min"`
	ActiveMinutes int    `json:"tiempo_no_pausado_min"`
	Activity      string `json:"actividad"`
	Comments      string `json:"comentarios"`
}

// DefectEntry is one logged quality defect. Numbers are assigned
// sequentially per project and never reused.
type DefectEntry struct {
	Date          string `json:"fecha"`
	Number        int    `json:"numero"`
	Type          int    `json:"tipo"`
	FoundIn       string `json:"encontrado"`
	RemovedIn     string `json:"removido"`
	RepairMinutes int    `json:"tiempo_compostura"`
	Fixed         bool   `json:"defecto_arreglado"`
	Description   string `json:"descripcion"`
}

// Document is the complete on-disk state of one project: metadata, the
// per-activity aggregate, the global paused-minutes counter, and both
// ledgers. Every save is a full rewrite of this document.
type Document struct {
	ProjectName        string         `json:"project_name"`
	StartDate          string         `json:"start_date"` // dd/mm/yyyy
	StudentName        string         `json:"student_name"`
	InstructorName     string         `json:"instructor_name"`
	Activities         map[string]int `json:"activities"`
	TotalPausedMinutes int            `json:"total_paused_minutes"`
	ActivityLogs       []LogEntry     `json:"activity_logs"`
	Defects            []DefectEntry  `json:"defects"`
}

// NewDocument returns an empty document with all collections
// initialised. A missing or corrupt project file degrades to this.
func NewDocument() *Document {
	return &Document{
		Activities:   make(map[string]int),
		ActivityLogs: []LogEntry{},
		Defects:      []DefectEntry{},
	}
}

// Normalise fills in nil collections on documents decoded from older
// or hand-edited files so the rest of the program never nil-checks.
func (d *Document) Normalise() {
	if d.Activities == nil {
		d.Activities = make(map[string]int)
	}

	if d.ActivityLogs == nil {
		d.ActivityLogs = []LogEntry{}
	}

	if d.Defects == nil {
		d.Defects = []DefectEntry{}
	}
}

// TotalActiveMinutes sums the per-activity aggregate.
func (d *Document) TotalActiveMinutes() int {
	var total int
	for _, mins := range d.Activities {
		total += mins
	}

	return total
}
