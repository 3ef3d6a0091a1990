// Package store owns the persisted project document and the registry
// of recently opened projects.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/UzielLH/PSP/internal/models"
	"github.com/UzielLH/PSP/session"
)

// Store reads and writes one project document at a user-chosen path.
// Saves are always a full rewrite of the file.
type Store struct {
	path string
}

// New returns a store bound to the given project file path. The file
// does not need to exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the project file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the project document. A missing or malformed file is not
// an error: it yields an empty document, the starting point for a new
// project.
func (s *Store) Load() *models.Document {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("reading project file failed, starting empty",
				slog.String("path", s.path),
				slog.Any("error", err),
			)
		}

		return models.NewDocument()
	}

	doc := models.NewDocument()

	if err := json.Unmarshal(b, doc); err != nil {
		slog.Warn("project file is malformed, starting empty",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return models.NewDocument()
	}

	doc.Normalise()

	return doc
}

// Save rewrites the project file with the full document. On failure
// the in-memory document is untouched so the operation can be retried.
func (s *Store) Save(doc *models.Document) error {
	b, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return errEncodeProject.Wrap(err)
	}

	b = append(b, '\n')

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return errWriteProject.Fmt(s.path).Wrap(err)
	}

	return nil
}

// Switch rebinds the store to a different project file and loads its
// document. It refuses while a session is in progress: an in-flight
// session's accounting would be lost.
func (s *Store) Switch(newPath string, status session.Status) (*models.Document, error) {
	if status != session.Idle {
		return nil, errSessionActive
	}

	s.path = newPath

	return s.Load(), nil
}
