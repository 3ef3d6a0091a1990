package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

const projectsBucket = "projects"

// ProjectRef identifies a project file that was opened at some point,
// so the change-project flow can offer it again.
type ProjectRef struct {
	Path       string    `json:"path"`
	Name       string    `json:"name"`
	LastOpened time.Time `json:"last_opened"`
}

// Registry is a BoltDB-backed record of recently opened projects. It
// lives in the application data directory, not inside any project.
type Registry struct {
	db *bolt.DB
}

// OpenRegistry opens or creates the registry database.
func OpenRegistry(path string) (*Registry, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(path, fileMode, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) || errors.Is(err, bolt.ErrTimeout) {
			return nil, errOpenRegistry
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(projectsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Registry{db: db}, nil
}

// Touch records that the project at ref.Path was opened now. An
// existing record for the same path is overwritten.
func (r *Registry) Touch(ref ProjectRef) error {
	ref.LastOpened = time.Now()

	value, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(projectsBucket)).Put([]byte(ref.Path), value)
	})
}

// List returns all known projects, most recently opened first.
func (r *Registry) List() ([]ProjectRef, error) {
	var refs []ProjectRef

	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(projectsBucket)).ForEach(func(_, v []byte) error {
			var ref ProjectRef
			if err := json.Unmarshal(v, &ref); err != nil {
				return err
			}

			refs = append(refs, ref)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].LastOpened.After(refs[j].LastOpened)
	})

	return refs, nil
}

// Last returns the most recently opened project, if any.
func (r *Registry) Last() (ProjectRef, bool, error) {
	refs, err := r.List()
	if err != nil || len(refs) == 0 {
		return ProjectRef{}, false, err
	}

	return refs[0], true, nil
}

// Close releases the registry database.
func (r *Registry) Close() error {
	return r.db.Close()
}
