// Package store persists the active presentation session as a JSON record
// in the repository's git directory. One session exists per repository;
// saving overwrites any prior record.
//
// There is no locking: two invocations racing on the same repository can
// interleave their read-modify-write and clobber each other's index. A
// presentation is driven by one presenter at a time, so this is a known
// limitation rather than a supported mode.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slidekit/git-slides/internal/session"
)

// sessionFile is the record name inside the git directory, so the session
// is scoped to the repository and vanishes with a re-clone.
const sessionFile = "git-slides.json"

// FileStore reads and writes the session record for one repository.
type FileStore struct {
	gitDir string
}

// New creates a store rooted at the repository's git directory.
func New(gitDir string) *FileStore {
	return &FileStore{gitDir: gitDir}
}

// Path returns the location of the session record.
func (s *FileStore) Path() string {
	return filepath.Join(s.gitDir, sessionFile)
}

// Load reads the persisted session. A missing record returns (nil, nil).
func (s *FileStore) Load() (*session.Session, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session record: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session record %s: %w", s.Path(), err)
	}
	return &sess, nil
}

// Save writes the session, overwriting any prior record.
func (s *FileStore) Save(sess *session.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Clear deletes the session record. Clearing an absent record is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}
