// Package storage reads and writes the address book and user settings as a YAML file.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"mtm/internal/data/embedded"
	"mtm/internal/logger"
	"mtm/internal/model"
)

// Snapshot is everything persisted between runs.
type Snapshot struct {
	Settings    model.Settings     `yaml:"settings"`
	AddressBook *model.AddressBook `yaml:"address_book"`
}

// Store persists snapshots to a single file.
type Store interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
	Path() string
}

// FileStore is a Store backed by a YAML file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store for the file at path. The file is not touched until Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the data file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the snapshot. A missing file yields an empty address book and default settings.
func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("Data file not found, starting empty", "path", s.path)
		return Snapshot{AddressBook: model.NewAddressBook()}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}

	snap, err := decode(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("invalid data file %s: %w", s.path, err)
	}

	logger.Debug("Loaded data file", "path", s.path, "persons", len(snap.AddressBook.Persons), "groups", len(snap.AddressBook.Groups))
	return snap, nil
}

// Save writes the snapshot through a temporary file and a rename, creating
// parent directories as needed.
func (s *FileStore) Save(snap Snapshot) error {
	if snap.AddressBook == nil {
		snap.AddressBook = model.NewAddressBook()
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode address book: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Sample returns the built-in sample address book with default settings.
func Sample() (Snapshot, error) {
	snap, err := decode(embedded.SampleAddressBookData)
	if err != nil {
		return Snapshot{}, fmt.Errorf("invalid sample data: %w", err)
	}
	return snap, nil
}

func decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if snap.AddressBook == nil {
		snap.AddressBook = model.NewAddressBook()
	}
	if err := validate(snap.AddressBook); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// validate rejects files a user has edited into an inconsistent state.
func validate(ab *model.AddressBook) error {
	ids := make(map[string]bool, len(ab.Persons))
	seen := model.NewAddressBook()
	for _, p := range ab.Persons {
		if p.ID == "" {
			return fmt.Errorf("person %q has no id", p.Name)
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate person id %s", p.ID)
		}
		ids[p.ID] = true
		if err := seen.AddPerson(p); err != nil {
			return fmt.Errorf("person %q: %w", p.Name, err)
		}
	}
	for _, g := range ab.Groups {
		if err := seen.AddGroup(g.Name); err != nil {
			return fmt.Errorf("group %q: %w", g.Name, err)
		}
		for _, id := range g.Members {
			if !ids[id] {
				return fmt.Errorf("group %q references unknown person %s", g.Name, id)
			}
		}
	}
	return nil
}
