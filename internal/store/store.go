package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/Neben5/GenerativePlayground/internal/core"
)

const ext = ".json"

// Store reads and writes snapshot records as JSON files under a single
// directory. Preset names map to file names, so they must not contain
// path separators.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily on
// the first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file a preset name maps to.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+ext)
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return errors.Errorf("[validName] invalid preset name: %q", name)
	}
	return nil
}

// Save writes a snapshot record under the given preset name, creating the
// store directory if needed. An existing preset is overwritten.
func (s *Store) Save(name string, snap core.Snapshot) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "[Save] failed to create directory: %+v", s.dir)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "[Save] failed to marshal preset: %+v", name)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return errors.Wrapf(err, "[Save] failed to write file: %+v", s.Path(name))
	}
	return nil
}

// Load reads the snapshot record saved under the given preset name.
func (s *Store) Load(name string) (core.Snapshot, error) {
	var snap core.Snapshot
	if err := validName(name); err != nil {
		return snap, err
	}
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return snap, errors.Wrapf(err, "[Load] failed to read file: %+v", s.Path(name))
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", s.Path(name))
	}
	return snap, nil
}

// List returns the saved preset names in sorted order. A store whose
// directory does not exist yet lists as empty.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "[List] failed to read directory: %+v", s.dir)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a saved preset.
func (s *Store) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(s.Path(name)); err != nil {
		return errors.Wrapf(err, "[Delete] failed to remove file: %+v", s.Path(name))
	}
	return nil
}
