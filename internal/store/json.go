package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/amishk599/vacancies/internal/model"
)

// DefaultJSONPath is the document written when no path is configured.
const DefaultJSONPath = "vacancies.json"

// Ensure JSONStore implements model.VacancyStore.
var _ model.VacancyStore = (*JSONStore)(nil)

// JSONStore keeps saved vacancies in a single indented JSON array on disk.
// The document is read in full before every mutation and written in full
// after it; there is no locking, so the last writer wins.
type JSONStore struct {
	path      string
	vacancies []model.StoredVacancy
	logger    *slog.Logger
}

// NewJSONStore opens the document at path. A missing or empty file is an
// empty store, not an error.
func NewJSONStore(path string, logger *slog.Logger) (*JSONStore, error) {
	if path == "" {
		path = DefaultJSONPath
	}
	s := &JSONStore{path: path, logger: logger}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing document path.
func (s *JSONStore) Path() string { return s.path }

// Load reads the backing document into memory.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.vacancies = []model.StoredVacancy{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.vacancies = []model.StoredVacancy{}
		return nil
	}

	var vacancies []model.StoredVacancy
	if err := json.Unmarshal(data, &vacancies); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if vacancies == nil {
		vacancies = []model.StoredVacancy{}
	}
	s.vacancies = vacancies
	return nil
}

// Add appends the projection of v unless a record with the same title and
// link is already stored. The document is re-sorted by title and rewritten.
// It reports whether the record was added.
func (s *JSONStore) Add(v model.Vacancy) (bool, error) {
	if err := s.Load(); err != nil {
		return false, err
	}

	key := v.NaturalKey()
	for _, existing := range s.vacancies {
		if existing.NaturalKey() == key {
			s.logger.Info("vacancy already saved, skipping", "title", key.Title, "link", key.Link)
			return false, nil
		}
	}

	s.vacancies = append(s.vacancies, v.Project())
	sortByTitle(s.vacancies)

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes every record whose title and link match ref exactly and
// returns how many were removed. ref must carry a natural key: a
// model.Keyer or a map with "title" and "link" entries. Anything else is
// rejected with ErrMalformedRef and the document is left alone.
func (s *JSONStore) Delete(ref any) (int, error) {
	key, ok := keyOf(ref)
	if !ok {
		s.logger.Warn("refusing to delete malformed vacancy reference", "ref_type", fmt.Sprintf("%T", ref))
		return 0, ErrMalformedRef
	}

	if err := s.Load(); err != nil {
		return 0, err
	}

	before := len(s.vacancies)
	s.vacancies = slices.DeleteFunc(s.vacancies, func(sv model.StoredVacancy) bool {
		return sv.NaturalKey() == key
	})
	removed := before - len(s.vacancies)
	if removed == 0 {
		return 0, nil
	}

	if err := s.save(); err != nil {
		return 0, err
	}
	return removed, nil
}

// All returns every stored record in document order.
func (s *JSONStore) All() ([]model.StoredVacancy, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	return slices.Clone(s.vacancies), nil
}

// BySalaryAtLeast returns the stored vacancies whose salary floor is at
// least min. An unparseable salary in the document aborts the query.
func (s *JSONStore) BySalaryAtLeast(min float64) ([]model.Vacancy, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	return bySalaryAtLeast(s.vacancies, min)
}

func (s *JSONStore) save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.vacancies); err != nil {
		return fmt.Errorf("encoding vacancies: %w", err)
	}
	// Write beside the document and rename so readers never see a partial file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	s.logger.Debug("saved vacancies", "path", s.path, "count", len(s.vacancies))
	return nil
}

func sortByTitle(vs []model.StoredVacancy) {
	slices.SortStableFunc(vs, func(a, b model.StoredVacancy) int {
		return strings.Compare(a.Title, b.Title)
	})
}
