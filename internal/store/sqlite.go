package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/amishk599/vacancies/internal/model"
)

// Ensure SQLiteStore implements model.VacancyStore.
var _ model.VacancyStore = (*SQLiteStore)(nil)

// SQLiteStore keeps saved vacancies in a SQLite table keyed by (title, link).
// It is the alternative to JSONStore selected with storage.backend: sqlite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// vacancies table exists.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS vacancies (
		title        TEXT NOT NULL,
		link         TEXT NOT NULL,
		salary       TEXT NOT NULL,
		requirements TEXT NOT NULL,
		city         TEXT NOT NULL,
		currency     TEXT NOT NULL,
		employer     TEXT NOT NULL,
		saved_at     DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (title, link)
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating vacancies table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Add inserts the projection of v. A record with the same title and link is
// left as is and Add reports false.
func (s *SQLiteStore) Add(v model.Vacancy) (bool, error) {
	sv := v.Project()
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO vacancies (title, link, salary, requirements, city, currency, employer)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sv.Title, sv.Link, sv.Salary, sv.Requirements, sv.City, sv.Currency, sv.Employer,
	)
	if err != nil {
		return false, fmt.Errorf("saving vacancy %q: %w", sv.Title, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("saving vacancy %q: %w", sv.Title, err)
	}
	if n == 0 {
		s.logger.Info("vacancy already saved, skipping", "title", sv.Title, "link", sv.Link)
		return false, nil
	}
	return true, nil
}

// Delete removes the records matching ref's title and link.
func (s *SQLiteStore) Delete(ref any) (int, error) {
	key, ok := keyOf(ref)
	if !ok {
		s.logger.Warn("refusing to delete malformed vacancy reference", "ref_type", fmt.Sprintf("%T", ref))
		return 0, ErrMalformedRef
	}
	res, err := s.db.Exec("DELETE FROM vacancies WHERE title = ? AND link = ?", key.Title, key.Link)
	if err != nil {
		return 0, fmt.Errorf("deleting vacancy %q: %w", key.Title, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting vacancy %q: %w", key.Title, err)
	}
	return int(n), nil
}

// All returns every saved vacancy ordered by title.
func (s *SQLiteStore) All() ([]model.StoredVacancy, error) {
	rows, err := s.db.Query(
		`SELECT title, link, salary, requirements, city, currency, employer
		 FROM vacancies ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing vacancies: %w", err)
	}
	defer rows.Close()

	vacancies := []model.StoredVacancy{}
	for rows.Next() {
		var sv model.StoredVacancy
		if err := rows.Scan(&sv.Title, &sv.Link, &sv.Salary, &sv.Requirements, &sv.City, &sv.Currency, &sv.Employer); err != nil {
			return nil, fmt.Errorf("scanning vacancy: %w", err)
		}
		vacancies = append(vacancies, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing vacancies: %w", err)
	}
	return vacancies, nil
}

// BySalaryAtLeast returns the saved vacancies whose salary floor is at least min.
func (s *SQLiteStore) BySalaryAtLeast(min float64) ([]model.Vacancy, error) {
	stored, err := s.All()
	if err != nil {
		return nil, err
	}
	return bySalaryAtLeast(stored, min)
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
