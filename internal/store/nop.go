package store

import "github.com/amishk599/vacancies/internal/model"

// NopStore is a no-op store used in dry-run mode. Adds succeed without
// writing anything, so a dry run never touches the saved list.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Add(v model.Vacancy) (bool, error) { return true, nil }
func (s *NopStore) Delete(ref any) (int, error)       { return 0, nil }
func (s *NopStore) All() ([]model.StoredVacancy, error) {
	return []model.StoredVacancy{}, nil
}
func (s *NopStore) BySalaryAtLeast(min float64) ([]model.Vacancy, error) {
	return []model.Vacancy{}, nil
}
