// Package rank orders vacancies for display.
package rank

import (
	"slices"

	"github.com/amishk599/vacancies/internal/model"
)

// SortBySalaryDescending returns a copy of vs ordered by salary, highest
// first. The sort key is the salary floor (the "от" amount), falling back to
// the ceiling for "до"-only salaries. Vacancies without any salary go last.
// Ties keep their input order.
func SortBySalaryDescending(vs []model.Vacancy) []model.Vacancy {
	sorted := slices.Clone(vs)
	slices.SortStableFunc(sorted, func(a, b model.Vacancy) int {
		sa, okA := salaryKey(a)
		sb, okB := salaryKey(b)
		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		return 0
	})
	return sorted
}

func salaryKey(v model.Vacancy) (float64, bool) {
	if f, ok := v.SalaryFloor(); ok {
		return f, true
	}
	if v.SalaryTo != nil {
		return *v.SalaryTo, true
	}
	return 0, false
}

// TopN returns the first n vacancies of vs. n larger than len(vs) returns
// all of them; n <= 0 returns none.
func TopN(vs []model.Vacancy, n int) []model.Vacancy {
	if n <= 0 {
		return []model.Vacancy{}
	}
	if n > len(vs) {
		n = len(vs)
	}
	return vs[:n]
}
