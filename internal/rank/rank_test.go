package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amishk599/vacancies/internal/model"
)

func withSalary(title string, from, to float64) model.Vacancy {
	v := model.Vacancy{Title: title}
	if from > 0 {
		v.SalaryFrom = &from
	}
	if to > 0 {
		v.SalaryTo = &to
	}
	return v
}

func titles(vs []model.Vacancy) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Title
	}
	return out
}

func TestSortBySalaryDescending_Numeric(t *testing.T) {
	vs := []model.Vacancy{
		withSalary("nine", 9000, 0),
		withSalary("eighty", 80000, 0),
		withSalary("none", 0, 0),
		withSalary("upto", 0, 50000),
		{Title: "payment", Extra: model.Payload{"payment_from": 60000.0}},
	}

	got := SortBySalaryDescending(vs)

	assert.Equal(t, []string{"eighty", "payment", "upto", "nine", "none"}, titles(got))
	// Input is left untouched.
	assert.Equal(t, "nine", vs[0].Title)
}

func TestSortBySalaryDescending_StableTies(t *testing.T) {
	vs := []model.Vacancy{
		withSalary("a", 100, 0),
		withSalary("b", 100, 200),
		{Title: "c"},
		{Title: "d"},
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, titles(SortBySalaryDescending(vs)))
}

func TestTopN(t *testing.T) {
	vs := []model.Vacancy{{Title: "1"}, {Title: "2"}, {Title: "3"}, {Title: "4"}, {Title: "5"}}

	assert.Equal(t, []string{"1", "2", "3"}, titles(TopN(vs, 3)))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, titles(TopN(vs, 10)))
	assert.Empty(t, TopN(vs, 0))
	assert.Empty(t, TopN(vs, -1))
	assert.Empty(t, TopN(nil, 3))
}
