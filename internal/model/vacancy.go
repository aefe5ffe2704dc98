package model

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amishk599/vacancies/internal/htmltext"
)

// Placeholders rendered when a provider omits a field.
const (
	NoSalary       = "зарплата не указана"
	NoRequirements = "no data, check the posting link"
	NoCity         = "Не указан"
	NoCurrency     = "Не указана"
	NoEmployer     = "Не указан"
)

// Vacancy is the normalized representation of one posting from any provider.
type Vacancy struct {
	ID              string   // provider id, may be empty
	Title           string   // name (hh) or profession (superjob)
	Link            string   // alternate_url (hh) or link (superjob)
	SalaryFrom      *float64 // nil when the provider omits it
	SalaryTo        *float64
	RequirementsRaw string  // provider text, possibly HTML
	Source          string  // provider name, empty for reconstructed records
	Extra           Payload // full original payload
}

// Key is the natural key of a vacancy. Two records with the same title and
// link are the same posting.
type Key struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// NaturalKey lets a bare Key be passed wherever a Keyer is expected.
func (k Key) NaturalKey() Key { return k }

// Keyer is anything that carries a natural key.
type Keyer interface {
	NaturalKey() Key
}

// NewVacancy builds a Vacancy from a raw provider payload. Field names of
// both providers are tried in order; nothing is validated beyond presence.
func NewVacancy(p Payload) Vacancy {
	v := Vacancy{
		ID:              p.String("id"),
		Title:           p.String("name", "profession"),
		Link:            p.String("alternate_url", "link"),
		RequirementsRaw: p.String("snippet.requirement", "work"),
		Extra:           p,
	}
	if salary, ok := p.Map("salary"); ok {
		if f, ok := salary.Number("from"); ok {
			v.SalaryFrom = &f
		}
		if t, ok := salary.Number("to"); ok {
			v.SalaryTo = &t
		}
	}
	return v
}

// NaturalKey returns the (title, link) pair.
func (v Vacancy) NaturalKey() Key {
	return Key{Title: v.Title, Link: v.Link}
}

// SalaryText renders the salary range in the providers' own wording.
func (v Vacancy) SalaryText() string {
	switch {
	case v.SalaryFrom != nil && v.SalaryTo != nil:
		if *v.SalaryFrom == *v.SalaryTo {
			return "от " + formatNumber(*v.SalaryFrom)
		}
		return "от " + formatNumber(*v.SalaryFrom) + " до " + formatNumber(*v.SalaryTo)
	case v.SalaryFrom != nil:
		return "от " + formatNumber(*v.SalaryFrom)
	case v.SalaryTo != nil:
		return "до " + formatNumber(*v.SalaryTo)
	}
	if pf, ok := v.Extra.Number("payment_from"); ok {
		return "от " + formatNumber(pf)
	}
	return NoSalary
}

// SalaryFloor returns the number rendered after "от" in SalaryText.
func (v Vacancy) SalaryFloor() (float64, bool) {
	if v.SalaryFrom != nil {
		return *v.SalaryFrom, true
	}
	if v.SalaryTo != nil {
		return 0, false
	}
	return v.Extra.Number("payment_from")
}

// RequirementsText returns the requirements as plain text. A conversion
// failure is logged and rendered as the NoRequirements placeholder.
func (v Vacancy) RequirementsText() string {
	if v.RequirementsRaw == "" {
		return NoRequirements
	}
	text, err := htmltext.ToText(v.RequirementsRaw)
	if err != nil {
		slog.Warn("requirements to text", "title", v.Title, "error", err)
		return NoRequirements
	}
	if text == "" {
		return NoRequirements
	}
	return text
}

// City returns area.name (hh) or town.title (superjob).
func (v Vacancy) City() string {
	if c := v.Extra.String("area.name", "town.title"); c != "" {
		return c
	}
	return NoCity
}

// Currency returns salary.currency (hh) or the top-level currency (superjob).
func (v Vacancy) Currency() string {
	if c := v.Extra.String("salary.currency", "currency"); c != "" {
		return c
	}
	return NoCurrency
}

// Employer returns employer.name (hh) or firm_name (superjob).
func (v Vacancy) Employer() string {
	if e := v.Extra.String("employer.name", "firm_name"); e != "" {
		return e
	}
	return NoEmployer
}

// String is the text keyword filters search in.
func (v Vacancy) String() string {
	return strings.Join([]string{
		v.Title,
		v.Link,
		v.SalaryText(),
		v.RequirementsRaw,
		v.City(),
		v.Currency(),
		v.Employer(),
	}, "\n")
}

// Project returns the persisted projection of v.
func (v Vacancy) Project() StoredVacancy {
	return StoredVacancy{
		Title:        v.Title,
		Link:         v.Link,
		Salary:       v.SalaryText(),
		Requirements: v.RequirementsText(),
		City:         v.City(),
		Currency:     v.Currency(),
		Employer:     v.Employer(),
	}
}

// StoredVacancy is the subset of a Vacancy that is written to disk.
type StoredVacancy struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Salary       string `json:"salary"`
	Requirements string `json:"requirements"`
	City         string `json:"city"`
	Currency     string `json:"currency"`
	Employer     string `json:"employer"`
}

// NaturalKey returns the (title, link) pair.
func (s StoredVacancy) NaturalKey() Key {
	return Key{Title: s.Title, Link: s.Link}
}

// Vacancy rebuilds a Vacancy from the projection, parsing the salary text
// back into bounds. Salary text that is not a number is returned as an error.
func (s StoredVacancy) Vacancy() (Vacancy, error) {
	v := Vacancy{
		Title:           s.Title,
		Link:            s.Link,
		RequirementsRaw: s.Requirements,
		Extra: Payload{
			"area":     map[string]any{"name": s.City},
			"currency": s.Currency,
			"employer": map[string]any{"name": s.Employer},
		},
	}
	from, to, err := parseSalaryText(s.Salary)
	if err != nil {
		return Vacancy{}, fmt.Errorf("vacancy %q: %w", s.Title, err)
	}
	v.SalaryFrom, v.SalaryTo = from, to
	return v, nil
}

// parseSalaryText inverts SalaryText. The placeholder and empty text have no
// bounds; anything else must be "от X", "до Y", "от X до Y" or a bare number.
func parseSalaryText(text string) (from, to *float64, err error) {
	text = strings.TrimSpace(text)
	if text == "" || text == NoSalary {
		return nil, nil, nil
	}
	switch {
	case strings.HasPrefix(text, "от "):
		rest := strings.TrimPrefix(text, "от ")
		lo, hi, found := strings.Cut(rest, " до ")
		if from, err = parseAmount(lo); err != nil {
			return nil, nil, err
		}
		if found {
			if to, err = parseAmount(hi); err != nil {
				return nil, nil, err
			}
		}
		return from, to, nil
	case strings.HasPrefix(text, "до "):
		to, err = parseAmount(strings.TrimPrefix(text, "до "))
		return nil, to, err
	}
	from, err = parseAmount(text)
	return from, nil, err
}

// parseAmount parses a number with all whitespace removed ("80 000").
func parseAmount(s string) (*float64, error) {
	f, err := strconv.ParseFloat(strings.Join(strings.Fields(s), ""), 64)
	if err != nil {
		return nil, fmt.Errorf("parse salary %q: %w", s, err)
	}
	return &f, nil
}

// VacancySource fetches raw postings for a search query from one provider.
// Failures are reported by the source and yield an empty result.
type VacancySource interface {
	Name() string
	GetVacancies(ctx context.Context, query string) []Payload
}

// VacancyStore persists the deduplicated list of saved vacancies.
type VacancyStore interface {
	Add(v Vacancy) (bool, error)
	Delete(ref any) (int, error)
	All() ([]StoredVacancy, error)
	BySalaryAtLeast(min float64) ([]Vacancy, error)
}

// VacancyFilter decides whether a vacancy matches the user's criteria.
type VacancyFilter interface {
	Match(v Vacancy) bool
}

// Printer shows vacancies to the user.
type Printer interface {
	Print(vacancies []Vacancy) error
}
