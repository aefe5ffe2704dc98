package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/amishk599/vacancies/internal/model"
)

// Ensure KeywordFilter implements model.VacancyFilter.
var _ model.VacancyFilter = (*KeywordFilter)(nil)

// KeywordFilter matches vacancies whose text contains any of the keywords.
// Matching is a case-insensitive substring search with Unicode case folding,
// so "PYTHON" and "разработчик" behave the same as their lower-case forms.
// An empty keyword list matches everything.
type KeywordFilter struct {
	keywords []string
	fold     cases.Caser
}

// NewKeywordFilter returns a filter for the given keywords. Keywords are
// trimmed and empty entries dropped.
func NewKeywordFilter(keywords []string) *KeywordFilter {
	f := &KeywordFilter{fold: cases.Fold()}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		f.keywords = append(f.keywords, f.fold.String(kw))
	}
	return f
}

// Match returns true if the vacancy's string form contains any keyword.
func (f *KeywordFilter) Match(v model.Vacancy) bool {
	if len(f.keywords) == 0 {
		return true
	}
	text := f.fold.String(v.String())
	for _, kw := range f.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Apply returns, in order, the vacancies from every sequence that f matches.
func Apply(f model.VacancyFilter, seqs ...[]model.Vacancy) []model.Vacancy {
	var matched []model.Vacancy
	for _, seq := range seqs {
		for _, v := range seq {
			if f.Match(v) {
				matched = append(matched, v)
			}
		}
	}
	return matched
}

// FilterByKeywords concatenates the entries of seqs that contain at least one
// of keywords.
func FilterByKeywords(keywords []string, seqs ...[]model.Vacancy) []model.Vacancy {
	return Apply(NewKeywordFilter(keywords), seqs...)
}

// ParseKeywords splits comma-separated user input into keywords.
func ParseKeywords(input string) []string {
	var keywords []string
	for _, kw := range strings.Split(input, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
