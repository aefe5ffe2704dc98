package store

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/amishk599/vacancies/internal/model"
)

// ErrMalformedRef is returned by Delete when the reference carries no
// natural key.
var ErrMalformedRef = errors.New("vacancy reference must carry a title and link")

// keyOf extracts the natural key from a delete reference.
func keyOf(ref any) (model.Key, bool) {
	var key model.Key
	switch r := ref.(type) {
	case nil:
		return key, false
	case model.Keyer:
		if isNilPointer(r) {
			return key, false
		}
		key = r.NaturalKey()
	case model.Payload:
		return keyOfMap(r)
	case map[string]any:
		return keyOfMap(r)
	case map[string]string:
		title, okTitle := r["title"]
		link, okLink := r["link"]
		if !okTitle || !okLink {
			return key, false
		}
		key = model.Key{Title: title, Link: link}
	default:
		return key, false
	}
	if key.Title == "" && key.Link == "" {
		return key, false
	}
	return key, true
}

// isNilPointer reports whether v is a typed nil pointer, such as a
// (*model.Vacancy)(nil) held in an interface.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func keyOfMap(m map[string]any) (model.Key, bool) {
	title, okTitle := m["title"].(string)
	link, okLink := m["link"].(string)
	if !okTitle || !okLink || (title == "" && link == "") {
		return model.Key{}, false
	}
	return model.Key{Title: title, Link: link}, true
}

// bySalaryAtLeast rebuilds vacancies from stored projections and keeps those
// whose salary floor is at least min. Records with no floor are skipped.
func bySalaryAtLeast(stored []model.StoredVacancy, min float64) ([]model.Vacancy, error) {
	matched := []model.Vacancy{}
	for _, sv := range stored {
		v, err := sv.Vacancy()
		if err != nil {
			return nil, fmt.Errorf("filtering by salary: %w", err)
		}
		if floor, ok := v.SalaryFloor(); ok && floor >= min {
			matched = append(matched, v)
		}
	}
	return matched, nil
}
