package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Payload is a raw posting as returned by a provider, decoded from JSON.
// Providers disagree on field names, so lookups go through dotted paths.
type Payload map[string]any

// Lookup walks a dotted path ("snippet.requirement") through nested maps.
// It reports false when any segment is missing, null, or not a map.
func (p Payload) Lookup(path string) (any, bool) {
	var cur any = map[string]any(p)
	for _, key := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		v, ok := m[key]
		if !ok || v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Map returns the sub-mapping at path, if the value there is itself a mapping.
func (p Payload) Map(path string) (Payload, bool) {
	v, ok := p.Lookup(path)
	if !ok {
		return nil, false
	}
	m, ok := asMap(v)
	if !ok {
		return nil, false
	}
	return Payload(m), true
}

// String returns the first non-empty value among paths, rendered as text.
func (p Payload) String(paths ...string) string {
	for _, path := range paths {
		v, ok := p.Lookup(path)
		if !ok {
			continue
		}
		if s := textOf(v); s != "" {
			return s
		}
	}
	return ""
}

// Number returns the value at path as a float64. Zero counts as absent:
// SuperJob reports unset payment bounds as 0 rather than null.
func (p Payload) Number(path string) (float64, bool) {
	v, ok := p.Lookup(path)
	if !ok {
		return 0, false
	}
	n, ok := numberOf(v)
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Payload:
		return m, true
	}
	return nil, false
}

func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return formatNumber(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// formatNumber renders salaries the way providers show them: 5000, not 5000.0.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
