package domain

import (
	"sort"
	"strconv"
	"strings"
)

// StatusLookup maps each model type to its valid status codes.
type StatusLookup map[ModelType][]StatusCode

// NewStatusLookup rebuilds a lookup from the server's status class listing.
// Codes within a model are ordered by value.
func NewStatusLookup(classes map[string]StatusClass) StatusLookup {
	lookup := make(StatusLookup, len(classes))
	for name, class := range classes {
		if class.Class != "" {
			name = class.Class
		}

		codes := make([]StatusCode, 0, len(class.Values))
		for key, code := range class.Values {
			if code.Name == "" {
				code.Name = key
			}
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i].Key < codes[j].Key })

		lookup[ModelForStatusClass(name)] = codes
	}
	return lookup
}

// Find returns the status code with the given value for model.
func (l StatusLookup) Find(model ModelType, value int) (StatusCode, bool) {
	for _, code := range l[model] {
		if code.Key == value {
			return code, true
		}
	}
	return StatusCode{}, false
}

// Label returns a human-readable label for a status value. Unknown values
// render as the bare number.
func (l StatusLookup) Label(model ModelType, value int) string {
	if code, ok := l.Find(model, value); ok {
		return code.Label
	}

	return strconv.Itoa(value)
}

// Parse returns the status value for a given label or name (case-insensitive).
func (l StatusLookup) Parse(model ModelType, label string) (int, bool) {
	for _, code := range l[model] {
		if strings.EqualFold(code.Label, label) || strings.EqualFold(code.Name, label) {
			return code.Key, true
		}
	}

	return 0, false
}
