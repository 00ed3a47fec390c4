// Package listing implements the list-screen contract shared by every
// management screen: case-insensitive text search over a fixed field set,
// exact-match filters with the sentinel "all", and single-field sorting.
package listing

import (
	"sort"
	"strings"
)

// All is the filter value meaning "no filter applied".
const All = "all"

type Params struct {
	Search  string
	Filters map[string]string
	SortBy  string
	Desc    bool
}

// Schema describes how one entity participates in the contract. Field
// accessors keep the package generic across entities.
type Schema[T any] struct {
	SearchFields []func(T) string
	FilterFields map[string]func(T) string
	TextSort     map[string]func(T) string
	NumericSort  map[string]func(T) float64
}

// Apply filters and sorts items per the schema. The input slice is not
// modified.
func Apply[T any](items []T, s Schema[T], p Params) []T {
	q := strings.ToLower(strings.TrimSpace(p.Search))

	out := make([]T, 0, len(items))
	for _, it := range items {
		if q != "" && !matchesSearch(it, s.SearchFields, q) {
			continue
		}
		if !matchesFilters(it, s.FilterFields, p.Filters) {
			continue
		}
		out = append(out, it)
	}

	if f, ok := s.TextSort[p.SortBy]; ok {
		sort.SliceStable(out, func(i, j int) bool {
			a := strings.ToLower(f(out[i]))
			b := strings.ToLower(f(out[j]))
			if p.Desc {
				return a > b
			}
			return a < b
		})
	} else if f, ok := s.NumericSort[p.SortBy]; ok {
		sort.SliceStable(out, func(i, j int) bool {
			if p.Desc {
				return f(out[i]) > f(out[j])
			}
			return f(out[i]) < f(out[j])
		})
	}

	return out
}

func matchesSearch[T any](it T, fields []func(T) string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f(it)), q) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](it T, fields map[string]func(T) string, filters map[string]string) bool {
	for name, want := range filters {
		if want == "" || want == All {
			continue
		}
		f, ok := fields[name]
		if !ok {
			continue
		}
		if f(it) != want {
			return false
		}
	}
	return true
}
