package view

import (
	"errors"
	"strings"

	"github.com/alexdata/portfolio/internal/portfolio"
)

var ErrUnknownFilter = errors.New("unknown filter")

// Filter is the active project filter: a category or the All sentinel.
type Filter string

const All Filter = "All"

// Filters is the selectable filter set, All first, then every declared
// category in declaration order.
var Filters = func() []Filter {
	out := []Filter{All}
	for _, c := range portfolio.Categories {
		out = append(out, Filter(c))
	}
	return out
}()

// ParseFilter maps a request value onto the filter set. The empty string
// means All. Matching ignores case so "nlp" selects NLP.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return All, nil
	}
	for _, f := range Filters {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", ErrUnknownFilter
}

// Apply returns the projects the filter lets through, keeping their order.
// It never fails; a filter without matches yields an empty, non-nil slice.
func (f Filter) Apply(projects []portfolio.Project) []portfolio.Project {
	out := make([]portfolio.Project, 0, len(projects))
	for _, p := range projects {
		if f == All || p.Category == portfolio.Category(f) {
			out = append(out, p)
		}
	}
	return out
}

// Slug is the filter in a form usable as an element id.
func (f Filter) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(f)), " ", "-")
}
