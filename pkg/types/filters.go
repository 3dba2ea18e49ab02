package types

import (
	"net/url"
	"slices"
	"strings"
)

type StringFilter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// QueryFilter is the canonical form of a selection: filters sorted by name,
// values sorted and unique. Two selections with the same content produce
// equal filters and equal keys.
type QueryFilter struct {
	StringFilter []StringFilter `json:"string"`
}

func (f QueryFilter) IsEmpty() bool {
	return len(f.StringFilter) == 0
}

// WithOut returns the filter without the clause for name.
func (f QueryFilter) WithOut(name string) QueryFilter {
	result := QueryFilter{
		StringFilter: make([]StringFilter, 0, len(f.StringFilter)),
	}
	for _, filter := range f.StringFilter {
		if filter.Name != name {
			result.StringFilter = append(result.StringFilter, filter)
		}
	}
	return result
}

func (f QueryFilter) HasField(name string) bool {
	return slices.ContainsFunc(f.StringFilter, func(filter StringFilter) bool {
		return filter.Name == name
	})
}

func (f QueryFilter) Values(name string) []string {
	for _, filter := range f.StringFilter {
		if filter.Name == name {
			return filter.Values
		}
	}
	return nil
}

func (f QueryFilter) IsSelected(name, value string) bool {
	return slices.Contains(f.Values(name), value)
}

// Selection turns the filter back into a selection the builder accepts.
func (f QueryFilter) Selection() FacetSelection {
	ret := make(FacetSelection, len(f.StringFilter))
	for _, filter := range f.StringFilter {
		ret[filter.Name] = slices.Clone(filter.Values)
	}
	return ret
}

func (f QueryFilter) Equal(other QueryFilter) bool {
	return slices.EqualFunc(f.StringFilter, other.StringFilter, func(a, b StringFilter) bool {
		return a.Name == b.Name && slices.Equal(a.Values, b.Values)
	})
}

// Key is a stable string form of the filter, "name:v1||v2" clauses joined by
// "&" with every part query-escaped.
func (f QueryFilter) Key() string {
	var buffer strings.Builder
	for i, filter := range f.StringFilter {
		if i > 0 {
			buffer.WriteString("&")
		}
		buffer.WriteString(url.QueryEscape(filter.Name))
		buffer.WriteString(":")
		for j, value := range filter.Values {
			if j > 0 {
				buffer.WriteString("||")
			}
			buffer.WriteString(url.QueryEscape(value))
		}
	}
	return buffer.String()
}
