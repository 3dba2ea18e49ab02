package types

import (
	"maps"
	"slices"
)

type FacetValue struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected,omitempty"`
}

// FacetDefinition is an immutable snapshot of one facet for a query context.
type FacetDefinition struct {
	Name   string       `json:"name"`
	Values []FacetValue `json:"values"`
}

// FacetSelection maps a facet name to the values the buyer ticked.
// Values of one facet are OR'd, facets are AND'd.
type FacetSelection map[string][]string

// Toggle selects value if it is not selected and deselects it otherwise.
// A facet without selected values is removed.
func (s FacetSelection) Toggle(name, value string) {
	values := s[name]
	if idx := slices.Index(values, value); idx >= 0 {
		values = slices.Delete(values, idx, idx+1)
		if len(values) == 0 {
			delete(s, name)
			return
		}
		s[name] = values
		return
	}
	s[name] = append(values, value)
}

func (s FacetSelection) IsSelected(name, value string) bool {
	return slices.Contains(s[name], value)
}

func (s FacetSelection) Clear() {
	clear(s)
}

func (s FacetSelection) Clone() FacetSelection {
	ret := make(FacetSelection, len(s))
	for name, values := range s {
		ret[name] = slices.Clone(values)
	}
	return ret
}

func (s FacetSelection) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
