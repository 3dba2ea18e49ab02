package facet

import (
	"slices"
	"strings"

	"github.com/matst80/slask-storefront/pkg/types"
)

// Build turns a selection into the canonical filter for this snapshot.
// Facets and values the index does not know are dropped and reported as
// stale reference warnings; browsing is never blocked by them.
func (i *Index) Build(selection types.FacetSelection) (types.QueryFilter, []types.Warning) {
	var warnings []types.Warning

	byName := make(map[string][]string, len(selection))
	for name, values := range selection {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		byName[name] = append(byName[name], values...)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)

	filter := types.QueryFilter{
		StringFilter: make([]types.StringFilter, 0, len(names)),
	}
	for _, name := range names {
		field, ok := i.fields[name]
		if !ok {
			warnings = append(warnings, types.StaleFacet(name))
			continue
		}
		values := make([]string, 0, len(byName[name]))
		for _, v := range byName[name] {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if !field.Has(v) {
				warnings = append(warnings, types.StaleValue(name, v))
				continue
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			continue
		}
		slices.Sort(values)
		filter.StringFilter = append(filter.StringFilter, types.StringFilter{
			Name:   name,
			Values: slices.Compact(values),
		})
	}
	slices.SortFunc(warnings, compareWarnings)
	return filter, slices.CompactFunc(warnings, func(a, b types.Warning) bool {
		return a.Facet == b.Facet && a.Value == b.Value
	})
}

func compareWarnings(a, b types.Warning) int {
	if c := strings.Compare(a.Facet, b.Facet); c != 0 {
		return c
	}
	return strings.Compare(a.Value, b.Value)
}
