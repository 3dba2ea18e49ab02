package facet

import (
	"maps"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/matst80/slask-storefront/pkg/types"
)

// Index is an immutable facet index over one catalog snapshot. It is safe
// for concurrent readers.
type Index struct {
	products []types.ProductRecord
	byId     map[string]uint32
	fields   map[string]*KeyField
	all      *roaring.Bitmap
}

// NewIndex indexes products. Facet names and values are trimmed, empty ones
// are skipped and a repeated product id replaces the earlier record.
func NewIndex(products []types.ProductRecord) *Index {
	idx := &Index{
		products: make([]types.ProductRecord, 0, len(products)),
		byId:     make(map[string]uint32, len(products)),
		fields:   map[string]*KeyField{},
		all:      roaring.New(),
	}
	for _, p := range products {
		if pos, ok := idx.byId[p.ID]; ok {
			idx.products[pos] = p
			continue
		}
		idx.byId[p.ID] = uint32(len(idx.products))
		idx.products = append(idx.products, p)
	}
	for pos, p := range idx.products {
		id := uint32(pos)
		idx.all.Add(id)
		for name, values := range p.FacetValues {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			for _, value := range values {
				value = strings.TrimSpace(value)
				if value == "" {
					continue
				}
				field, ok := idx.fields[name]
				if !ok {
					field = EmptyKeyField(name)
					idx.fields[name] = field
				}
				field.AddValueLink(value, id)
			}
		}
	}
	idx.all.RunOptimize()
	for _, field := range idx.fields {
		for _, bm := range field.Keys {
			bm.RunOptimize()
		}
	}
	return idx
}

func (i *Index) Len() int {
	return len(i.products)
}

func (i *Index) Names() []string {
	return slices.Sorted(maps.Keys(i.fields))
}

func (i *Index) Field(name string) (*KeyField, bool) {
	f, ok := i.fields[name]
	return f, ok
}

func (i *Index) Has(name, value string) bool {
	f, ok := i.fields[name]
	return ok && f.Has(value)
}

func (i *Index) Product(id string) (types.ProductRecord, bool) {
	pos, ok := i.byId[id]
	if !ok {
		return types.ProductRecord{}, false
	}
	return i.products[pos], true
}

// Products returns a copy of every indexed product in index order.
func (i *Index) Products() []types.ProductRecord {
	return slices.Clone(i.products)
}

// matching intersects the clauses of filter, each clause being the union of
// its values.
func (i *Index) matching(filter types.QueryFilter) *roaring.Bitmap {
	result := i.all.Clone()
	for _, clause := range filter.StringFilter {
		field, ok := i.fields[clause.Name]
		if !ok {
			return roaring.New()
		}
		result.And(field.Match(clause.Values))
		if result.IsEmpty() {
			break
		}
	}
	return result
}

// Match returns the products satisfying filter in index order.
func (i *Index) Match(filter types.QueryFilter) []types.ProductRecord {
	bm := i.matching(filter)
	ret := make([]types.ProductRecord, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		ret = append(ret, i.products[it.Next()])
	}
	return ret
}

func (i *Index) Count(filter types.QueryFilter) int {
	return int(i.matching(filter).GetCardinality())
}

// Definitions returns the facets with value counts for the query context of
// filter. The counts of a facet ignore that facet's own clause so the other
// values of a selected facet stay visible. Values without hits are left out
// unless selected.
func (i *Index) Definitions(filter types.QueryFilter) []types.FacetDefinition {
	names := i.Names()
	ret := make([]types.FacetDefinition, 0, len(names))
	for _, name := range names {
		field := i.fields[name]
		within := i.matching(filter.WithOut(name))
		def := types.FacetDefinition{
			Name:   name,
			Values: make([]types.FacetValue, 0, field.Len()),
		}
		for _, value := range field.Values() {
			count := field.Count(value, within)
			selected := filter.IsSelected(name, value)
			if count == 0 && !selected {
				continue
			}
			def.Values = append(def.Values, types.FacetValue{
				Value:    value,
				Count:    count,
				Selected: selected,
			})
		}
		if len(def.Values) > 0 {
			ret = append(ret, def)
		}
	}
	return ret
}
