package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matst80/slask-storefront/pkg/types"
)

const (
	RELEVANCE_SORT  = "relevance"
	PRICE_SORT      = "price"
	PRICE_DESC_SORT = "price_desc"
	NAME_SORT       = "name"
	NAME_DESC_SORT  = "name_desc"
)

var sortOptions = []types.SortOption{
	{Name: RELEVANCE_SORT, Field: types.SortFieldRelevance, Direction: types.Descending, Label: "Relevance"},
	{Name: PRICE_SORT, Field: types.SortFieldPrice, Direction: types.Ascending, Label: "Price: Low to High"},
	{Name: PRICE_DESC_SORT, Field: types.SortFieldPrice, Direction: types.Descending, Label: "Price: High to Low"},
	{Name: NAME_SORT, Field: types.SortFieldName, Direction: types.Ascending, Label: "Name: A to Z"},
	{Name: NAME_DESC_SORT, Field: types.SortFieldName, Direction: types.Descending, Label: "Name: Z to A"},
}

type fieldCompare func(a, b *types.ProductRecord) int

var fields = map[string]fieldCompare{
	types.SortFieldRelevance: func(a, b *types.ProductRecord) int {
		return cmp.Compare(a.Relevance, b.Relevance)
	},
	types.SortFieldPrice: func(a, b *types.ProductRecord) int {
		return a.BasePrice.Cmp(b.BasePrice)
	},
	types.SortFieldName: func(a, b *types.ProductRecord) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	},
}

// Options lists the registered sort options, default first.
func Options() []types.SortOption {
	return slices.Clone(sortOptions)
}

func Default() types.SortOption {
	return sortOptions[0]
}

// Lookup finds an option by request name or by its display label.
func Lookup(key string) (types.SortOption, bool) {
	for _, o := range sortOptions {
		if o.Name == key || strings.EqualFold(o.Label, key) {
			return o, true
		}
	}
	return types.SortOption{}, false
}

// Resolve is Lookup falling back to the default option.
func Resolve(key string) types.SortOption {
	if o, ok := Lookup(key); ok {
		return o
	}
	return Default()
}

// Canonical maps option to the registered option with the same field and
// direction. Unknown fields resolve to the default option; a known field in
// an unregistered direction is returned with its name cleared.
func Canonical(option types.SortOption) types.SortOption {
	if _, ok := fields[option.Field]; !ok {
		return Default()
	}
	for _, o := range sortOptions {
		if o.Field == option.Field && o.Direction == option.Direction {
			return o
		}
	}
	return types.SortOption{Field: option.Field, Direction: option.Direction}
}

// Comparator orders products by the option's field. Direction only flips the
// field comparison, ties are always broken by ascending product id. Unknown
// options order by relevance.
func Comparator(option types.SortOption) func(a, b types.ProductRecord) int {
	fn, ok := fields[option.Field]
	if !ok {
		option = Default()
		fn = fields[option.Field]
	}
	reversed := option.Direction == types.Descending
	return func(a, b types.ProductRecord) int {
		c := fn(&a, &b)
		if reversed {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	}
}

func Sort(products []types.ProductRecord, option types.SortOption) {
	slices.SortStableFunc(products, Comparator(option))
}
