package facet

import (
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// KeyField holds, for one facet name, the products carrying each value.
type KeyField struct {
	Name string
	Keys map[string]*roaring.Bitmap
}

func EmptyKeyField(name string) *KeyField {
	return &KeyField{
		Name: name,
		Keys: map[string]*roaring.Bitmap{},
	}
}

func (f *KeyField) AddValueLink(value string, id uint32) {
	if bm, ok := f.Keys[value]; ok {
		bm.Add(id)
		return
	}
	f.Keys[value] = roaring.BitmapOf(id)
}

func (f *KeyField) Has(value string) bool {
	_, ok := f.Keys[value]
	return ok
}

func (f *KeyField) Len() int {
	return len(f.Keys)
}

// Values returns the known values sorted lexicographically.
func (f *KeyField) Values() []string {
	return slices.Sorted(maps.Keys(f.Keys))
}

// Match returns the products that carry any of the values.
func (f *KeyField) Match(values []string) *roaring.Bitmap {
	ret := roaring.New()
	for _, v := range values {
		if bm, ok := f.Keys[v]; ok {
			ret.Or(bm)
		}
	}
	return ret
}

// Count returns how many products in within carry value.
func (f *KeyField) Count(value string, within *roaring.Bitmap) int {
	bm, ok := f.Keys[value]
	if !ok {
		return 0
	}
	return int(bm.AndCardinality(within))
}

func (f *KeyField) TotalCount() int {
	total := 0
	for _, ids := range f.Keys {
		total += int(ids.GetCardinality())
	}
	return total
}
