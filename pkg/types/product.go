package types

import "slices"

// ProductRecord is a catalog product as delivered by the catalog backend.
type ProductRecord struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	FacetValues map[string][]string `json:"facets,omitempty"`
	BasePrice   Money               `json:"basePrice"`
	// Relevance is the platform score behind the default ordering, higher first.
	Relevance float64 `json:"relevance,omitempty"`
}

func (p *ProductRecord) HasValue(facet, value string) bool {
	return slices.Contains(p.FacetValues[facet], value)
}
