package types

type SortDirection uint8

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

const (
	SortFieldRelevance = "relevance"
	SortFieldPrice     = "price"
	SortFieldName      = "name"
)

// SortOption is one entry of the "Sort by" list. Name is the request key.
type SortOption struct {
	Name      string        `json:"name"`
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
	Label     string        `json:"label"`
}
