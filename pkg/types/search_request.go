package types

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// BrowseRequest is a catalog view request: selection, sort and page.
type BrowseRequest struct {
	Selection FacetSelection `json:"selection" schema:"-"`
	Sort      string         `json:"sort" schema:"sort"`
	Page      int            `json:"page" schema:"page"`
	PageSize  int            `json:"pageSize" schema:"size,default:40"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (s *BrowseRequest) Sanitize() {
	s.Page = clamp(s.Page, 0, 100)
	s.PageSize = clamp(s.PageSize, 1, 1000)
	if s.Selection == nil {
		s.Selection = FacetSelection{}
	}
}

// DecodeBrowseRequest reads sort/page/size with gorilla/schema and the facet
// selection from repeated "str" values in the form NAME:value1||value2.
func DecodeBrowseRequest(query url.Values) (*BrowseRequest, error) {
	sr := &BrowseRequest{
		Selection: FacetSelection{},
		PageSize:  40,
	}
	err := decoder.Decode(sr, query)
	decodeSelection(query, sr.Selection)
	sr.Sanitize()
	return sr, err
}

func decodeSelection(query url.Values, result FacetSelection) {
	for _, v := range query["str"] {
		name, value, ok := strings.Cut(v, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		for part := range strings.SplitSeq(value, "||") {
			part = strings.TrimSpace(part)
			if part == "" || result.IsSelected(name, part) {
				continue
			}
			result[name] = append(result[name], part)
		}
	}
}
