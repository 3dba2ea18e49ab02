package types

import "fmt"

// MarkupType selects how a spec's PriceMarkup contributes to a line.
type MarkupType uint8

const (
	NoMarkup MarkupType = iota
	AmountPerQuantity
	AmountTotal
	Percentage
)

var markupNames = map[MarkupType]string{
	NoMarkup:          "NoMarkup",
	AmountPerQuantity: "AmountPerQuantity",
	AmountTotal:       "AmountTotal",
	Percentage:        "Percentage",
}

func ParseMarkupType(s string) (MarkupType, error) {
	if s == "" {
		return NoMarkup, nil
	}
	for t, name := range markupNames {
		if name == s {
			return t, nil
		}
	}
	return NoMarkup, fmt.Errorf("%w: %q", ErrUnknownMarkupType, s)
}

func (t MarkupType) Valid() bool {
	_, ok := markupNames[t]
	return ok
}

func (t MarkupType) String() string {
	if name, ok := markupNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MarkupType(%d)", uint8(t))
}

func (t MarkupType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMarkupType, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *MarkupType) UnmarshalText(text []byte) error {
	v, err := ParseMarkupType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
