package types

import (
	"encoding/json"
	"fmt"
)

// LineItemSpec is a product specification/option selected for one cart line.
// Markup can only be assigned through NewLineItemSpec, SetMarkup or JSON
// decoding, all of which reject negative amounts.
type LineItemSpec struct {
	SpecID   string
	OptionID string
	Value    string

	name       string
	markupType MarkupType
	markup     Money
	locked     bool
}

func NewLineItemSpec(specID, name, optionID, value string, markupType MarkupType, markup Money) (LineItemSpec, error) {
	spec := LineItemSpec{
		SpecID:   specID,
		OptionID: optionID,
		Value:    value,
		name:     name,
	}
	if err := spec.SetMarkup(markupType, markup); err != nil {
		return LineItemSpec{}, err
	}
	return spec, nil
}

func (s *LineItemSpec) Name() string {
	return s.name
}

func (s *LineItemSpec) MarkupType() MarkupType {
	return s.markupType
}

func (s *LineItemSpec) Markup() Money {
	return s.markup
}

func (s *LineItemSpec) Locked() bool {
	return s.locked
}

// Lock freezes the spec once its line is submitted.
func (s *LineItemSpec) Lock() {
	s.locked = true
}

func (s *LineItemSpec) SetMarkup(markupType MarkupType, markup Money) error {
	if s.locked {
		return fmt.Errorf("%w: %s", ErrSpecLocked, s.SpecID)
	}
	if !markupType.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMarkupType, uint8(markupType))
	}
	if markup.IsNegative() {
		return fmt.Errorf("%w: spec %s has markup %s", ErrInvalidMarkup, s.SpecID, markup)
	}
	s.markupType = markupType
	s.markup = markup
	return nil
}

type lineItemSpecJSON struct {
	SpecID          string     `json:"SpecID,omitempty"`
	Name            string     `json:"Name,omitempty"`
	OptionID        string     `json:"OptionID,omitempty"`
	Value           string     `json:"Value,omitempty"`
	PriceMarkupType MarkupType `json:"PriceMarkupType"`
	PriceMarkup     Money      `json:"PriceMarkup"`
}

func (s LineItemSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineItemSpecJSON{
		SpecID:          s.SpecID,
		Name:            s.name,
		OptionID:        s.OptionID,
		Value:           s.Value,
		PriceMarkupType: s.markupType,
		PriceMarkup:     s.markup,
	})
}

func (s *LineItemSpec) UnmarshalJSON(data []byte) error {
	var raw lineItemSpecJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	spec, err := NewLineItemSpec(raw.SpecID, raw.Name, raw.OptionID, raw.Value, raw.PriceMarkupType, raw.PriceMarkup)
	if err != nil {
		return err
	}
	*s = spec
	return nil
}
