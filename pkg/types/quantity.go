package types

import (
	"encoding/json"
	"fmt"
)

// Quantity is the number of units on a cart line. The zero value is invalid.
type Quantity int64

func NewQuantity(n int64) (Quantity, error) {
	q := Quantity(n)
	if err := q.Validate(); err != nil {
		return 0, err
	}
	return q, nil
}

func (q Quantity) Validate() error {
	if q <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, int64(q))
	}
	return nil
}

func (q Quantity) Int64() int64 {
	return int64(q)
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := NewQuantity(n)
	if err != nil {
		return err
	}
	*q = v
	return nil
}
