package types

import "errors"

var (
	ErrInvalidMarkup     = errors.New("invalid markup: must be non-negative")
	ErrInvalidQuantity   = errors.New("invalid quantity: must be a positive integer")
	ErrInvalidPrice      = errors.New("invalid price: must be non-negative")
	ErrUnknownMarkupType = errors.New("unknown markup type")
	ErrSpecLocked        = errors.New("spec is attached to a submitted line")
)
