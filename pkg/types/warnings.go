package types

import "fmt"

type WarningKind uint8

const (
	// WarningStaleReference: the selection named a facet or value the index no longer has.
	WarningStaleReference WarningKind = iota + 1
	// WarningPolicy: a spec delta exceeds the configured markup ratio.
	WarningPolicy
)

func (k WarningKind) String() string {
	switch k {
	case WarningStaleReference:
		return "stale_reference"
	case WarningPolicy:
		return "policy"
	default:
		return "unknown"
	}
}

func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *WarningKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "stale_reference":
		*k = WarningStaleReference
	case "policy":
		*k = WarningPolicy
	default:
		return fmt.Errorf("unknown warning kind %q", text)
	}
	return nil
}

// Warning is a non-fatal condition reported next to a result.
type Warning struct {
	Kind  WarningKind `json:"kind"`
	Facet string      `json:"facet,omitempty"`
	Value string      `json:"value,omitempty"`
	Line  int         `json:"line,omitempty"` // 1-based position in the cart
	Spec  string      `json:"spec,omitempty"`
	Delta *Money      `json:"delta,omitempty"`
	Limit *Money      `json:"limit,omitempty"`
}

func StaleFacet(name string) Warning {
	return Warning{Kind: WarningStaleReference, Facet: name}
}

func StaleValue(name, value string) Warning {
	return Warning{Kind: WarningStaleReference, Facet: name, Value: value}
}

func PolicyExceeded(line int, specID string, delta, limit Money) Warning {
	return Warning{Kind: WarningPolicy, Line: line, Spec: specID, Delta: &delta, Limit: &limit}
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningStaleReference:
		if w.Value == "" {
			return fmt.Sprintf("unknown facet %q", w.Facet)
		}
		return fmt.Sprintf("unknown value %q for facet %q", w.Value, w.Facet)
	case WarningPolicy:
		return fmt.Sprintf("line %d spec %s markup %s exceeds limit %s", w.Line, w.Spec, w.Delta, w.Limit)
	}
	return w.Kind.String()
}
