package tracking

import (
	"time"

	"github.com/matst80/slask-storefront/pkg/types"
)

const (
	EventBrowse uint16 = iota + 1
	EventQuote
)

type BaseEvent struct {
	Event     uint16 `json:"event"`
	Context   string `json:"context,omitempty"`
	Timestamp int64  `json:"ts"`
}

type BrowseEvent struct {
	BaseEvent
	Version         string `json:"version"`
	Filter          string `json:"filter"`
	Sort            string `json:"sort"`
	Page            int    `json:"page"`
	Total           int    `json:"total"`
	StaleReferences int    `json:"stale_references,omitempty"`
}

type QuoteEvent struct {
	BaseEvent
	QuoteId        string      `json:"quote_id"`
	Lines          int         `json:"lines"`
	Total          types.Money `json:"total"`
	Discount       types.Money `json:"discount"`
	PolicyWarnings int         `json:"policy_warnings,omitempty"`
}

func stamp(base *BaseEvent, event uint16) {
	base.Event = event
	if base.Timestamp == 0 {
		base.Timestamp = time.Now().Unix()
	}
}
