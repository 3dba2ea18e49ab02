package tracking

import "context"

// Tracking receives storefront analytics events. Implementations must not
// block the request for long; failures are logged by the caller.
type Tracking interface {
	TrackBrowse(ctx context.Context, event BrowseEvent) error
	TrackQuote(ctx context.Context, event QuoteEvent) error
}
