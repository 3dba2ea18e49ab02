package storefront

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noBrowses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_browse_total",
		Help: "The total number of catalog queries",
	})
	noStaleReferences = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_stale_references_total",
		Help: "Facets or values in selections that the catalog no longer has",
	})
	noQuotes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_quotes_total",
		Help: "The total number of computed cart quotes",
	})
	noQuoteErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_quote_errors_total",
		Help: "Quotes rejected because of invalid markup, quantity or price",
	})
	noPolicyWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_policy_warnings_total",
		Help: "Spec markups above the configured markup ratio",
	})
	quoteLines = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_quote_lines",
		Help:    "Number of lines per quoted cart",
		Buckets: prometheus.LinearBuckets(1, 5, 10),
	})
)
