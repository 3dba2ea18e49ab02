package storefront

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/matst80/slask-storefront/pkg/cart"
	"github.com/matst80/slask-storefront/pkg/catalog"
	"github.com/matst80/slask-storefront/pkg/promotions"
	"github.com/matst80/slask-storefront/pkg/sorting"
	"github.com/matst80/slask-storefront/pkg/tracking"
	"github.com/matst80/slask-storefront/pkg/types"
)

// QuotePublisher forwards computed quotes to downstream consumers.
type QuotePublisher interface {
	Publish(ctx context.Context, quote *Quote) error
}

type Quote struct {
	Id        string                       `json:"id"`
	Cart      cart.CartResult              `json:"cart"`
	Discounts []promotions.PromotionOutput `json:"discounts,omitempty"`
	Discount  types.Money                  `json:"discount"`
	Payable   types.Money                  `json:"payable"`
	Order     cart.Order                   `json:"order"`
	Warnings  []types.Warning              `json:"warnings,omitempty"`
}

type Service struct {
	Catalog    *catalog.Store
	Aggregator *cart.Aggregator
	Promotions promotions.PromotionStorage
	Publisher  QuotePublisher
	Tracking   tracking.Tracking
	Currency   string
}

// Browse resolves a catalog view. Stale selections are logged and counted,
// never rejected.
func (s *Service) Browse(ctx context.Context, req *types.BrowseRequest) (*catalog.Result, error) {
	req.Sanitize()
	option := sorting.Resolve(req.Sort)
	result, err := s.Catalog.Query(ctx, req.Selection, option, catalog.Page{Number: req.Page, Size: req.PageSize})
	if err != nil {
		return nil, err
	}
	noBrowses.Inc()
	for _, w := range result.Warnings {
		noStaleReferences.Inc()
		log.Printf("browse: %s", w)
	}
	if s.Tracking != nil {
		err := s.Tracking.TrackBrowse(ctx, tracking.BrowseEvent{
			Version:         result.Version,
			Filter:          result.Filter.Key(),
			Sort:            result.Sort.Name,
			Page:            result.Page,
			Total:           result.Total,
			StaleReferences: len(result.Warnings),
		})
		if err != nil {
			log.Printf("failed to track browse: %v", err)
		}
	}
	return result, nil
}

// Quote totals the cart, applies promotions and builds the order payload.
// A quote is published when a publisher is configured; publish failures are
// logged and do not fail the quote.
func (s *Service) Quote(ctx context.Context, c cart.Cart) (*Quote, error) {
	result, err := s.Aggregator.CartTotal(c)
	if err != nil {
		noQuoteErrors.Inc()
		return nil, err
	}
	noQuotes.Inc()
	quoteLines.Observe(float64(len(result.Lines)))

	quote := &Quote{
		Id:       uuid.NewString(),
		Cart:     result,
		Discount: types.Zero,
		Payable:  result.Total,
		Warnings: result.Warnings,
	}
	for _, w := range result.Warnings {
		noPolicyWarnings.Inc()
		log.Printf("quote %s: %s", quote.Id, w)
	}

	var discountLines []cart.DiscountLine
	if s.Promotions != nil {
		available, err := s.Promotions.GetPromotions()
		if err != nil {
			return nil, fmt.Errorf("loading promotions: %w", err)
		}
		inputs := make([]*promotions.PromotionInput, len(result.Lines))
		for i, line := range result.Lines {
			inputs[i] = &promotions.PromotionInput{
				Sku:      line.ProductID,
				Quantity: line.Quantity,
				Price:    line.Total,
			}
		}
		quote.Discounts, err = promotions.ApplyAll(available, inputs)
		if err != nil {
			return nil, err
		}
		quote.Discount = promotions.TotalDiscount(quote.Discounts).Min(result.Total)
		quote.Payable = result.Total.Sub(quote.Discount)
		for _, d := range quote.Discounts {
			discountLines = append(discountLines, cart.DiscountLine{
				Name:        fmt.Sprintf("promotion %d", d.PromotionId),
				Reference:   d.Sku,
				TotalAmount: d.Discount.MinorUnits(),
			})
		}
	}
	quote.Order = cart.MakeOrder(result, s.Currency, discountLines...)

	if s.Publisher != nil {
		if err := s.Publisher.Publish(ctx, quote); err != nil {
			log.Printf("failed to publish quote %s: %v", quote.Id, err)
		}
	}
	if s.Tracking != nil {
		err := s.Tracking.TrackQuote(ctx, tracking.QuoteEvent{
			QuoteId:        quote.Id,
			Lines:          len(result.Lines),
			Total:          result.Total,
			Discount:       quote.Discount,
			PolicyWarnings: len(result.Warnings),
		})
		if err != nil {
			log.Printf("failed to track quote %s: %v", quote.Id, err)
		}
	}
	return quote, nil
}
