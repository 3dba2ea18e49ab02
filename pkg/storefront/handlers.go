package storefront

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-storefront/pkg/cart"
	"github.com/matst80/slask-storefront/pkg/catalog"
	"github.com/matst80/slask-storefront/pkg/common"
	"github.com/matst80/slask-storefront/pkg/sorting"
	"github.com/matst80/slask-storefront/pkg/types"
)

var ErrUnknownProduct = errors.New("unknown product")

type QuoteLine struct {
	ProductId string               `json:"productId"`
	Quantity  types.Quantity       `json:"quantity"`
	Specs     []types.LineItemSpec `json:"specs"`
}

type QuoteRequest struct {
	Lines []QuoteLine `json:"lines"`
}

// CartFromRequest prices the requested lines from the current catalog
// snapshot, never from client supplied prices.
func (s *Service) CartFromRequest(req QuoteRequest) (cart.Cart, error) {
	snapshot, err := s.Catalog.Snapshot()
	if err != nil {
		return cart.Cart{}, err
	}
	c := cart.Cart{}
	for i, l := range req.Lines {
		product, ok := snapshot.Index.Product(l.ProductId)
		if !ok {
			return cart.Cart{}, fmt.Errorf("line %d: %w: %s", i, ErrUnknownProduct, l.ProductId)
		}
		line, err := cart.NewLine(product, l.Quantity.Int64(), l.Specs...)
		if err != nil {
			return cart.Cart{}, &cart.LineError{Index: i, Err: err}
		}
		c.Add(line)
	}
	return c, nil
}

func withStatus(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNoSnapshot):
		return common.WithStatus(http.StatusServiceUnavailable, err)
	case errors.Is(err, types.ErrInvalidMarkup),
		errors.Is(err, types.ErrInvalidQuantity),
		errors.Is(err, types.ErrInvalidPrice),
		errors.Is(err, types.ErrUnknownMarkupType),
		errors.Is(err, ErrUnknownProduct):
		return common.WithStatus(http.StatusBadRequest, err)
	}
	return err
}

func (s *Service) BrowseHandler(r *http.Request) (any, error) {
	req, err := types.DecodeBrowseRequest(r.URL.Query())
	if err != nil {
		return nil, common.WithStatus(http.StatusBadRequest, err)
	}
	result, err := s.Browse(r.Context(), req)
	if err != nil {
		return nil, withStatus(err)
	}
	return result, nil
}

func (s *Service) QuoteHandler(r *http.Request) (any, error) {
	var req QuoteRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, common.WithStatus(http.StatusBadRequest, err)
	}
	c, err := s.CartFromRequest(req)
	if err != nil {
		return nil, withStatus(err)
	}
	quote, err := s.Quote(r.Context(), c)
	if err != nil {
		return nil, withStatus(err)
	}
	return quote, nil
}

func (s *Service) SortOptionsHandler(r *http.Request) (any, error) {
	return sorting.Options(), nil
}

func (s *Service) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("OPTIONS /", common.RespondToOptions)
	mux.HandleFunc("GET /browse", common.JsonHandler(s.BrowseHandler))
	mux.HandleFunc("GET /sort-options", common.JsonHandler(s.SortOptionsHandler))
	mux.HandleFunc("POST /quote", common.JsonHandler(s.QuoteHandler))
	return mux
}
