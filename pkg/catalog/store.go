package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/matst80/slask-storefront/pkg/facet"
	"github.com/matst80/slask-storefront/pkg/sorting"
	"github.com/matst80/slask-storefront/pkg/types"
)

var ErrNoSnapshot = errors.New("no catalog snapshot loaded")

// Snapshot is one immutable version of the catalog.
type Snapshot struct {
	Version string
	Index   *facet.Index
	Loaded  time.Time
}

type Page struct {
	Number int
	Size   int
}

type Result struct {
	Version  string                  `json:"version"`
	Filter   types.QueryFilter       `json:"filter"`
	Sort     types.SortOption        `json:"sort"`
	Facets   []types.FacetDefinition `json:"facets"`
	Products []types.ProductRecord   `json:"products"`
	Total    int                     `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"pageSize"`
	Warnings []types.Warning         `json:"warnings,omitempty"`
}

type cachedResult struct {
	Ids    []string                `json:"ids"`
	Facets []types.FacetDefinition `json:"facets"`
}

// Store keeps the current snapshot behind an atomic pointer. Replace swaps
// the whole snapshot, queries keep using the snapshot they started with.
type Store struct {
	ptr      atomic.Pointer[Snapshot]
	Cache    Cache
	CacheTTL time.Duration
}

func NewStore(cache Cache, ttl time.Duration) *Store {
	return &Store{
		Cache:    cache,
		CacheTTL: ttl,
	}
}

// Replace indexes products as a new snapshot. An empty version gets a
// generated one.
func (s *Store) Replace(version string, products []types.ProductRecord) *Snapshot {
	if version == "" {
		version = uuid.NewString()
	}
	snapshot := &Snapshot{
		Version: version,
		Index:   facet.NewIndex(products),
		Loaded:  time.Now(),
	}
	s.ptr.Store(snapshot)
	log.Printf("catalog snapshot %s loaded, %d products, %d facets", version, snapshot.Index.Len(), len(snapshot.Index.Names()))
	return snapshot
}

func (s *Store) Snapshot() (*Snapshot, error) {
	snapshot := s.ptr.Load()
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return snapshot, nil
}

// DefaultPageSize is used when a query asks for a non-positive page size.
const DefaultPageSize = 40

func cacheKey(version string, filter types.QueryFilter, option types.SortOption) string {
	return fmt.Sprintf("q:%s:%s:%s:%s", version, option.Field, option.Direction, filter.Key())
}

// Query resolves a selection and sort against the current snapshot and
// returns one page of products with the facet counts for the query.
func (s *Store) Query(ctx context.Context, selection types.FacetSelection, option types.SortOption, page Page) (*Result, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	idx := snapshot.Index
	option = sorting.Canonical(option)
	page.Number = max(page.Number, 0)
	if page.Size <= 0 {
		page.Size = DefaultPageSize
	}

	filter, warnings := idx.Build(selection)
	key := cacheKey(snapshot.Version, filter, option)

	var products []types.ProductRecord
	var facets []types.FacetDefinition
	cached := cachedResult{}
	if s.Cache != nil && s.Cache.Get(ctx, key, &cached) == nil {
		products = make([]types.ProductRecord, 0, len(cached.Ids))
		for _, id := range cached.Ids {
			if p, ok := idx.Product(id); ok {
				products = append(products, p)
			}
		}
		facets = cached.Facets
	} else {
		products = idx.Match(filter)
		sorting.Sort(products, option)
		facets = idx.Definitions(filter)
		if s.Cache != nil {
			ids := make([]string, len(products))
			for i, p := range products {
				ids[i] = p.ID
			}
			if err := s.Cache.Set(ctx, key, cachedResult{Ids: ids, Facets: facets}, s.CacheTTL); err != nil {
				log.Printf("failed to cache query %s: %v", key, err)
			}
		}
	}

	start := len(products)
	if page.Number <= len(products)/page.Size {
		start = page.Number * page.Size
	}
	end := min(start+page.Size, len(products))
	return &Result{
		Version:  snapshot.Version,
		Filter:   filter,
		Sort:     option,
		Facets:   facets,
		Products: products[start:end],
		Total:    len(products),
		Page:     page.Number,
		PageSize: page.Size,
		Warnings: warnings,
	}, nil
}
