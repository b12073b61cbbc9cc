package shops

import (
	"context"

	"github.com/rs/zerolog/log"

	"intown-api/internal/geo"
)

// Searcher abstracts the merchant API methods the fallback flow needs.
type Searcher interface {
	NearbyShops(ctx context.Context, lat, lon float64) Result
	SearchByProductNames(ctx context.Context, query string, lat, lon float64) Result
	SearchByCategory(ctx context.Context, categoryID string, lat, lon float64) Result
}

// Finder wraps a Searcher with the product-search fallback policy: a
// product query that matches nothing falls back to the broad nearby
// query, so users are never shown a blank list just because their exact
// product is unmatched.
type Finder struct {
	client Searcher
}

// NewFinder creates a Finder over the given client.
func NewFinder(client Searcher) *Finder {
	return &Finder{client: client}
}

// FindByProduct searches by product name, falling back to nearby shops
// when the query matches nothing or the request fails.
func (f *Finder) FindByProduct(ctx context.Context, query string, lat, lon float64) Result {
	res := f.client.SearchByProductNames(ctx, query, lat, lon)
	if res.Status == StatusOK {
		return fillDistances(res, lat, lon)
	}

	if res.Status == StatusFailed {
		log.Warn().Err(res.Err).Str("query", query).Msg("product search failed, falling back to nearby shops")
	}

	return fillDistances(f.client.NearbyShops(ctx, lat, lon), lat, lon)
}

// FindByCategory searches by category with the same fallback.
func (f *Finder) FindByCategory(ctx context.Context, categoryID string, lat, lon float64) Result {
	res := f.client.SearchByCategory(ctx, categoryID, lat, lon)
	if res.Status == StatusOK {
		return fillDistances(res, lat, lon)
	}

	if res.Status == StatusFailed {
		log.Warn().Err(res.Err).Str("category", categoryID).Msg("category search failed, falling back to nearby shops")
	}

	return fillDistances(f.client.NearbyShops(ctx, lat, lon), lat, lon)
}

// Nearby returns the broad nearby shop list directly.
func (f *Finder) Nearby(ctx context.Context, lat, lon float64) Result {
	return fillDistances(f.client.NearbyShops(ctx, lat, lon), lat, lon)
}

// fillDistances computes the customer distance for shops the upstream
// returned without one. Shops without coordinates are left alone and
// render as "Nearby".
func fillDistances(res Result, lat, lon float64) Result {
	for i := range res.Shops {
		shop := &res.Shops[i]
		if shop.DistanceKm != nil || (shop.Latitude == 0 && shop.Longitude == 0) {
			continue
		}
		d := geo.DistanceKm(lat, lon, shop.Latitude, shop.Longitude)
		shop.DistanceKm = &d
	}
	return res
}
