package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"intown-api/internal/models"
	"intown-api/internal/nominatim"
)

// GeoCodeService contains the business logic for forward location
// search.
type GeoCodeService struct {
	geocoder ForwardGeocoder
}

// ForwardGeocoder interface for dependency injection.
type ForwardGeocoder interface {
	Search(ctx context.Context, query string) ([]models.LocationSearchResult, error)
}

// NewGeoCodeService creates a new geo code service.
func NewGeoCodeService(geocoder ForwardGeocoder) *GeoCodeService {
	return &GeoCodeService{geocoder: geocoder}
}

// Search returns candidate places for a free-text query. Queries under
// three characters yield an empty list without touching the provider,
// and provider failures degrade to an empty list as well.
func (s *GeoCodeService) Search(ctx context.Context, query string) []models.LocationSearchResult {
	if len(strings.TrimSpace(query)) < nominatim.MinQueryLength {
		return []models.LocationSearchResult{}
	}

	results, err := s.geocoder.Search(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("location search failed")
		return []models.LocationSearchResult{}
	}

	return results
}
