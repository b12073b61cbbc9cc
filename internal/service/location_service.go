package service

import (
	"context"

	"intown-api/internal/models"
	"intown-api/internal/store"
)

// CoordinateSource yields the device's position, already carrying the
// fallback policy of its implementation.
type CoordinateSource interface {
	CurrentOrDefault(ctx context.Context) models.Coordinates
}

// LocationService drives the resolution flow: acquire coordinates,
// reverse geocode them, and publish the result through the location
// store so dependent screens refresh.
type LocationService struct {
	source    CoordinateSource
	geocoder  ReverseGeocoder
	locations *store.LocationStore
}

// NewLocationService creates a new location service.
func NewLocationService(source CoordinateSource, geocoder ReverseGeocoder, locations *store.LocationStore) *LocationService {
	return &LocationService{
		source:    source,
		geocoder:  geocoder,
		locations: locations,
	}
}

// ResolveCurrent acquires the current position, reverse geocodes it and
// stores the result. It cannot fail: both stages degrade to defaults.
func (s *LocationService) ResolveCurrent(ctx context.Context) models.LocationDetails {
	s.locations.SetLoading(true)
	defer s.locations.SetLoading(false)

	coords := s.source.CurrentOrDefault(ctx)
	details := s.geocoder.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	s.locations.SetLocation(details)

	return details
}

// Select applies a manually chosen forward-search candidate: its
// coordinates are reverse geocoded into a full record and stored.
func (s *LocationService) Select(ctx context.Context, candidate models.LocationSearchResult) models.LocationDetails {
	details := s.geocoder.ReverseGeocode(ctx, candidate.Latitude, candidate.Longitude)
	s.locations.SetLocation(details)
	return details
}
