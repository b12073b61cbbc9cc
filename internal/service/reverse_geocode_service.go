package service

import (
	"context"
	"fmt"

	"intown-api/internal/models"
)

// ReverseGeoCodeService contains the business logic for reverse
// geocoding.
type ReverseGeoCodeService struct {
	geocoder ReverseGeocoder
}

// ReverseGeocoder interface for dependency injection.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) models.LocationDetails
}

// NewReverseGeoCodeService creates a new reverse geo code service.
func NewReverseGeoCodeService(geocoder ReverseGeocoder) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{geocoder: geocoder}
}

// ReverseGeocode resolves the given coordinates into a populated
// LocationDetails record. Only out-of-range coordinates produce an
// error; provider failures are absorbed by the geocoder's fallback.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (models.LocationDetails, error) {
	if lat < -90 || lat > 90 {
		return models.LocationDetails{}, fmt.Errorf("service: invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return models.LocationDetails{}, fmt.Errorf("service: invalid longitude: %f", lon)
	}

	return s.geocoder.ReverseGeocode(ctx, lat, lon), nil
}
