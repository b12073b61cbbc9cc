package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"intown-api/internal/models"
	"intown-api/internal/store"
)

// MockCoordinateSource is a mock implementation of the CoordinateSource
// interface.
type MockCoordinateSource struct {
	mock.Mock
}

// CurrentOrDefault implements CoordinateSource.
func (m *MockCoordinateSource) CurrentOrDefault(ctx context.Context) models.Coordinates {
	args := m.Called(ctx)
	return args.Get(0).(models.Coordinates)
}

func newLocationStore(t *testing.T) *store.LocationStore {
	return store.New(store.NewFileStorage(filepath.Join(t.TempDir(), "loc.json")))
}

func TestLocationService_ResolveCurrent(t *testing.T) {
	coords := models.Coordinates{Latitude: 17.4065, Longitude: 78.4772}
	resolved := models.LocationDetails{
		Latitude:  17.4065,
		Longitude: 78.4772,
		City:      "Hyderabad",
		State:     "Telangana",
		Country:   "India",
	}

	source := new(MockCoordinateSource)
	geocoder := new(MockReverseGeocoder)
	locations := newLocationStore(t)
	service := NewLocationService(source, geocoder, locations)

	source.On("CurrentOrDefault", mock.Anything).Return(coords)
	geocoder.On("ReverseGeocode", mock.Anything, coords.Latitude, coords.Longitude).Return(resolved)

	updates := locations.Subscribe()
	result := service.ResolveCurrent(context.Background())

	assert.Equal(t, resolved, result)

	stored := locations.Location()
	require.NotNil(t, stored)
	assert.Equal(t, resolved, *stored)
	assert.False(t, locations.IsLoading())

	// Dependent components observe the update.
	select {
	case got := <-updates:
		assert.Equal(t, resolved, got)
	default:
		t.Fatal("expected a published location update")
	}

	source.AssertExpectations(t)
	geocoder.AssertExpectations(t)
}

func TestLocationService_ResolveCurrentWithFallbackCoordinates(t *testing.T) {
	// The source already degrades to the default position; the flow
	// just carries it through.
	coords := models.Coordinates{Latitude: models.DefaultLatitude, Longitude: models.DefaultLongitude}
	fallback := models.DefaultLocation(coords.Latitude, coords.Longitude)

	source := new(MockCoordinateSource)
	geocoder := new(MockReverseGeocoder)
	locations := newLocationStore(t)
	service := NewLocationService(source, geocoder, locations)

	source.On("CurrentOrDefault", mock.Anything).Return(coords)
	geocoder.On("ReverseGeocode", mock.Anything, coords.Latitude, coords.Longitude).Return(fallback)

	result := service.ResolveCurrent(context.Background())

	assert.Equal(t, models.DefaultLatitude, result.Latitude)
	assert.Equal(t, models.DefaultLongitude, result.Longitude)
	assert.Equal(t, "Hyderabad", result.City)
}

func TestLocationService_Select(t *testing.T) {
	candidate := models.LocationSearchResult{
		Name:        "Shamshabad",
		FullAddress: "Shamshabad, Ranga Reddy, Telangana, India",
		Latitude:    17.2403,
		Longitude:   78.4294,
	}
	resolved := models.LocationDetails{
		Latitude:  17.2403,
		Longitude: 78.4294,
		City:      "Shamshabad",
		State:     "Telangana",
		Country:   "India",
	}

	source := new(MockCoordinateSource)
	geocoder := new(MockReverseGeocoder)
	locations := newLocationStore(t)
	service := NewLocationService(source, geocoder, locations)

	geocoder.On("ReverseGeocode", mock.Anything, candidate.Latitude, candidate.Longitude).Return(resolved)

	result := service.Select(context.Background(), candidate)

	assert.Equal(t, resolved, result)
	stored := locations.Location()
	require.NotNil(t, stored)
	assert.Equal(t, resolved, *stored)

	// Manual selection never touches the coordinate source.
	source.AssertNotCalled(t, "CurrentOrDefault")
}
