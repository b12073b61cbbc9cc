package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"intown-api/internal/models"
)

// MockForwardGeocoder is a mock implementation of the ForwardGeocoder
// interface.
type MockForwardGeocoder struct {
	mock.Mock
}

// Search implements ForwardGeocoder.
func (m *MockForwardGeocoder) Search(ctx context.Context, query string) ([]models.LocationSearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.LocationSearchResult), args.Error(1)
}

func TestGeoCodeService_Search(t *testing.T) {
	charminar := models.LocationSearchResult{
		Name:        "Charminar",
		FullAddress: "Charminar, Hyderabad, Telangana, India",
		Latitude:    17.3616,
		Longitude:   78.4747,
	}

	tests := []struct {
		name        string
		query       string
		skipsCall   bool
		mockResults []models.LocationSearchResult
		mockError   error
		expected    []models.LocationSearchResult
	}{
		{
			name:      "empty query",
			query:     "",
			skipsCall: true,
			expected:  []models.LocationSearchResult{},
		},
		{
			name:      "two character query",
			query:     "hy",
			skipsCall: true,
			expected:  []models.LocationSearchResult{},
		},
		{
			name:      "whitespace padded short query",
			query:     "  hy  ",
			skipsCall: true,
			expected:  []models.LocationSearchResult{},
		},
		{
			name:        "successful search",
			query:       "charminar",
			mockResults: []models.LocationSearchResult{charminar},
			expected:    []models.LocationSearchResult{charminar},
		},
		{
			name:        "no matches",
			query:       "nonexistent place",
			mockResults: []models.LocationSearchResult{},
			expected:    []models.LocationSearchResult{},
		},
		{
			name:        "provider failure degrades to empty",
			query:       "charminar",
			mockResults: nil,
			mockError:   assert.AnError,
			expected:    []models.LocationSearchResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGeocoder := new(MockForwardGeocoder)
			service := NewGeoCodeService(mockGeocoder)

			if !tt.skipsCall {
				mockGeocoder.On("Search", mock.Anything, tt.query).Return(tt.mockResults, tt.mockError)
			}

			result := service.Search(context.Background(), tt.query)

			assert.Equal(t, tt.expected, result)
			mockGeocoder.AssertExpectations(t)
			if tt.skipsCall {
				mockGeocoder.AssertNotCalled(t, "Search")
			}
		})
	}
}
