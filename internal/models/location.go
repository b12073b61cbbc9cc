package models

// DefaultLatitude and DefaultLongitude point at Hyderabad, the city every
// location flow falls back to when a real position cannot be determined.
const (
	DefaultLatitude  = 17.385
	DefaultLongitude = 78.4867
	DefaultCountry   = "India"
)

// LocationDetails represents a resolved, human-readable user location.
// Latitude and longitude are always populated; the textual fields degrade
// to the empty string when a geocoder could not supply them.
type LocationDetails struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Area        string  `json:"area"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Pincode     string  `json:"pincode"`
	FullAddress string  `json:"full_address"`
}

// DefaultLocation returns the Hyderabad fallback record carrying the given
// coordinates, so the numeric position stays accurate even when the
// descriptive fields could not be resolved.
func DefaultLocation(lat, lon float64) LocationDetails {
	return LocationDetails{
		Latitude:    lat,
		Longitude:   lon,
		City:        "Hyderabad",
		State:       "Telangana",
		Country:     DefaultCountry,
		FullAddress: "Hyderabad, Telangana, India",
	}
}

// LocationSearchResult is a forward-search candidate. It only lives for
// the duration of a search interaction and is never persisted.
type LocationSearchResult struct {
	Name        string  `json:"name"`
	FullAddress string  `json:"full_address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Coordinates is a bare latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
