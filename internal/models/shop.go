package models

import (
	"fmt"
	"math"
)

// Shop is the canonical merchant record. External search responses are
// normalized into this shape at the client boundary; the repository
// produces it directly.
type Shop struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ContactName string   `json:"contact_name,omitempty"`
	Category    string   `json:"category"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price,omitempty"`
	Savings     float64  `json:"savings,omitempty"`
}

// FormatDistance renders a distance in kilometers the way shop lists
// display it: metres under one kilometer, two decimals above, and
// "Nearby" when the distance is unknown.
func FormatDistance(distanceKm *float64) string {
	if distanceKm == nil || math.IsNaN(*distanceKm) || math.IsInf(*distanceKm, 0) {
		return "Nearby"
	}
	if *distanceKm < 1 {
		return fmt.Sprintf("%d m", int(math.Round(*distanceKm*1000)))
	}
	return fmt.Sprintf("%.2f km", *distanceKm)
}
