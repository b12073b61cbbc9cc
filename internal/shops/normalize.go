package shops

import (
	"encoding/json"
	"fmt"
	"strings"

	"intown-api/internal/models"
)

// The upstream schema is not stable: records arrive with varying field
// names and types. rawShop accepts every observed variant and normalize
// maps it into the one canonical Shop shape so nothing downstream has
// to read alternate fields.
type rawShop struct {
	ID               flexibleID `json:"id"`
	ShopName         string     `json:"shopName"`
	Name             string     `json:"name"`
	ContactName      string     `json:"contactName"`
	BusinessCategory string     `json:"businessCategory"`
	Category         string     `json:"category"`
	Address          string     `json:"address"`
	Phone            string     `json:"phone"`
	S3ImageURL       string     `json:"s3ImageUrl"`
	Image            string     `json:"image"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	Distance         *float64   `json:"distance"`
	Rating           *float64   `json:"rating"`
}

// flexibleID accepts both string and numeric identifiers.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("shops: unsupported id value %s", data)
	}
	*f = flexibleID(n.String())
	return nil
}

func (f flexibleID) String() string { return string(f) }

const (
	defaultCategory = "General"
	defaultRating   = 4.0
)

func (r rawShop) normalize() models.Shop {
	name := r.ShopName
	if name == "" {
		name = r.Name
	}

	category := r.BusinessCategory
	if category == "" {
		category = r.Category
	}
	if category == "" {
		category = defaultCategory
	}

	image := r.S3ImageURL
	if image == "" {
		image = r.Image
	}

	rating := defaultRating
	if r.Rating != nil {
		rating = *r.Rating
	}

	return models.Shop{
		ID:          strings.TrimSpace(r.ID.String()),
		Name:        name,
		ContactName: r.ContactName,
		Category:    category,
		Address:     r.Address,
		Phone:       r.Phone,
		ImageURL:    image,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		DistanceKm:  r.Distance,
		Rating:      rating,
	}
}
