package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"intown-api/internal/models"
	"intown-api/internal/shops"
)

// SearchHandler serves merchant search against the external API with
// the nearby-shops fallback applied.
type SearchHandler struct {
	finder ShopFinder
}

// Finder interface for dependency injection.
type ShopFinder interface {
	FindByProduct(ctx context.Context, query string, lat, lon float64) shops.Result
	FindByCategory(ctx context.Context, categoryID string, lat, lon float64) shops.Result
	Nearby(ctx context.Context, lat, lon float64) shops.Result
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(finder ShopFinder) *SearchHandler {
	return &SearchHandler{finder: finder}
}

// Search handles GET /api/search requests. One of 'query' or
// 'category' selects the search mode; with neither, the broad nearby
// search runs.
func (h *SearchHandler) Search(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	var result shops.Result
	switch {
	case c.Query("query") != "":
		result = h.finder.FindByProduct(c.Request.Context(), c.Query("query"), lat, lng)
	case c.Query("category") != "":
		result = h.finder.FindByCategory(c.Request.Context(), c.Query("category"), lat, lng)
	default:
		result = h.finder.Nearby(c.Request.Context(), lat, lng)
	}

	// Failures degrade to an empty list for the client; the shops
	// field is always present.
	list := result.Shops
	if list == nil {
		list = []models.Shop{}
	}
	c.JSON(http.StatusOK, gin.H{"shops": list})
}
