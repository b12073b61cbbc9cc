package service

import (
	"context"
	"fmt"

	"intown-api/internal/models"
)

// ShopService contains the business logic for the backend's own shop
// catalog.
type ShopService struct {
	repo CatalogRepository
}

// CatalogRepository interface for dependency injection.
type CatalogRepository interface {
	ShopsNear(ctx context.Context, lat, lon float64, category string) ([]models.Shop, error)
	Plans(ctx context.Context) ([]models.Plan, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// NewShopService creates a new shop service.
func NewShopService(repo CatalogRepository) *ShopService {
	return &ShopService{repo: repo}
}

// Shops returns shops near the given coordinates sorted by distance,
// optionally filtered by category.
func (s *ShopService) Shops(ctx context.Context, lat, lon float64, category string) ([]models.Shop, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: invalid longitude: %f", lon)
	}

	result, err := s.repo.ShopsNear(ctx, lat, lon, category)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch shops: %w", err)
	}

	return result, nil
}

// Plans returns every subscription plan.
func (s *ShopService) Plans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.repo.Plans(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch plans: %w", err)
	}
	return plans, nil
}

// Categories returns every merchant category.
func (s *ShopService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch categories: %w", err)
	}
	return categories, nil
}
