package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"intown-api/internal/models"
)

// Repository implements the backend's catalog queries on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ShopsNear returns shops around the given coordinates, closest first,
// optionally filtered by category. Distances are reported in kilometers.
func (r *Repository) ShopsNear(ctx context.Context, lat, lon float64, category string) ([]models.Shop, error) {
	sql := `
		SELECT
			id,
			name,
			category,
			address,
			phone,
			image_url,
			price,
			savings,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude,
			ST_Distance(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography) / 1000.0 as distance_km
		FROM shops
		WHERE ($3 = '' OR LOWER(category) = LOWER($3))
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
	`

	rows, err := r.db.Query(ctx, sql, lat, lon, category)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query shops: %w", err)
	}
	defer rows.Close()

	var result []models.Shop
	for rows.Next() {
		var shop models.Shop
		var distance float64
		err := rows.Scan(
			&shop.ID,
			&shop.Name,
			&shop.Category,
			&shop.Address,
			&shop.Phone,
			&shop.ImageURL,
			&shop.Price,
			&shop.Savings,
			&shop.Latitude,
			&shop.Longitude,
			&distance,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan shop: %w", err)
		}
		shop.DistanceKm = &distance
		shop.Rating = 4.0
		result = append(result, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating shops: %w", err)
	}

	return result, nil
}

// Plans returns all subscription plans, cheapest first.
func (r *Repository) Plans(ctx context.Context) ([]models.Plan, error) {
	sql := `
		SELECT id, name, price_per_month, benefits, savings
		FROM plans
		ORDER BY price_per_month ASC
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query plans: %w", err)
	}
	defer rows.Close()

	var result []models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.PricePerMonth, &plan.Benefits, &plan.Savings); err != nil {
			return nil, fmt.Errorf("repository: failed to scan plan: %w", err)
		}
		result = append(result, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating plans: %w", err)
	}

	return result, nil
}

// Categories returns all merchant categories in display order.
func (r *Repository) Categories(ctx context.Context) ([]models.Category, error) {
	sql := `
		SELECT id, name, icon
		FROM categories
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query categories: %w", err)
	}
	defer rows.Close()

	var result []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Icon); err != nil {
			return nil, fmt.Errorf("repository: failed to scan category: %w", err)
		}
		result = append(result, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating categories: %w", err)
	}

	return result, nil
}
