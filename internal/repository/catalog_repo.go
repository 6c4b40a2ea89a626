package repository

import (
	"context"
	"fmt"

	"foodist_api/internal/model"
)

// CatalogRepository defines read operations for the food catalog
type CatalogRepository interface {
	FindAllItems(ctx context.Context) ([]model.CatalogItem, error)
	FindAllMeals(ctx context.Context) ([]model.MealType, error)
	FindAllCuisines(ctx context.Context) ([]model.CuisineType, error)
}

type catalogRepository struct {
	db DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// FindAllItems retrieves all catalog items with their meal and cuisine type names
func (r *catalogRepository) FindAllItems(ctx context.Context) ([]model.CatalogItem, error) {
	sql := `SELECT it.id, it.name, it.place, m.type AS meal, c.type AS cuisine, it.description, it.item_url, it.place_url
            FROM items AS it
            INNER JOIN meals AS m ON m.meal_id = it.meal_id
            INNER JOIN cuisines AS c ON c.cuisine_id = it.cuisine_id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var items []model.CatalogItem
	for rows.Next() {
		var it model.CatalogItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Place, &it.Meal, &it.Cuisine,
			&it.Description, &it.ItemURL, &it.PlaceURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item row: %w", err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog item rows: %w", err)
	}
	return items, nil
}

// FindAllMeals retrieves all meal types
func (r *catalogRepository) FindAllMeals(ctx context.Context) ([]model.MealType, error) {
	sql := `SELECT meal_id, type FROM meals ORDER BY meal_id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal types: %w", err)
	}
	defer rows.Close()

	var meals []model.MealType
	for rows.Next() {
		var m model.MealType
		if err := rows.Scan(&m.ID, &m.Type); err != nil {
			return nil, fmt.Errorf("failed to scan meal type row: %w", err)
		}
		meals = append(meals, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meal type rows: %w", err)
	}
	return meals, nil
}

// FindAllCuisines retrieves all cuisine types
func (r *catalogRepository) FindAllCuisines(ctx context.Context) ([]model.CuisineType, error) {
	sql := `SELECT cuisine_id, type FROM cuisines ORDER BY cuisine_id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query cuisine types: %w", err)
	}
	defer rows.Close()

	var cuisines []model.CuisineType
	for rows.Next() {
		var c model.CuisineType
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("failed to scan cuisine type row: %w", err)
		}
		cuisines = append(cuisines, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cuisine type rows: %w", err)
	}
	return cuisines, nil
}
