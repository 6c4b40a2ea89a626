package service

import (
	"context"
	"fmt"
	"math/rand"

	"foodist_api/internal/model"
	"foodist_api/internal/repository"
)

// CatalogService provides read access to the food catalog
type CatalogService interface {
	GetItems(ctx context.Context) ([]model.CatalogItem, error)
	GetMeals(ctx context.Context) ([]model.MealType, error)
	GetCuisines(ctx context.Context) ([]model.CuisineType, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

// GetItems returns all catalog items with engagement counters attached
func (s *catalogService) GetItems(ctx context.Context) ([]model.CatalogItem, error) {
	items, err := s.repo.FindAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog items from repo: %w", err)
	}

	// TODO: replace random counters with real engagement tracking
	for i := range items {
		items[i].Viewed = rand.Intn(201)
		items[i].Saved = rand.Intn(31)
		items[i].Tried = rand.Intn(81)
	}
	return items, nil
}

// GetMeals returns all meal types
func (s *catalogService) GetMeals(ctx context.Context) ([]model.MealType, error) {
	meals, err := s.repo.FindAllMeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal types from repo: %w", err)
	}
	return meals, nil
}

// GetCuisines returns all cuisine types
func (s *catalogService) GetCuisines(ctx context.Context) ([]model.CuisineType, error) {
	cuisines, err := s.repo.FindAllCuisines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cuisine types from repo: %w", err)
	}
	return cuisines, nil
}
