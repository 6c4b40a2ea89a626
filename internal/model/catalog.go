package model

// CatalogItem is a read-only row from the items catalog, joined with
// its meal and cuisine type names.
type CatalogItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Place       string `json:"place"`
	Meal        string `json:"meal"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
	ItemURL     string `json:"itemurl"`
	PlaceURL    string `json:"placeurl"`

	// Engagement counters. TODO: replace with real tracking, currently
	// placeholder values.
	Viewed int `json:"viewed"`
	Saved  int `json:"saved"`
	Tried  int `json:"tried"`
}

// MealType is a meal category (breakfast, lunch, ...)
type MealType struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CuisineType is a cuisine category
type CuisineType struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
