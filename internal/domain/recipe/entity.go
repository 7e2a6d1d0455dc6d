// Package recipe contains the core domain model for the recipe catalog.
// Catalog recipes are constructed once at load time and treated as
// immutable by every read path.
package recipe

import "time"

// Difficulty represents how demanding a recipe is to cook
type Difficulty string

const (
	DifficultyPemula   Difficulty = "Pemula"
	DifficultyMenengah Difficulty = "Menengah"
	DifficultyAhli     Difficulty = "Ahli"
)

// Cuisine is one of the fixed cuisine tags
type Cuisine string

const (
	CuisineIndonesia Cuisine = "Indonesia"
	CuisineAsia      Cuisine = "Asia"
	CuisineEropa     Cuisine = "Eropa"
	CuisineAmerika   Cuisine = "Amerika"
	CuisineVegan     Cuisine = "Vegan"
	CuisineHealthy   Cuisine = "Healthy"
)

// Recipe represents a single entry in the recipe catalog
type Recipe struct {
	ID           string
	Title        string
	Description  string
	Thumbnail    string
	Rating       float64
	Reviews      int
	PrepTime     int // minutes
	CookTime     int // minutes
	Servings     int
	Difficulty   Difficulty
	Cuisine      Cuisine
	Category     string
	Tags         []string
	Ingredients  []Ingredient
	Instructions []Instruction
	Nutrition    Nutrition
	VideoURL     string
	IsPopular    bool
	CreatedAt    time.Time
}

// TotalTime returns preparation plus cooking time in minutes
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// ScaledServings returns the serving count for a given multiplier
func (r *Recipe) ScaledServings(multiplier int) int {
	if multiplier < 1 {
		multiplier = 1
	}
	return r.Servings * multiplier
}

// Validate checks the catalog invariants for a recipe
func (r *Recipe) Validate() error {
	if len(r.Title) < 3 {
		return ErrTitleTooShort
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return ErrNegativeTime
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	if len(r.Instructions) == 0 {
		return ErrNoInstructions
	}
	for i, ins := range r.Instructions {
		if ins.Step != i+1 {
			return ErrStepsNotContiguous
		}
	}
	return nil
}

// Category is static reference data describing a recipe grouping
type Category struct {
	ID   string
	Name string
	Icon string
}

// CategoryAll is the sentinel selector matching every category
const CategoryAll = "all"
