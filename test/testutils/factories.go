// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/resepmakanan/v1/internal/domain/recipe"
)

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	faker  *gofakeit.Faker
	recipe recipe.Recipe
}

// NewRecipeBuilder creates a recipe builder seeded with valid defaults.
// The seed keeps generated filler deterministic across runs.
func NewRecipeBuilder(seed int64) *RecipeBuilder {
	faker := gofakeit.New(seed)

	return &RecipeBuilder{
		faker: faker,
		recipe: recipe.Recipe{
			ID:          fmt.Sprintf("test-recipe-%d", seed),
			Title:       "Resep " + faker.Word(),
			Description: faker.Sentence(8),
			Thumbnail:   "https://example.com/" + faker.Word() + ".jpg",
			Rating:      4.0,
			Reviews:     faker.Number(1, 500),
			PrepTime:    15,
			CookTime:    30,
			Servings:    4,
			Difficulty:  recipe.DifficultyPemula,
			Cuisine:     recipe.CuisineIndonesia,
			Category:    "makan-utama",
			Tags:        []string{"uji"},
			Ingredients: []recipe.Ingredient{
				{Item: "ayam", Amount: 500, Unit: "g", PrepTimeSeconds: 300},
				{Item: "bawang merah", Amount: 50, Unit: "g", PrepTimeSeconds: 120},
			},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Siapkan semua bahan."},
				{Step: 2, Text: "Masak hingga matang.", TimerSeconds: 900},
			},
			Nutrition: recipe.Nutrition{Calories: 450, Protein: 30, Carbs: 20, Fat: 25},
			CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets the recipe identifier
func (rb *RecipeBuilder) WithID(id string) *RecipeBuilder {
	rb.recipe.ID = id
	return rb
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.recipe.Title = title
	return rb
}

// WithCategory sets the recipe category
func (rb *RecipeBuilder) WithCategory(category string) *RecipeBuilder {
	rb.recipe.Category = category
	return rb
}

// WithCuisine sets the cuisine tag
func (rb *RecipeBuilder) WithCuisine(cuisine recipe.Cuisine) *RecipeBuilder {
	rb.recipe.Cuisine = cuisine
	return rb
}

// WithRating sets the rating and review count
func (rb *RecipeBuilder) WithRating(rating float64, reviews int) *RecipeBuilder {
	rb.recipe.Rating = rating
	rb.recipe.Reviews = reviews
	return rb
}

// WithPopular marks the recipe as popular
func (rb *RecipeBuilder) WithPopular(popular bool) *RecipeBuilder {
	rb.recipe.IsPopular = popular
	return rb
}

// WithCreatedAt sets the catalog timestamp
func (rb *RecipeBuilder) WithCreatedAt(t time.Time) *RecipeBuilder {
	rb.recipe.CreatedAt = t
	return rb
}

// WithIngredients replaces the ingredient list
func (rb *RecipeBuilder) WithIngredients(ingredients ...recipe.Ingredient) *RecipeBuilder {
	rb.recipe.Ingredients = ingredients
	return rb
}

// WithInstructions replaces the instruction list
func (rb *RecipeBuilder) WithInstructions(instructions ...recipe.Instruction) *RecipeBuilder {
	rb.recipe.Instructions = instructions
	return rb
}

// Build returns the assembled recipe
func (rb *RecipeBuilder) Build() *recipe.Recipe {
	r := rb.recipe
	return &r
}
