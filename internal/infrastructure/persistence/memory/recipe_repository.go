// Package memory provides the in-memory recipe catalog. The catalog
// is seeded once at construction and read-only afterwards.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/resepmakanan/v1/internal/domain/recipe"
	"github.com/resepmakanan/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// RecipeRepository implements outbound.RecipeRepository over static
// mock content.
type RecipeRepository struct {
	mutex      sync.RWMutex
	recipes    map[string]*recipe.Recipe
	order      []string // catalog iteration order
	categories []recipe.Category
}

// NewRecipeRepository creates the catalog from the built-in seed data.
// Every seeded recipe is validated; a broken seed is a programming
// error and fails startup.
func NewRecipeRepository(logger *zap.Logger) (*RecipeRepository, error) {
	repo := &RecipeRepository{
		recipes:    make(map[string]*recipe.Recipe),
		categories: seedCategories(),
	}

	for _, r := range seedRecipes() {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed recipe %q: %w", r.ID, err)
		}
		if _, exists := repo.recipes[r.ID]; exists {
			return nil, fmt.Errorf("duplicate seed recipe id %q", r.ID)
		}
		repo.recipes[r.ID] = r
		repo.order = append(repo.order, r.ID)
	}

	logger.Info("recipe catalog loaded",
		zap.Int("recipes", len(repo.order)),
		zap.Int("categories", len(repo.categories)),
	)

	return repo, nil
}

// FindByID looks up a recipe by its identifier
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	found, ok := r.recipes[id]
	if !ok {
		return nil, recipe.ErrRecipeNotFound
	}
	return found, nil
}

// FindAll returns every recipe in catalog iteration order
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]*recipe.Recipe, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.recipes[id])
	}
	return out, nil
}

// Categories returns the static category reference data
func (r *RecipeRepository) Categories(ctx context.Context) ([]recipe.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]recipe.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

var _ outbound.RecipeRepository = (*RecipeRepository)(nil)
