// Package outbound defines interfaces for driven adapters
package outbound

import (
	"context"

	"github.com/resepmakanan/v1/internal/domain/recipe"
)

// RecipeRepository provides read access to the recipe catalog.
// The catalog is loaded once at process start and is read-only.
type RecipeRepository interface {
	FindByID(ctx context.Context, id string) (*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
	Categories(ctx context.Context) ([]recipe.Category, error)
}

// TextGenerator is the outbound port to a hosted text-generation
// service. Each call is independent; no conversation history is sent.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
