// Package inbound defines interfaces for driving adapters
package inbound

import (
	"context"

	"github.com/resepmakanan/v1/internal/domain/recipe"
)

// BrowseQuery carries the list view's filtering state. Category and
// Search arrive as URL query parameters; Sort is one of newest,
// popular, rating or alphabet (unknown values behave as newest).
type BrowseQuery struct {
	Category string
	Search   string
	Sort     string
}

// RecipeService defines the catalog browsing use cases
type RecipeService interface {
	Browse(ctx context.Context, q BrowseQuery) ([]*recipe.Recipe, error)
	GetByID(ctx context.Context, id string) (*recipe.Recipe, error)
	Related(ctx context.Context, r *recipe.Recipe, limit int) ([]*recipe.Recipe, error)
	Featured(ctx context.Context, limit int) ([]*recipe.Recipe, error)
	ByCuisine(ctx context.Context, cuisine recipe.Cuisine, limit int) ([]*recipe.Recipe, error)
	Categories(ctx context.Context) ([]recipe.Category, error)
}
