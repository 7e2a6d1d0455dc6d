// Package recipe implements the catalog browsing use cases: the
// filter/sort engine behind the list view plus detail lookups.
package recipe

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/resepmakanan/v1/internal/domain/recipe"
	"github.com/resepmakanan/v1/internal/ports/inbound"
	"github.com/resepmakanan/v1/internal/ports/outbound"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by Browse. Anything else behaves as SortNewest.
const (
	SortNewest   = "newest"
	SortPopular  = "popular"
	SortRating   = "rating"
	SortAlphabet = "alphabet"
)

// Service implements inbound.RecipeService on top of the read-only
// catalog repository. Browse results are memoized on the input tuple;
// the catalog never changes after load, so entries are never evicted.
type Service struct {
	repo     outbound.RecipeRepository
	logger   *zap.Logger
	collator *collate.Collator

	mu    sync.RWMutex
	cache map[inbound.BrowseQuery][]*recipe.Recipe
}

// NewService creates a new catalog browsing service
func NewService(repo outbound.RecipeRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger,
		collator: collate.New(language.Indonesian),
		cache:    make(map[inbound.BrowseQuery][]*recipe.Recipe),
	}
}

// Browse filters and sorts the catalog. A recipe is included when its
// category matches the selector (or the selector is "all") and the
// query is a case-insensitive substring of its title, any ingredient
// name, or its cuisine label. An empty query matches everything.
func (s *Service) Browse(ctx context.Context, q inbound.BrowseQuery) ([]*recipe.Recipe, error) {
	if q.Category == "" {
		q.Category = recipe.CategoryAll
	}

	s.mu.RLock()
	cached, ok := s.cache[q]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	matched := make([]*recipe.Recipe, 0, len(all))
	for _, r := range all {
		if !matchesCategory(r, q.Category) {
			continue
		}
		if !matchesSearch(r, needle) {
			continue
		}
		matched = append(matched, r)
	}

	s.sortRecipes(matched, q.Sort)

	s.mu.Lock()
	s.cache[q] = matched
	s.mu.Unlock()

	s.logger.Debug("catalog browse",
		zap.String("category", q.Category),
		zap.String("search", q.Search),
		zap.String("sort", q.Sort),
		zap.Int("results", len(matched)),
	)

	return matched, nil
}

func matchesCategory(r *recipe.Recipe, category string) bool {
	return category == recipe.CategoryAll || r.Category == category
}

func matchesSearch(r *recipe.Recipe, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Item), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(string(r.Cuisine)), needle)
}

// sortRecipes orders the filtered list in place. Ties keep the
// catalog's iteration order (stable sort).
func (s *Service) sortRecipes(list []*recipe.Recipe, key string) {
	switch key {
	case SortPopular:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Reviews > list[j].Reviews
		})
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	case SortAlphabet:
		sort.SliceStable(list, func(i, j int) bool {
			return s.collator.CompareString(list[i].Title, list[j].Title) < 0
		})
	default:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}
}

// GetByID looks up a single recipe
func (s *Service) GetByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

// Related returns up to limit recipes sharing the category, excluding
// the recipe itself
func (s *Service) Related(ctx context.Context, r *recipe.Recipe, limit int) ([]*recipe.Recipe, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	related := make([]*recipe.Recipe, 0, limit)
	for _, candidate := range all {
		if candidate.ID == r.ID || candidate.Category != r.Category {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

// Featured returns up to limit recipes flagged as popular
func (s *Service) Featured(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]*recipe.Recipe, 0, limit)
	for _, r := range all {
		if !r.IsPopular {
			continue
		}
		featured = append(featured, r)
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

// ByCuisine returns up to limit recipes for a cuisine tag
func (s *Service) ByCuisine(ctx context.Context, cuisine recipe.Cuisine, limit int) ([]*recipe.Recipe, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	picks := make([]*recipe.Recipe, 0, limit)
	for _, r := range all {
		if r.Cuisine != cuisine {
			continue
		}
		picks = append(picks, r)
		if len(picks) == limit {
			break
		}
	}
	return picks, nil
}

// Categories returns the static category reference data
func (s *Service) Categories(ctx context.Context) ([]recipe.Category, error) {
	return s.repo.Categories(ctx)
}

var _ inbound.RecipeService = (*Service)(nil)
