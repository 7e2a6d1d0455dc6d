package recipe

import (
	"context"
	"strings"
	"testing"

	domain "github.com/resepmakanan/v1/internal/domain/recipe"
	"github.com/resepmakanan/v1/internal/infrastructure/persistence/memory"
	"github.com/resepmakanan/v1/internal/ports/inbound"
	"github.com/resepmakanan/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// BrowseTestSuite exercises the filter/sort engine against the seeded
// catalog
type BrowseTestSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func (suite *BrowseTestSuite) SetupTest() {
	repo, err := memory.NewRecipeRepository(zap.NewNop())
	require.NoError(suite.T(), err)

	suite.service = NewService(repo, zap.NewNop())
	suite.ctx = context.Background()
}

func (suite *BrowseTestSuite) TestDefaultQueryReturnsWholeCatalog() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 10)
}

func (suite *BrowseTestSuite) TestSearchMatchesCuisineLabel() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Search: "indonesia"})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), results, 3)
	for _, r := range results {
		assert.Equal(suite.T(), domain.CuisineIndonesia, r.Cuisine)
	}
}

func (suite *BrowseTestSuite) TestSearchMatchesIngredientNames() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Search: "santan"})
	require.NoError(suite.T(), err)

	require.NotEmpty(suite.T(), results)
	for _, r := range results {
		found := false
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing.Item), "santan") {
				found = true
				break
			}
		}
		assert.True(suite.T(), found, "recipe %s should list santan", r.ID)
	}
}

func (suite *BrowseTestSuite) TestSearchIsCaseInsensitive() {
	lower, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Search: "rendang"})
	require.NoError(suite.T(), err)
	upper, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Search: "RENDANG"})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), lower, upper)
	require.NotEmpty(suite.T(), lower)
}

func (suite *BrowseTestSuite) TestCategoryFilter() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Category: "makan-utama"})
	require.NoError(suite.T(), err)

	require.NotEmpty(suite.T(), results)
	for _, r := range results {
		assert.Equal(suite.T(), "makan-utama", r.Category)
	}
}

func (suite *BrowseTestSuite) TestUnknownCategoryReturnsNothing() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Category: "tidak-ada"})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *BrowseTestSuite) TestSortNewest() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Sort: SortNewest})
	require.NoError(suite.T(), err)

	for i := 1; i < len(results); i++ {
		assert.False(suite.T(), results[i].CreatedAt.After(results[i-1].CreatedAt),
			"results must be ordered newest first")
	}
}

func (suite *BrowseTestSuite) TestSortPopularOrdersByReviews() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Sort: SortPopular})
	require.NoError(suite.T(), err)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(suite.T(), results[i-1].Reviews, results[i].Reviews)
	}
}

func (suite *BrowseTestSuite) TestSortRating() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Sort: SortRating})
	require.NoError(suite.T(), err)

	require.NotEmpty(suite.T(), results)
	assert.Equal(suite.T(), "rendang-daging-sapi", results[0].ID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(suite.T(), results[i-1].Rating, results[i].Rating)
	}
}

func (suite *BrowseTestSuite) TestSortAlphabetIsNonDecreasing() {
	results, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Sort: SortAlphabet})
	require.NoError(suite.T(), err)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(suite.T(),
			suite.service.collator.CompareString(results[i-1].Title, results[i].Title), 0)
	}
}

func (suite *BrowseTestSuite) TestUnknownSortBehavesAsNewest() {
	unknown, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Sort: "banana"})
	require.NoError(suite.T(), err)
	newest, err := suite.service.Browse(suite.ctx, inbound.BrowseQuery{Sort: SortNewest})
	require.NoError(suite.T(), err)

	require.Equal(suite.T(), len(newest), len(unknown))
	for i := range newest {
		assert.Equal(suite.T(), newest[i].ID, unknown[i].ID)
	}
}

func (suite *BrowseTestSuite) TestBrowseIsDeterministic() {
	q := inbound.BrowseQuery{Category: "makan-utama", Search: "ayam", Sort: SortRating}

	first, err := suite.service.Browse(suite.ctx, q)
	require.NoError(suite.T(), err)
	second, err := suite.service.Browse(suite.ctx, q)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

func TestBrowseTestSuite(t *testing.T) {
	suite.Run(t, new(BrowseTestSuite))
}

func TestGetByID(t *testing.T) {
	repo, err := memory.NewRecipeRepository(zap.NewNop())
	require.NoError(t, err)
	service := NewService(repo, zap.NewNop())

	found, err := service.GetByID(context.Background(), "sate-ayam-madura")
	require.NoError(t, err)
	assert.Equal(t, "Sate Ayam Madura", found.Title)

	_, err = service.GetByID(context.Background(), "tidak-ada")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRelatedExcludesSelfAndOtherCategories(t *testing.T) {
	repo, err := memory.NewRecipeRepository(zap.NewNop())
	require.NoError(t, err)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	self, err := service.GetByID(ctx, "rendang-daging-sapi")
	require.NoError(t, err)

	related, err := service.Related(ctx, self, 3)
	require.NoError(t, err)

	assert.Len(t, related, 3)
	for _, r := range related {
		assert.NotEqual(t, self.ID, r.ID)
		assert.Equal(t, self.Category, r.Category)
	}
}

func TestFeaturedReturnsOnlyPopular(t *testing.T) {
	repo, err := memory.NewRecipeRepository(zap.NewNop())
	require.NoError(t, err)
	service := NewService(repo, zap.NewNop())

	featured, err := service.Featured(context.Background(), 5)
	require.NoError(t, err)

	assert.Len(t, featured, 5)
	for _, r := range featured {
		assert.True(t, r.IsPopular)
	}
}

// stubRepo serves a fixed recipe list in insertion order
type stubRepo struct {
	recipes []*domain.Recipe
}

func (s *stubRepo) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	for _, r := range s.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (s *stubRepo) FindAll(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes, nil
}

func (s *stubRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

func TestSortTiesKeepCatalogOrder(t *testing.T) {
	// three recipes with identical ratings must come back in catalog
	// order regardless of the requested sort
	repo := &stubRepo{recipes: []*domain.Recipe{
		testutils.NewRecipeBuilder(1).WithID("a").WithRating(4.5, 100).Build(),
		testutils.NewRecipeBuilder(2).WithID("b").WithRating(4.5, 100).Build(),
		testutils.NewRecipeBuilder(3).WithID("c").WithRating(4.5, 100).Build(),
	}}
	service := NewService(repo, zap.NewNop())

	for _, sortKey := range []string{SortRating, SortPopular} {
		results, err := service.Browse(context.Background(), inbound.BrowseQuery{Sort: sortKey})
		require.NoError(t, err, sortKey)
		require.Len(t, results, 3)
		assert.Equal(t, "a", results[0].ID)
		assert.Equal(t, "b", results[1].ID)
		assert.Equal(t, "c", results[2].ID)
	}
}

func TestByCuisine(t *testing.T) {
	repo, err := memory.NewRecipeRepository(zap.NewNop())
	require.NoError(t, err)
	service := NewService(repo, zap.NewNop())

	picks, err := service.ByCuisine(context.Background(), domain.CuisineIndonesia, 6)
	require.NoError(t, err)

	assert.Len(t, picks, 3)
	for _, r := range picks {
		assert.Equal(t, domain.CuisineIndonesia, r.Cuisine)
	}
}
