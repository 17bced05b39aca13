package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/motoparts/internal/catalog/domain"
	"github.com/wyfcoding/motoparts/internal/catalog/infrastructure/persistence/memory"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	categories := memory.NewCategoryRepository()
	products := memory.NewProductRepository()
	testimonials := memory.NewTestimonialRepository()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, categories, products, testimonials))

	cats, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 10)

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), count)

	reviews, err := testimonials.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 4)
}

func TestSeedSkipsWhenProductsExist(t *testing.T) {
	categories := memory.NewCategoryRepository()
	products := memory.NewProductRepository()
	testimonials := memory.NewTestimonialRepository()
	ctx := context.Background()

	require.NoError(t, products.Save(ctx, &domain.Product{Name: "Existing", Slug: "existing", Price: 1}))

	require.NoError(t, Seed(ctx, categories, products, testimonials))

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	cats, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestSeedLinksProductsToSeededCategories(t *testing.T) {
	categories := memory.NewCategoryRepository()
	products := memory.NewProductRepository()
	testimonials := memory.NewTestimonialRepository()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, categories, products, testimonials))

	engine, err := categories.GetBySlug(ctx, "engine-transmission")
	require.NoError(t, err)

	all, err := products.List(ctx, domain.ProductFilter{CategoryID: &engine.ID})
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
