package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/motoparts/internal/catalog/domain"
)

func TestCategoryRepositoryAssignsIDAndListsInOrder(t *testing.T) {
	repo := NewCategoryRepository()
	ctx := context.Background()

	first := &domain.Category{Name: "Engine & Performance", Slug: "engine-performance"}
	second := &domain.Category{Name: "Electrical & Lighting", Slug: "electrical-lighting"}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "engine-performance", all[0].Slug)
	assert.Equal(t, "electrical-lighting", all[1].Slug)
}

func TestCategoryRepositoryGetBySlug(t *testing.T) {
	repo := NewCategoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &domain.Category{Name: "Brakes", Slug: "brakes-suspension"}))

	found, err := repo.GetBySlug(ctx, "brakes-suspension")
	require.NoError(t, err)
	assert.Equal(t, "Brakes", found.Name)

	_, err = repo.GetBySlug(ctx, "no-such-category")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductRepositoryGetByIDAndSlug(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	p := &domain.Product{Name: "Raider 150 Piston Kit", Slug: "raider-150-piston-kit", Price: 750, CategoryID: 1, InStock: true}
	require.NoError(t, repo.Save(ctx, p))

	byID, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Slug, byID.Slug)

	bySlug, err := repo.GetBySlug(ctx, "raider-150-piston-kit")
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySlug.ID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = repo.GetBySlug(ctx, "no-such-product")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepositoryListAppliesFilter(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	featured := true
	catEngine := uint(1)

	require.NoError(t, repo.Save(ctx, &domain.Product{Name: "NGK C7HSA Sparkplug", Slug: "ngk-c7hsa", CategoryID: 1, InStock: true, IsFeatured: true}))
	require.NoError(t, repo.Save(ctx, &domain.Product{Name: "Barako 175 Piston Kit", Slug: "barako-175", CategoryID: 1, InStock: true}))
	require.NoError(t, repo.Save(ctx, &domain.Product{Name: "Motolite Battery", Slug: "motolite-battery", CategoryID: 2, InStock: false, IsFeatured: true}))

	byCategory, err := repo.List(ctx, domain.ProductFilter{CategoryID: &catEngine})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byFeatured, err := repo.List(ctx, domain.ProductFilter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, byFeatured, 2)
	assert.Equal(t, "ngk-c7hsa", byFeatured[0].Slug)
	assert.Equal(t, "motolite-battery", byFeatured[1].Slug)

	bySearch, err := repo.List(ctx, domain.ProductFilter{Search: "piston"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "barako-175", bySearch[0].Slug)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestProductRepositorySaveUpdatesExisting(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	p := &domain.Product{Name: "Mio i 125 Piston Kit", Slug: "mio-i-125-piston-kit", Price: 400, InStock: true}
	require.NoError(t, repo.Save(ctx, p))

	p.InStock = false
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.InStock)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTestimonialRepositoryListsInOrder(t *testing.T) {
	repo := NewTestimonialRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &domain.Testimonial{Name: "Carlos", Rating: 5, Text: "Fast delivery"}))
	require.NoError(t, repo.Save(ctx, &domain.Testimonial{Name: "Miguel", Rating: 4, Text: "Good prices"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Carlos", all[0].Name)
	assert.Equal(t, "Miguel", all[1].Name)
}
