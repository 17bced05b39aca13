package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/motoparts/internal/catalog"
	"github.com/wyfcoding/motoparts/internal/catalog/application"
	"github.com/wyfcoding/motoparts/internal/catalog/domain"
	"github.com/wyfcoding/motoparts/internal/catalog/infrastructure/persistence/memory"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	categories := memory.NewCategoryRepository()
	products := memory.NewProductRepository()
	testimonials := memory.NewTestimonialRepository()
	require.NoError(t, catalog.Seed(context.Background(), categories, products, testimonials))

	r := gin.New()
	NewCatalogHandler(application.NewService(categories, products, testimonials)).RegisterRoutes(r.Group("/api"))
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 10)
	assert.Equal(t, "engine-transmission", categories[0].Slug)
}

func TestGetCategoryBySlug(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/categories/engine-transmission")
	require.Equal(t, http.StatusOK, w.Code)

	var category domain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	assert.Equal(t, "Engine & Transmission", category.Name)
}

func TestGetCategoryNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/categories/no-such-category")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Category not found"}`, w.Body.String())
}

func TestListProductsUnfiltered(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 15)
}

func TestListProductsByCategory(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/products?categoryId=1")
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, uint(1), p.CategoryID)
	}
}

func TestListProductsInvalidCategoryID(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/products?categoryId=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProductsBySearch(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/products?search=piston")
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Contains(t, p.Name, "Piston")
	}
}

func TestListProductsFeaturedFlagOnlyAppliesWhenTrue(t *testing.T) {
	r := newTestRouter(t)

	all := doGet(t, r, "/api/products?featured=false")
	require.Equal(t, http.StatusOK, all.Code)
	var unfiltered []domain.Product
	require.NoError(t, json.Unmarshal(all.Body.Bytes(), &unfiltered))

	filtered := doGet(t, r, "/api/products?featured=true")
	require.Equal(t, http.StatusOK, filtered.Code)
	var featured []domain.Product
	require.NoError(t, json.Unmarshal(filtered.Body.Bytes(), &featured))

	// featured=false 不过滤，返回全量
	assert.Len(t, unfiltered, 15)
	assert.NotEmpty(t, featured)
	assert.Less(t, len(featured), len(unfiltered))
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}
}

func TestListFeaturedProducts(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/products/featured")
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, p.IsFeatured)
	}
}

func TestGetProductBySlug(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/products/raider-150-piston-kit")
	require.Equal(t, http.StatusOK, w.Code)

	var product domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Raider 150 Piston Kit", product.Name)
	assert.Equal(t, 750.0, product.Price)
}

func TestGetProductNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/products/no-such-product")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, w.Body.String())
}

func TestListTestimonials(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(t, r, "/api/testimonials")
	require.Equal(t, http.StatusOK, w.Code)

	var testimonials []domain.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &testimonials))
	assert.Len(t, testimonials, 4)
}
