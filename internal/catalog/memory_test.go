// internal/catalog/memory_test.go
package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handcraftedhaven/haven-backend/internal/models"
)

func seedMemorySource(t *testing.T) (*MemorySource, models.Product, models.Product) {
	t.Helper()

	src := NewMemorySource()
	sellerID := uuid.New()
	src.AddSeller(models.Seller{
		BaseModel: models.BaseModel{ID: sellerID},
		Name:      "Emma's Woodworking",
	})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	published := src.AddProduct(models.Product{
		SellerID:  sellerID,
		Title:     "Oak Serving Bowl",
		Price:     95.00,
		Category:  models.CategoryWoodcraft,
		Status:    models.ProductStatusPublished,
		BaseModel: models.BaseModel{CreatedAt: base},
	})
	draft := src.AddProduct(models.Product{
		SellerID:  sellerID,
		Title:     "Walnut Cutting Board",
		Price:     120.00,
		Category:  models.CategoryWoodcraft,
		Status:    models.ProductStatusDraft,
		BaseModel: models.BaseModel{CreatedAt: base.Add(time.Hour)},
	})
	return src, published, draft
}

func TestMemorySourcePublishedProductsExcludesDraftsAndDisabled(t *testing.T) {
	src, published, _ := seedMemorySource(t)

	got, err := src.PublishedProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, published.ID, got[0].ID)
	assert.Equal(t, "Emma's Woodworking", got[0].SellerName)

	require.NoError(t, src.SetStatus(published.ID, models.ProductStatusDisabled))
	got, err = src.PublishedProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemorySourceSellerProductsIncludesAllStatuses(t *testing.T) {
	src, published, draft := seedMemorySource(t)

	got, err := src.SellerProducts(context.Background(), published.SellerID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, draft.ID, got[0].ID)
	assert.Equal(t, published.ID, got[1].ID)
}

func TestMemorySourceProductDetailAggregatesReviews(t *testing.T) {
	src, published, _ := seedMemorySource(t)

	content := "Gorgeous grain"
	require.NoError(t, src.AddReview(published.ID, 5, "Sarah", &content))
	require.NoError(t, src.AddReview(published.ID, 4, "", nil))

	detail, err := src.ProductDetail(context.Background(), published.ID)
	require.NoError(t, err)

	assert.Equal(t, 4.5, detail.AverageRating)
	assert.Equal(t, 2, detail.ReviewCount)
	require.Len(t, detail.Reviews, 2)

	names := []string{detail.Reviews[0].UserName, detail.Reviews[1].UserName}
	assert.Contains(t, names, "Sarah")
	assert.Contains(t, names, AnonymousReviewer)
}

func TestMemorySourceDeleteCascadesReviews(t *testing.T) {
	src, published, _ := seedMemorySource(t)

	require.NoError(t, src.AddReview(published.ID, 5, "Sarah", nil))
	require.NoError(t, src.DeleteProduct(published.ID))

	_, err := src.ProductDetail(context.Background(), published.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Re-adding a product must not resurrect old review authors.
	assert.Empty(t, src.authors)
}

func TestMemorySourceUnknownProduct(t *testing.T) {
	src := NewMemorySource()

	_, err := src.ProductDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, src.SetStatus(uuid.New(), models.ProductStatusDisabled), ErrNotFound)
	assert.ErrorIs(t, src.DeleteProduct(uuid.New()), ErrNotFound)
	assert.ErrorIs(t, src.AddReview(uuid.New(), 5, "", nil), ErrNotFound)
}
