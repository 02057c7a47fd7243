// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handcraftedhaven/haven-backend/internal/catalog"
	"github.com/handcraftedhaven/haven-backend/internal/models"
)

// CatalogService is the GORM-backed catalog.Source. Ratings are aggregated
// from the loaded review sets on every read; nothing is cached.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

var _ catalog.Source = (*CatalogService)(nil)

func (s *CatalogService) PublishedProducts(ctx context.Context) ([]catalog.DisplayProduct, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("status = ?", models.ProductStatusPublished).
		Preload("Seller").
		Preload("Reviews").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published products: %w", err)
	}

	out := make([]catalog.DisplayProduct, 0, len(products))
	for i := range products {
		out = append(out, catalog.Display(&products[i], products[i].Seller.Name))
	}
	return out, nil
}

func (s *CatalogService) ProductDetail(ctx context.Context, id uuid.UUID) (*catalog.ProductDetail, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.User").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	detail := &catalog.ProductDetail{
		DisplayProduct: catalog.Display(&product, product.Seller.Name),
	}
	for i := range product.Reviews {
		r := &product.Reviews[i]
		userName := ""
		if r.User != nil {
			userName = r.User.Name
		}
		detail.Reviews = append(detail.Reviews, catalog.DisplayReview(r, userName))
	}
	return detail, nil
}

func (s *CatalogService) SellerProducts(ctx context.Context, sellerID uuid.UUID) ([]catalog.DisplayProduct, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Preload("Seller").
		Preload("Reviews").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seller products: %w", err)
	}

	out := make([]catalog.DisplayProduct, 0, len(products))
	for i := range products {
		out = append(out, catalog.Display(&products[i], products[i].Seller.Name))
	}
	return out, nil
}
