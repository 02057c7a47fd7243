// internal/services/listing_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/handcraftedhaven/haven-backend/internal/catalog"
	"github.com/handcraftedhaven/haven-backend/internal/database"
	"github.com/handcraftedhaven/haven-backend/internal/models"
)

// ListingService owns the seller-side lifecycle of a product: create, edit,
// publish/disable and delete. Every mutation verifies that the acting seller
// owns the product before touching it.
type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=120"`
	Description string   `json:"description" validate:"required,min=10,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Category    string   `json:"category" validate:"required,product_category"`
	Status      string   `json:"status" validate:"omitempty,product_status"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,max=500"`
	Tags        []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=40"`
}

type UpdateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=120"`
	Description string   `json:"description" validate:"required,min=10,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Category    string   `json:"category" validate:"required,product_category"`
	Status      string   `json:"status" validate:"omitempty,product_status"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,max=500"`
	Tags        []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=40"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,product_status"`
}

func (s *ListingService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	status := models.ProductStatusDraft
	if req.Status != "" {
		parsed, ok := models.ParseStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("invalid status: %s", req.Status)
		}
		status = parsed
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("invalid category: %s", req.Category)
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		imageURL = catalog.FallbackImageURL
	}

	product := &models.Product{
		SellerID:    sellerID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    category,
		Status:      status,
		ImageURL:    imageURL,
		Tags:        pq.StringArray(req.Tags),
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ListingService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	if err := applyProductUpdate(product, req); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func applyProductUpdate(product *models.Product, req *UpdateProductRequest) error {
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return fmt.Errorf("invalid category: %s", req.Category)
	}

	product.Title = strings.TrimSpace(req.Title)
	product.Description = strings.TrimSpace(req.Description)
	product.Price = req.Price
	product.Stock = req.Stock
	product.Category = category
	// Edits may set any status, drafts included; the toggle endpoint is the
	// restricted one.
	if req.Status != "" {
		status, ok := models.ParseStatus(req.Status)
		if !ok {
			return fmt.Errorf("invalid status: %s", req.Status)
		}
		product.Status = status
	}
	// An empty image URL clears the stored reference; display falls back to
	// the placeholder image.
	product.ImageURL = strings.TrimSpace(req.ImageURL)
	product.Tags = pq.StringArray(req.Tags)
	return nil
}

// SetProductStatus flips a listing between published and disabled. Drafts are
// published through the edit flow, so only those two targets are accepted here.
func (s *ListingService) SetProductStatus(ctx context.Context, sellerID, productID uuid.UUID, status string) (*models.Product, error) {
	target, ok := models.ParseStatus(status)
	if !ok {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if target != models.ProductStatusPublished && target != models.ProductStatusDisabled {
		return nil, fmt.Errorf("status %s cannot be set directly", target)
	}

	product, err := s.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	product.Status = target
	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}
	return product, nil
}

// DeleteProduct removes the listing and its reviews in one transaction.
func (s *ListingService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	if _, err := s.ownedProduct(ctx, sellerID, productID); err != nil {
		return err
	}

	return database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete reviews: %w", err)
		}
		if err := tx.Delete(&models.Product{}, "id = ?", productID).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}

func (s *ListingService) ownedProduct(ctx context.Context, sellerID, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if product.SellerID != sellerID {
		return nil, ErrNotOwner
	}
	return &product, nil
}
