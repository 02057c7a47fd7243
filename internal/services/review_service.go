// internal/services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handcraftedhaven/haven-backend/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"omitempty,max=1000"`
}

// CreateReview accepts ratings from signed-in users and anonymous visitors
// alike; userID is nil for the latter. Only published listings take reviews.
func (s *ReviewService) CreateReview(ctx context.Context, productID uuid.UUID, userID *uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if product.Status != models.ProductStatusPublished {
		return nil, ErrProductNotFound
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
	}
	if content := strings.TrimSpace(req.Content); content != "" {
		review.Content = &content
	}

	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}
