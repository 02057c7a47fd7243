// internal/services/seller_service.go
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

type SellerService struct {
	db *gorm.DB
}

func NewSellerService(db *gorm.DB) *SellerService {
	return &SellerService{db: db}
}

type UpdateSellerProfileRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Bio      string `json:"bio" validate:"required,min=10,max=2000"`
	Location string `json:"location" validate:"required,min=2,max=120"`
}

func (s *SellerService) GetSeller(ctx context.Context, sellerID uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	err := s.db.WithContext(ctx).Preload("User").First(&seller, "id = ?", sellerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &seller, nil
}

func (s *SellerService) UpdateProfile(ctx context.Context, sellerID uuid.UUID, req *UpdateSellerProfileRequest) (*models.Seller, error) {
	seller, err := s.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	seller.Name = strings.TrimSpace(req.Name)
	seller.Bio = strings.TrimSpace(req.Bio)
	seller.Location = strings.TrimSpace(req.Location)

	if err := s.db.WithContext(ctx).Save(seller).Error; err != nil {
		return nil, fmt.Errorf("failed to update seller profile: %w", err)
	}
	return seller, nil
}
