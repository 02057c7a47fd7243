// internal/models/common.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields. Deletes are hard deletes: the catalog
// contract cascades a product's reviews on delete instead of soft-deleting.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums

type UserRole string

const (
	UserRoleSeller UserRole = "SELLER"
	UserRoleUser   UserRole = "USER"
	UserRoleAdmin  UserRole = "ADMIN"
)

// ProductStatus is stored uppercase; the UI sometimes sends lowercase, so
// boundaries normalize through ParseStatus.
type ProductStatus string

const (
	ProductStatusPublished ProductStatus = "PUBLISHED"
	ProductStatusDraft     ProductStatus = "DRAFT"
	ProductStatusDisabled  ProductStatus = "DISABLED"
)

// ParseStatus normalizes case and reports whether the value belongs to the
// closed status set.
func ParseStatus(s string) (ProductStatus, bool) {
	switch ProductStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ProductStatusPublished:
		return ProductStatusPublished, true
	case ProductStatusDraft:
		return ProductStatusDraft, true
	case ProductStatusDisabled:
		return ProductStatusDisabled, true
	}
	return "", false
}

type ProductCategory string

const (
	CategoryTextilesWeavings ProductCategory = "TEXTILES_WEAVINGS"
	CategoryCeramicsPottery  ProductCategory = "CERAMICS_POTTERY"
	CategoryWoodcraft        ProductCategory = "WOODCRAFT"
	CategoryJewelry          ProductCategory = "JEWELRY"
	CategoryAccessories      ProductCategory = "ACCESSORIES"
	CategoryHomeDecor        ProductCategory = "HOME_DECOR"
)

// Categories is the closed category set, in display order.
var Categories = []ProductCategory{
	CategoryTextilesWeavings,
	CategoryCeramicsPottery,
	CategoryWoodcraft,
	CategoryJewelry,
	CategoryAccessories,
	CategoryHomeDecor,
}

// ParseCategory normalizes case and reports whether the value belongs to the
// closed category set.
func ParseCategory(s string) (ProductCategory, bool) {
	c := ProductCategory(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}
