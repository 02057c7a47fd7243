// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	SellerID    uuid.UUID       `json:"seller_id" gorm:"type:uuid;not null;index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       float64         `json:"price" gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Stock       int             `json:"stock" gorm:"default:0;check:stock >= 0"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(30);not null;index"`
	Status      ProductStatus   `json:"status" gorm:"type:varchar(20);default:'DRAFT';index"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:500"`
	Tags        pq.StringArray  `json:"tags,omitempty" gorm:"type:text[]"`

	// Relationships
	Seller  Seller   `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}
