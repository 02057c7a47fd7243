// internal/models/seller.go
package models

import (
	"github.com/google/uuid"
)

// Seller is a user-linked shop profile. One shop per user.
type Seller struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Bio      string    `json:"bio,omitempty" gorm:"type:text"`
	Location string    `json:"location,omitempty" gorm:"size:100"`

	// Relationships
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:SellerID"`
}
