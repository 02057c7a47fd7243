// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// Review is never edited or deleted on its own; it only disappears when its
// product is deleted. A nil UserID means an anonymous review, a nil Content
// means a rating-only review.
type Review struct {
	BaseModel
	ProductID uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Rating    int        `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content   *string    `json:"content,omitempty" gorm:"type:text"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	User    *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
