package models

import "time"

type Favorite struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"uniqueIndex:idx_user_product;not null" json:"user_id"`
	ProductID uint   `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
