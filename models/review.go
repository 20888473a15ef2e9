package models

import "time"

type Review struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProductID      uint   `gorm:"index;not null" json:"product_id"`
	UserID         string `gorm:"index;not null" json:"user_id"`
	AuthorName     string `gorm:"not null" json:"author_name"`
	AuthorImageURL string `json:"author_image_url"`
	Rating         int    `gorm:"not null" json:"rating"` // 1..5
	Comment        string `json:"comment"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
