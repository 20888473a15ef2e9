package models

import "time"

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
	Products      []Product     `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Subcategory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint      `gorm:"index;uniqueIndex:idx_category_subcategory" json:"category_id"`
	Name       string    `gorm:"not null;uniqueIndex:idx_category_subcategory" json:"name"`
	Products   []Product `gorm:"foreignKey:SubcategoryID" json:"products,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
