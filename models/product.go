package models

import (
	"fmt"
	"time"
)

type Product struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Company       string `gorm:"index" json:"company"`
	Description   string `json:"description"`
	Price         int    `gorm:"not null" json:"price"` // minor currency units (cents)
	Featured      bool   `gorm:"default:false" json:"featured"`
	CategoryID    *uint  `json:"category_id"`
	SubcategoryID *uint  `json:"subcategory_id"`

	Category    *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategory *Subcategory     `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	Images      []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
}

type Color string
type Size string

const (
	ColorRed    Color = "RED"
	ColorBlue   Color = "BLUE"
	ColorGreen  Color = "GREEN"
	ColorBlack  Color = "BLACK"
	ColorWhite  Color = "WHITE"
	ColorYellow Color = "YELLOW"
	ColorPurple Color = "PURPLE"
	ColorOrange Color = "ORANGE"
	ColorPink   Color = "PINK"

	SizeSmall   Size = "SMALL"
	SizeMedium  Size = "MEDIUM"
	SizeLarge   Size = "LARGE"
	SizeXLarge  Size = "XLARGE"
	SizeXXLarge Size = "XXLARGE"
)

var validColors = map[Color]bool{
	ColorRed: true, ColorBlue: true, ColorGreen: true,
	ColorBlack: true, ColorWhite: true, ColorYellow: true,
	ColorPurple: true, ColorOrange: true, ColorPink: true,
}

var validSizes = map[Size]bool{
	SizeSmall: true, SizeMedium: true, SizeLarge: true,
	SizeXLarge: true, SizeXXLarge: true,
}

// VariantKey identifies a purchasable configuration of a product.
// Construct it through ParseVariantKey so an invalid color/size pair
// can never reach a query or an insert.
type VariantKey struct {
	Color Color
	Size  Size
}

func ParseVariantKey(color, size string) (VariantKey, error) {
	key := VariantKey{Color: Color(color), Size: Size(size)}
	if !validColors[key.Color] {
		return VariantKey{}, fmt.Errorf("invalid color %q", color)
	}
	if !validSizes[key.Size] {
		return VariantKey{}, fmt.Errorf("invalid size %q", size)
	}
	return key, nil
}

// ProductVariant is one color+size configuration of a product with its own
// stock count. At most one variant may exist per (product, color, size).
type ProductVariant struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	ProductID uint  `gorm:"index;uniqueIndex:idx_product_color_size" json:"product_id"`
	Color     Color `gorm:"type:VARCHAR(10);uniqueIndex:idx_product_color_size" json:"color"`
	Size      Size  `gorm:"type:VARCHAR(10);uniqueIndex:idx_product_color_size" json:"size"`
	Stock     int   `gorm:"not null;default:0" json:"stock"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
