package models

import "time"

// Cart holds one user's open cart. The NumItemsInCart, CartTotal, Tax,
// Shipping-applied and OrderTotal columns are derived from the item rows and
// rewritten on every mutation; they are never treated as source of truth.
type Cart struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID string     `gorm:"uniqueIndex;not null" json:"user_id"` // one cart per user
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`

	TaxRate     float64 `json:"tax_rate"`
	ShippingFee int     `json:"shipping_fee"` // configured flat fee

	NumItemsInCart int `json:"num_items_in_cart"`
	CartTotal      int `json:"cart_total"` // minor currency units
	Tax            int `json:"tax"`
	Shipping       int `json:"shipping"` // fee as applied: zero on an empty cart
	OrderTotal     int `json:"order_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem references a variant rather than a product so the unit price is
// resolved live through variant -> product at recompute time. Repeated adds
// for the same variant increment Amount instead of inserting a second row.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CartID    uint `gorm:"index;uniqueIndex:idx_cart_variant" json:"cart_id"`
	VariantID uint `gorm:"uniqueIndex:idx_cart_variant" json:"variant_id"`
	Amount    int  `gorm:"not null" json:"amount"`

	Variant ProductVariant `gorm:"foreignKey:VariantID" json:"variant"`

	CreatedAt time.Time `json:"created_at"` // stable first-added-first display order
}
