package models

import "time"

// Order is a snapshot of a cart taken at checkout initiation. It starts
// unpaid; flipping IsPaid happens outside this service via the payment
// provider's confirmation. A user holds at most one unpaid order: placing a
// new one supersedes any pending predecessor.
type Order struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     string `gorm:"index;not null" json:"user_id"`
	OrderRef   string `gorm:"uniqueIndex" json:"order_ref"`
	Products   int    `json:"products"` // item count at snapshot time
	OrderTotal int    `json:"order_total"`
	Tax        int    `json:"tax"`
	Shipping   int    `json:"shipping"`
	Email      string `gorm:"not null" json:"email"`
	IsPaid     bool   `gorm:"default:false" json:"is_paid"`

	CreatedAt time.Time `json:"created_at"`
}
