package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartControllers "github.com/nextcartlabs/storefront-api/controllers/cart"
	"github.com/nextcartlabs/storefront-api/models"
)

var ErrEmailRequired = errors.New("contact email is required")

// generateOrderRef produces a unique reference handed to the external
// checkout flow.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// supersedePendingOrders removes any unpaid order the user still has from an
// abandoned checkout. A user holds at most one pending order at a time; paid
// orders are never touched.
func supersedePendingOrders(tx *gorm.DB, userID string) error {
	return tx.Where("user_id = ? AND is_paid = ?", userID, false).
		Delete(&models.Order{}).Error
}

// PlaceOrder snapshots the user's current cart totals into a new pending
// order. The cart must already exist; its derived fields are recomputed first
// so the snapshot never trusts stale totals. Payment confirmation (the
// pending -> paid transition) happens outside this service.
func PlaceOrder(db *gorm.DB, userID, email string) (*models.Order, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := cartControllers.FetchCart(tx, userID)
		if err != nil {
			return err
		}
		cart, _, err = cartControllers.RecomputeTotals(tx, cart)
		if err != nil {
			return err
		}
		if err := supersedePendingOrders(tx, userID); err != nil {
			return err
		}
		order = models.Order{
			UserID:     userID,
			OrderRef:   generateOrderRef(),
			Products:   cart.NumItemsInCart,
			OrderTotal: cart.OrderTotal,
			Tax:        cart.Tax,
			Shipping:   cart.Shipping,
			Email:      email,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.UserID(c)
		if !ok {
			return
		}
		email, _ := c.Get("email")
		emailStr, _ := email.(string)

		order, err := PlaceOrder(db, userID, emailStr)
		if err != nil {
			switch {
			case errors.Is(err, cartControllers.ErrCartNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, ErrEmailRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, gin.H{
			"order":        order,
			"checkout_url": "/checkout?orderRef=" + order.OrderRef,
		})
	}
}

// GET /user/orders — the caller's paid order history, newest first.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.UserID(c)
		if !ok {
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ? AND is_paid = ?", userID, true).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders — all paid orders, newest first.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("is_paid = ?", true).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
