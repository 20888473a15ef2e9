package cartControllers

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/config"
	"github.com/nextcartlabs/storefront-api/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("variant not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidAmount   = errors.New("amount must be a positive integer")
)

// FetchOrCreateCart returns the user's cart, creating an empty one with the
// configured tax rate and shipping fee on first use.
func FetchOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{
			UserID:      userID,
			TaxRate:     config.TaxRate(),
			ShippingFee: config.ShippingFee(),
		}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// FetchCart is the must-exist variant used by the remove, update-quantity and
// place-order paths: operating on a cart that was never created is a client
// error, not a reason to create one.
func FetchCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// upsertCartItem adds delta to the existing row for (cartID, variantID) or
// creates one. Stock is deliberately not checked here: variant stock is
// advisory for display and filtering, and fulfillment is verified at checkout.
func upsertCartItem(tx *gorm.DB, cartID, variantID uint, delta int) error {
	var item models.CartItem
	err := tx.Where("cart_id = ? AND variant_id = ?", cartID, variantID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&models.CartItem{
			CartID:    cartID,
			VariantID: variantID,
			Amount:    delta,
		}).Error
	}
	if err != nil {
		return err
	}
	item.Amount += delta
	return tx.Save(&item).Error
}

// RecomputeTotals rederives every cart total from the full current item set
// and persists them. It runs after every mutation; the stored derived fields
// are never trusted as inputs. Calling it twice without an intervening
// mutation yields identical results.
//
// The returned items carry their variant and parent product so callers can
// render line items (with live unit prices) without a second query. Items are
// ordered by creation time ascending, the first-added-first display contract.
func RecomputeTotals(tx *gorm.DB, cart *models.Cart) (*models.Cart, []models.CartItem, error) {
	var items []models.CartItem
	if err := tx.Preload("Variant.Product").
		Where("cart_id = ?", cart.ID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, nil, err
	}

	numItems := 0
	cartTotal := 0
	for _, item := range items {
		numItems += item.Amount
		cartTotal += item.Amount * item.Variant.Product.Price
	}
	cart.NumItemsInCart = numItems
	cart.CartTotal = cartTotal
	cart.Tax = int(math.Round(cart.TaxRate * float64(cartTotal)))
	cart.Shipping = 0
	if cartTotal > 0 {
		cart.Shipping = cart.ShippingFee
	}
	cart.OrderTotal = cartTotal + cart.Tax + cart.Shipping

	if err := tx.Model(cart).Updates(map[string]interface{}{
		"num_items_in_cart": cart.NumItemsInCart,
		"cart_total":        cart.CartTotal,
		"tax":               cart.Tax,
		"shipping":          cart.Shipping,
		"order_total":       cart.OrderTotal,
	}).Error; err != nil {
		return nil, nil, err
	}
	return cart, items, nil
}

// AddToCart resolves the requested variant, upserts the cart item and
// recomputes totals in a single transaction. The cart is created lazily on
// the user's first add.
func AddToCart(db *gorm.DB, userID string, productID uint, key models.VariantKey, amount int) (*models.Cart, []models.CartItem, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	var (
		cart  *models.Cart
		items []models.CartItem
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		var variant models.ProductVariant
		if err := tx.Where("product_id = ? AND color = ? AND size = ?",
			productID, key.Color, key.Size).First(&variant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVariantNotFound
			}
			return err
		}

		c, err := FetchOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		if err := upsertCartItem(tx, c.ID, variant.ID, amount); err != nil {
			return err
		}
		cart, items, err = RecomputeTotals(tx, c)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return cart, items, nil
}

// RemoveCartItem deletes an item scoped to the caller's own cart, so an item
// id belonging to another user's cart reads as not found rather than leaking
// its existence.
func RemoveCartItem(db *gorm.DB, userID string, itemID uint) (*models.Cart, []models.CartItem, error) {
	var (
		cart  *models.Cart
		items []models.CartItem
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		c, err := FetchCart(tx, userID)
		if err != nil {
			return err
		}
		result := tx.Where("id = ? AND cart_id = ?", itemID, c.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}
		cart, items, err = RecomputeTotals(tx, c)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return cart, items, nil
}

// UpdateCartItemAmount sets an item's quantity to an absolute value and
// recomputes. Setting the same value is not a no-op: totals are rederived on
// every call.
func UpdateCartItemAmount(db *gorm.DB, userID string, itemID uint, amount int) (*models.Cart, []models.CartItem, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}

	var (
		cart  *models.Cart
		items []models.CartItem
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		c, err := FetchCart(tx, userID)
		if err != nil {
			return err
		}
		var item models.CartItem
		if err := tx.Where("id = ? AND cart_id = ?", itemID, c.ID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		item.Amount = amount
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		cart, items, err = RecomputeTotals(tx, c)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return cart, items, nil
}
