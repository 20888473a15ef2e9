package orderControllers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cartControllers "github.com/nextcartlabs/storefront-api/controllers/cart"
	"github.com/nextcartlabs/storefront-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("TAX_RATE", "0.08")
	t.Setenv("SHIPPING_FEE", "500")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductVariant{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
	))
	return db
}

func fillCart(t *testing.T, db *gorm.DB, userID string, price, amount int) *models.Cart {
	t.Helper()
	product := models.Product{Name: "hoodie", Company: "acme", Price: price}
	require.NoError(t, db.Create(&product).Error)
	key := models.VariantKey{Color: models.ColorBlack, Size: models.SizeMedium}
	require.NoError(t, db.Create(&models.ProductVariant{
		ProductID: product.ID, Color: key.Color, Size: key.Size, Stock: 100,
	}).Error)
	cart, _, err := cartControllers.AddToCart(db, userID, product.ID, key, amount)
	require.NoError(t, err)
	return cart
}

func TestPlaceOrderSnapshotsCartTotals(t *testing.T) {
	db := newTestDB(t)
	cart := fillCart(t, db, "user-1", 2000, 3)

	order, err := PlaceOrder(db, "user-1", "user@example.com")
	require.NoError(t, err)

	assert.Equal(t, cart.NumItemsInCart, order.Products)
	assert.Equal(t, 6980, order.OrderTotal)
	assert.Equal(t, 480, order.Tax)
	assert.Equal(t, 500, order.Shipping)
	assert.Equal(t, "user@example.com", order.Email)
	assert.False(t, order.IsPaid)
	assert.NotEmpty(t, order.OrderRef)
}

func TestPlaceOrderSupersedesPendingOrder(t *testing.T) {
	db := newTestDB(t)
	fillCart(t, db, "user-1", 2000, 1)

	first, err := PlaceOrder(db, "user-1", "user@example.com")
	require.NoError(t, err)
	second, err := PlaceOrder(db, "user-1", "user@example.com")
	require.NoError(t, err)

	var orders []models.Order
	require.NoError(t, db.Where("user_id = ?", "user-1").Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.NotEqual(t, first.ID, orders[0].ID)
}

func TestPlaceOrderKeepsPaidOrders(t *testing.T) {
	db := newTestDB(t)
	fillCart(t, db, "user-1", 2000, 1)

	paid := models.Order{
		UserID: "user-1", OrderRef: "paid-ref", Products: 1,
		OrderTotal: 100, Email: "user@example.com", IsPaid: true,
	}
	require.NoError(t, db.Create(&paid).Error)

	_, err := PlaceOrder(db, "user-1", "user@example.com")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).
		Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 2, count) // the paid order plus the new pending one
}

func TestPlaceOrderRequiresCartAndEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := PlaceOrder(db, "nobody", "user@example.com")
	assert.ErrorIs(t, err, cartControllers.ErrCartNotFound)

	fillCart(t, db, "user-1", 2000, 1)
	_, err = PlaceOrder(db, "user-1", "")
	assert.ErrorIs(t, err, ErrEmailRequired)
}
