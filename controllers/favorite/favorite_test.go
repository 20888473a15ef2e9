package favoriteControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nextcartlabs/storefront-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Favorite{},
	))
	return db
}

func toggle(t *testing.T, db *gorm.DB, userID string, productID uint) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"product_id": productID}))
	req := httptest.NewRequest(http.MethodPost, "/user/favorites/toggle", &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("user_id", userID)

	ToggleFavorite(db)(c)
	return w
}

func TestToggleFavoriteIsAnInvolution(t *testing.T) {
	db := newTestDB(t)
	product := models.Product{Name: "hoodie", Price: 2000}
	require.NoError(t, db.Create(&product).Error)

	countFavorites := func() int64 {
		var count int64
		require.NoError(t, db.Model(&models.Favorite{}).
			Where("user_id = ?", "user-1").Count(&count).Error)
		return count
	}

	w := toggle(t, db, "user-1", product.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, countFavorites())

	w = toggle(t, db, "user-1", product.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, countFavorites())

	w = toggle(t, db, "user-1", product.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, countFavorites())
}

func TestToggleFavoriteUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	w := toggle(t, db, "user-1", 9999)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleFavoriteIsPerUser(t *testing.T) {
	db := newTestDB(t)
	product := models.Product{Name: "hoodie", Price: 2000}
	require.NoError(t, db.Create(&product).Error)

	toggle(t, db, "user-1", product.ID)
	toggle(t, db, "user-2", product.ID)
	// user-2's toggle must not remove user-1's favorite
	toggle(t, db, "user-2", product.ID)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).
		Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
