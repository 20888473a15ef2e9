package reviewControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
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
		&models.Review{},
	))
	return db
}

func perform(t *testing.T, handler gin.HandlerFunc, method string, userID string, params gin.Params, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/", &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	if userID != "" {
		c.Set("user_id", userID)
	}

	handler(c)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	product := models.Product{Name: "hoodie", Price: 2000}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestCreateReviewOncePerUser(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	input := gin.H{
		"product_id":  product.ID,
		"author_name": "Sam",
		"rating":      4,
		"comment":     "fits well",
	}
	w := perform(t, CreateReview(db), http.MethodPost, "user-1", nil, input)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(t, CreateReview(db), http.MethodPost, "user-1", nil, input)
	assert.Equal(t, http.StatusConflict, w.Code)

	// a different user may still review
	w = perform(t, CreateReview(db), http.MethodPost, "user-2", nil, input)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetProductRatingAggregate(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	for i, rating := range []int{5, 4, 3} {
		require.NoError(t, db.Create(&models.Review{
			ProductID:  product.ID,
			UserID:     fmt.Sprintf("user-%d", i),
			AuthorName: "Sam",
			Rating:     rating,
			Comment:    "ok",
		}).Error)
	}

	params := gin.Params{{Key: "id", Value: strconv.Itoa(int(product.ID))}}
	w := perform(t, GetProductRating(db), http.MethodGet, "", params, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rating float64 `json:"rating"`
		Count  int64   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 4.0, resp.Rating, 0.001)
	assert.EqualValues(t, 3, resp.Count)
}

func TestGetProductRatingEmpty(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	params := gin.Params{{Key: "id", Value: strconv.Itoa(int(product.ID))}}
	w := perform(t, GetProductRating(db), http.MethodGet, "", params, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rating float64 `json:"rating"`
		Count  int64   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Rating)
	assert.Zero(t, resp.Count)
}

func TestDeleteReviewScopedToAuthor(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)

	review := models.Review{
		ProductID: product.ID, UserID: "author",
		AuthorName: "Sam", Rating: 5, Comment: "great",
	}
	require.NoError(t, db.Create(&review).Error)

	params := gin.Params{{Key: "id", Value: strconv.Itoa(int(review.ID))}}

	// someone else's review reads as not found
	w := perform(t, DeleteReview(db), http.MethodDelete, "intruder", params, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(t, DeleteReview(db), http.MethodDelete, "author", params, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}
