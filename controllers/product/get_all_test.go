package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, []models.Product) {
	t.Helper()

	shoes := models.Category{Name: "shoes"}
	apparel := models.Category{Name: "apparel"}
	require.NoError(t, db.Create(&shoes).Error)
	require.NoError(t, db.Create(&apparel).Error)

	products := []models.Product{
		{Name: "runner", Company: "acme", Price: 4500, CategoryID: &shoes.ID},
		{Name: "sandal", Company: "acme", Price: 1500, CategoryID: &shoes.ID},
		{Name: "hoodie", Company: "zenith", Price: 3000, CategoryID: &apparel.ID},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	require.NoError(t, db.Create(&models.ProductVariant{
		ProductID: products[2].ID,
		Color:     models.ColorBlack,
		Size:      models.SizeMedium,
		Stock:     3,
	}).Error)
	return shoes, products
}

func listProducts(t *testing.T, db *gorm.DB, rawQuery string) (int, []models.Product) {
	t.Helper()
	w := performJSON(t, GetProducts(db), http.MethodGet, "/products?"+rawQuery, nil, nil)
	var products []models.Product
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	}
	return w.Code, products
}

func TestGetProductsPriceRange(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	code, products := listProducts(t, db, "price_min=2000&price_max=4000")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, products, 1)
	assert.Equal(t, "hoodie", products[0].Name)

	code, _ = listProducts(t, db, "price_min=abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetProductsCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	shoes, _ := seedCatalog(t, db)

	code, products := listProducts(t, db, fmt.Sprintf("category_id=%d", shoes.ID))
	require.Equal(t, http.StatusOK, code)
	require.Len(t, products, 2)
	for _, p := range products {
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, shoes.ID, *p.CategoryID)
	}
}

func TestGetProductsSortByPrice(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	code, products := listProducts(t, db, "sort=price-asc")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"sandal", "hoodie", "runner"},
		[]string{products[0].Name, products[1].Name, products[2].Name})

	code, products = listProducts(t, db, "sort=price-desc")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "runner", products[0].Name)
}

func TestGetProductsVariantFilter(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	// only the hoodie carries a BLACK/MEDIUM variant
	code, products := listProducts(t, db, "color=BLACK&size=MEDIUM")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, products, 1)
	assert.Equal(t, "hoodie", products[0].Name)

	code, products = listProducts(t, db, "color=PURPLE")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, products)
}
