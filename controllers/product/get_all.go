package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
)

// GetProducts lists the catalog with the products-page filters applied:
// search over name/company, exact company, variant color/size, price range,
// category/subcategory and sort order.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Variants").
			Preload("Images")

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR company ILIKE ?", likePattern, likePattern)
		}

		if company := c.Query("company"); company != "" {
			query = query.Where("company ILIKE ?", company)
		}

		if minPriceStr := c.Query("price_min"); minPriceStr != "" {
			minPrice, err := strconv.Atoi(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_min"})
				return
			}
			query = query.Where("price >= ?", minPrice)
		}
		if maxPriceStr := c.Query("price_max"); maxPriceStr != "" {
			maxPrice, err := strconv.Atoi(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_max"})
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}

		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}
		if subcategoryID := c.Query("subcategory_id"); subcategoryID != "" {
			sid, err := strconv.ParseUint(subcategoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory_id"})
				return
			}
			query = query.Where("subcategory_id = ?", uint(sid))
		}

		// color/size filter matches products with at least one such variant
		color := c.Query("color")
		size := c.Query("size")
		if color != "" || size != "" {
			variantQuery := db.Model(&models.ProductVariant{}).
				Select("product_id").
				Where("product_variants.product_id = products.id")
			if color != "" {
				variantQuery = variantQuery.Where("color = ?", color)
			}
			if size != "" {
				variantQuery = variantQuery.Where("size = ?", size)
			}
			query = query.Where("EXISTS (?)", variantQuery)
		}

		orderClause := "created_at DESC"
		switch c.DefaultQuery("sort", "created_at-desc") {
		case "price-asc":
			orderClause = "price ASC"
		case "price-desc":
			orderClause = "price DESC"
		}

		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetAdminProducts lists every product for the back-office table, newest
// first, without preloads.
func GetAdminProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
