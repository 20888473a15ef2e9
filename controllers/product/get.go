package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
)

// GetProductByID returns a single product with its variants, images and
// category references.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.
			Preload("Variants").
			Preload("Images").
			Preload("Category").
			Preload("Subcategory").
			First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetFeaturedProducts returns the products flagged for the landing page.
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Images").
			Where("featured = ?", true).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetFilterOptions returns the distinct companies, sizes and colors currently
// present in the catalog, for the products-page filter sidebar.
func GetFilterOptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var companies []string
		if err := db.Model(&models.Product{}).
			Distinct("company").
			Where("company <> ''").
			Pluck("company", &companies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter options"})
			return
		}
		var sizes []string
		if err := db.Model(&models.ProductVariant{}).
			Distinct("size").
			Pluck("size", &sizes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter options"})
			return
		}
		var colors []string
		if err := db.Model(&models.ProductVariant{}).
			Distinct("color").
			Pluck("color", &colors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter options"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"companies": companies,
			"sizes":     sizes,
			"colors":    colors,
		})
	}
}
