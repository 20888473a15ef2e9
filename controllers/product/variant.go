package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
)

type VariantInput struct {
	Color string `json:"color" binding:"required"`
	Size  string `json:"size" binding:"required"`
	Stock int    `json:"stock" binding:"min=0"`
}

// variantExists reports whether another variant already claims the
// (product, color, size) combination. Duplicate combinations are admin-input
// errors and are rejected, never merged.
func variantExists(db *gorm.DB, productID uint, key models.VariantKey, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.ProductVariant{}).
		Where("product_id = ? AND color = ? AND size = ? AND id <> ?",
			productID, key.Color, key.Size, excludeID).
		Count(&count).Error
	return count > 0, err
}

// AddVariant creates a new color/size configuration for a product.
// POST /admin/products/:id/variants
func AddVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input VariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		key, err := models.ParseVariantKey(input.Color, input.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		exists, err := variantExists(db, product.ID, key, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check variants"})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "Variant for this color and size already exists"})
			return
		}

		variant := models.ProductVariant{
			ProductID: product.ID,
			Color:     key.Color,
			Size:      key.Size,
			Stock:     input.Stock,
		}
		if err := db.Create(&variant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variant"})
			return
		}
		c.JSON(http.StatusCreated, variant)
	}
}

// UpdateVariant changes a variant's color, size or stock.
// PUT /admin/variants/:id
func UpdateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var variant models.ProductVariant
		if err := db.First(&variant, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch variant"})
			}
			return
		}

		var input VariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		key, err := models.ParseVariantKey(input.Color, input.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must be non-negative"})
			return
		}

		exists, err := variantExists(db, variant.ProductID, key, variant.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check variants"})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "Variant for this color and size already exists"})
			return
		}

		variant.Color = key.Color
		variant.Size = key.Size
		variant.Stock = input.Stock
		if err := db.Save(&variant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update variant"})
			return
		}
		c.JSON(http.StatusOK, variant)
	}
}

// DeleteVariant removes a variant.
// DELETE /admin/variants/:id
func DeleteVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.ProductVariant{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete variant"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Variant deleted"})
	}
}
