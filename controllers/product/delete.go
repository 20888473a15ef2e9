package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
	"github.com/nextcartlabs/storefront-api/storage"
)

// DeleteProduct removes a product together with its stored images. Variants
// and image rows go with it via the cascade constraints.
func DeleteProduct(db *gorm.DB, store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Images").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		for _, img := range product.Images {
			if err := store.Delete(c.Request.Context(), img.ImageURL); err != nil {
				// the DB delete still proceeds; an orphaned blob is recoverable
				log.Printf("failed to delete stored image %s: %v", img.ImageURL, err)
			}
		}

		if err := db.Select("Images", "Variants").Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
