package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
	"github.com/nextcartlabs/storefront-api/storage"
)

// AddProductImage uploads an additional image for an existing product.
// POST /admin/products/:id/images
func AddProductImage(db *gorm.DB, store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
			return
		}
		defer file.Close()

		url, err := store.Upload(c.Request.Context(), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}

		image := models.ProductImage{ProductID: product.ID, ImageURL: url}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// DeleteProductImage removes one image row and its stored blob.
// DELETE /admin/products/:id/images/:imageId
func DeleteProductImage(db *gorm.DB, store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		imageID := c.Param("imageId")

		var image models.ProductImage
		if err := db.Where("id = ? AND product_id = ?", imageID, productID).
			First(&image).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch image"})
			}
			return
		}

		if err := store.Delete(c.Request.Context(), image.ImageURL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stored image"})
			return
		}
		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
	}
}
