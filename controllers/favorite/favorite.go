package favoriteControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/nextcartlabs/storefront-api/controllers/cart"
	"github.com/nextcartlabs/storefront-api/models"
)

type ToggleFavoriteInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ToggleFavorite adds the product to the caller's favorites, or removes it if
// already present.
// POST /user/favorites/toggle
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.UserID(c)
		if !ok {
			return
		}
		var input ToggleFavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var favorite models.Favorite
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			First(&favorite).Error
		if err == nil {
			if err := db.Delete(&favorite).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "favorited": false})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorites"})
			return
		}

		favorite = models.Favorite{UserID: userID, ProductID: input.ProductID}
		if err := db.Create(&favorite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to favorites", "favorited": true})
	}
}

// GetUserFavorites lists the caller's favorites with the product attached.
// GET /user/favorites
func GetUserFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.UserID(c)
		if !ok {
			return
		}
		var favorites []models.Favorite
		if err := db.Preload("Product.Images").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, favorites)
	}
}
