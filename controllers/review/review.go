package reviewControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/nextcartlabs/storefront-api/controllers/cart"
	"github.com/nextcartlabs/storefront-api/models"
)

type ReviewInput struct {
	ProductID      uint   `json:"product_id" binding:"required"`
	AuthorName     string `json:"author_name" binding:"required"`
	AuthorImageURL string `json:"author_image_url"`
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	Comment        string `json:"comment" binding:"required"`
}

// CreateReview posts a review for a product. One review per user per product.
// POST /user/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.UserID(c)
		if !ok {
			return
		}
		var input ReviewInput
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

		var existing models.Review
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this product"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check reviews"})
			return
		}

		review := models.Review{
			ProductID:      input.ProductID,
			UserID:         userID,
			AuthorName:     input.AuthorName,
			AuthorImageURL: input.AuthorImageURL,
			Rating:         input.Rating,
			Comment:        input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GetProductReviews lists a product's reviews, newest first.
// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Where("product_id = ?", c.Param("id")).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GetProductRating returns the average rating and review count for a product.
// GET /products/:id/rating
func GetProductRating(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var result struct {
			Rating float64
			Count  int64
		}
		if err := db.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS rating, COUNT(*) AS count").
			Where("product_id = ?", c.Param("id")).
			Scan(&result).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rating"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rating": result.Rating, "count": result.Count})
	}
}

// GetUserReviews lists the caller's own reviews with the reviewed product.
// GET /user/reviews
func GetUserReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.UserID(c)
		if !ok {
			return
		}
		var reviews []models.Review
		if err := db.Preload("Product.Images").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// DeleteReview removes one of the caller's own reviews. A review id owned by
// someone else reads as not found.
// DELETE /user/reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.UserID(c)
		if !ok {
			return
		}
		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			Delete(&models.Review{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
