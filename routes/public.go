package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/nextcartlabs/storefront-api/controllers/product"
	reviewControllers "github.com/nextcartlabs/storefront-api/controllers/review"
)

// SetupPublicRoutes registers the unauthenticated catalog surface.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))                  // GET /products
		products.GET("/featured", productcontroller.GetFeaturedProducts(db)) // GET /products/featured
		products.GET("/filters", productcontroller.GetFilterOptions(db))     // GET /products/filters
		products.GET("/:id", productcontroller.GetProductByID(db))           // GET /products/:id
		products.GET("/:id/reviews", reviewControllers.GetProductReviews(db))
		products.GET("/:id/rating", reviewControllers.GetProductRating(db))
	}

	r.GET("/categories", productcontroller.GetAllCategories(db)) // GET /categories
}
