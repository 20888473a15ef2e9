package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/nextcartlabs/storefront-api/controllers/cart"
	favoriteControllers "github.com/nextcartlabs/storefront-api/controllers/favorite"
	orderControllers "github.com/nextcartlabs/storefront-api/controllers/order"
	reviewControllers "github.com/nextcartlabs/storefront-api/controllers/review"
	"github.com/nextcartlabs/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))              // GET /user/cart
			cartGroup.GET("/count", cartControllers.GetCartItemCount(db))   // GET /user/cart/count
			cartGroup.POST("", cartControllers.AddToCartHandler(db))        // POST /user/cart
			cartGroup.PATCH("/items/:id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/items/:id", cartControllers.DeleteCartItem(db))
		}

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders", orderControllers.PlaceOrderHandler(db))   // POST /user/orders
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db)) // GET /user/orders

		// ──────────────── Favorites ────────────────
		userGroup.POST("/favorites/toggle", favoriteControllers.ToggleFavorite(db))
		userGroup.GET("/favorites", favoriteControllers.GetUserFavorites(db))

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.CreateReview(db))
		userGroup.GET("/reviews", reviewControllers.GetUserReviews(db))
		userGroup.DELETE("/reviews/:id", reviewControllers.DeleteReview(db))
	}
}
