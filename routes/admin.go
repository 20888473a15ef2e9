package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/nextcartlabs/storefront-api/controllers/order"
	productcontroller "github.com/nextcartlabs/storefront-api/controllers/product"
	"github.com/nextcartlabs/storefront-api/middleware"
	"github.com/nextcartlabs/storefront-api/storage"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store storage.Storage) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAdminProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db, store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, store))
			productAdmin.POST("/:id/images", productcontroller.AddProductImage(db, store))
			productAdmin.DELETE("/:id/images/:imageId", productcontroller.DeleteProductImage(db, store))
			productAdmin.POST("/:id/variants", productcontroller.AddVariant(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Variant Management ───────────
		variantAdmin := adminGroup.Group("/variants")
		{
			variantAdmin.PUT("/:id", productcontroller.UpdateVariant(db))
			variantAdmin.DELETE("/:id", productcontroller.DeleteVariant(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}
		subcategoryAdmin := adminGroup.Group("/subcategories")
		{
			subcategoryAdmin.POST("", productcontroller.CreateSubcategory(db))
			subcategoryAdmin.DELETE("/:id", productcontroller.DeleteSubcategory(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
