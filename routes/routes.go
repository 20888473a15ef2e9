package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/storage"
)

// SetupRoutes is the single entry-point that wires up the Public, User, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Storage) {
	// Public catalog browsing (no middleware)
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin back-office (API-key-protected)
	SetupAdminRoutes(r, db, store)
}
