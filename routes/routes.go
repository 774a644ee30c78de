package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/cache"
)

// SetupRoutes is the single entry-point that wires up the public,
// user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupPublicRoutes(r, db, store)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// 3️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, store)
}
