package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/cache"
	admincontroller "github.com/anderson-code22/lojavirtual/controllers/admin"
	cartcontroller "github.com/anderson-code22/lojavirtual/controllers/cart"
	chatcontroller "github.com/anderson-code22/lojavirtual/controllers/chat"
	contactcontroller "github.com/anderson-code22/lojavirtual/controllers/contact"
	ordercontroller "github.com/anderson-code22/lojavirtual/controllers/order"
	productcontroller "github.com/anderson-code22/lojavirtual/controllers/product"
	usercontroller "github.com/anderson-code22/lojavirtual/controllers/user"
	"github.com/anderson-code22/lojavirtual/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT
// with the admin role claim.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Dashboard & User Management ───────────
		adminGroup.GET("/stats", admincontroller.GetDashboardStats(db))
		adminGroup.GET("/users", usercontroller.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db, store))
			productAdmin.GET("", productcontroller.GetAdminProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, store))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db, store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category & Brand Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}
		brandAdmin := adminGroup.Group("/brands")
		{
			brandAdmin.POST("", productcontroller.CreateBrand(db))
			brandAdmin.GET("", productcontroller.GetAllBrands(db))
			brandAdmin.DELETE("/:id", productcontroller.DeleteBrand(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment", ordercontroller.UpdatePaymentStatusHandler(db))
			orderAdmin.DELETE("/:orderID", ordercontroller.DeleteOrderHandler(db))
		}
		// Lives outside /orders: a static "ws" segment cannot share the
		// position of the :orderID wildcard.
		adminGroup.GET("/orders-feed", ordercontroller.OrderFeedHandler)

		// ─────────── Coupons ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", admincontroller.CreateCoupon(db))
			couponAdmin.GET("", admincontroller.GetCoupons(db))
			couponAdmin.PUT("/:id", admincontroller.UpdateCoupon(db))
			couponAdmin.DELETE("/:id", admincontroller.DeleteCoupon(db))
		}

		// ─────────── Support Chat ───────────
		chatAdmin := adminGroup.Group("/chat-sessions")
		{
			chatAdmin.GET("", chatcontroller.GetChatSessions(db))
			chatAdmin.POST("/:sessionID/messages", chatcontroller.SendSupportMessage(db))
			chatAdmin.PUT("/:sessionID/close", chatcontroller.CloseChatSession(db))
		}

		// ─────────── Customer Messages & Carts ───────────
		adminGroup.GET("/contact-messages", contactcontroller.GetContactMessages(db))
		adminGroup.GET("/user-cart/:user_id", cartcontroller.GetAdminUserCart(db))
	}
}
