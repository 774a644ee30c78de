package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartcontroller "github.com/anderson-code22/lojavirtual/controllers/cart"
	chatcontroller "github.com/anderson-code22/lojavirtual/controllers/chat"
	notificationcontroller "github.com/anderson-code22/lojavirtual/controllers/notification"
	ordercontroller "github.com/anderson-code22/lojavirtual/controllers/order"
	reviewcontroller "github.com/anderson-code22/lojavirtual/controllers/review"
	usercontroller "github.com/anderson-code22/lojavirtual/controllers/user"
	"github.com/anderson-code22/lojavirtual/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", usercontroller.GetUser(db))    // GET /user/
		userGroup.PUT("/", usercontroller.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartcontroller.GetUserCart(db))
			cartGroup.POST("/items", cartcontroller.AddCartItem(db))
			cartGroup.PUT("/items/:product_id", cartcontroller.UpdateCartItem(db))
			cartGroup.DELETE("/items/:product_id", cartcontroller.DeleteCartItem(db))
			cartGroup.DELETE("/", cartcontroller.ClearUserCart(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/orders", ordercontroller.PlaceOrderHandler(db))
		userGroup.GET("/orders", ordercontroller.GetUserOrdersHandler(db))
		userGroup.GET("/orders/:ref", ordercontroller.GetOrderHandler(db))
		userGroup.POST("/coupons/validate", ordercontroller.ValidateCouponHandler(db))

		// ──────────────── Reviews ────────────────
		userGroup.POST("/products/:id/reviews", reviewcontroller.CreateReview(db))

		// ──────────────── Notifications ────────────────
		notifGroup := userGroup.Group("/notifications")
		{
			notifGroup.GET("/", notificationcontroller.GetNotifications(db))
			notifGroup.GET("/unread-count", notificationcontroller.GetUnreadCount(db))
			// POST, not PUT: a static "read-all" segment cannot share the
			// position of the :id wildcard within one method tree.
			notifGroup.POST("/read-all", notificationcontroller.MarkAllAsRead(db))
			notifGroup.PUT("/:id/read", notificationcontroller.MarkAsRead(db))
		}

		// ──────────────── Support Chat ────────────────
		chatGroup := userGroup.Group("/chat")
		{
			chatGroup.GET("/", chatcontroller.GetChatSession(db))
			chatGroup.POST("/messages", chatcontroller.SendMessage(db))
			chatGroup.GET("/ws", chatcontroller.ChatWebSocketHandler(db))
		}
	}
}
