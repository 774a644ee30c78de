package ordercontroller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anderson-code22/lojavirtual/middleware"
	"github.com/anderson-code22/lojavirtual/models"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // e.g. "credit", "pix", "boleto"
	CouponCode    string `json:"coupon_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusConfirmed:
		return models.OrderStatusConfirmed, nil
	case models.OrderStatusReadyToShip:
		return models.OrderStatusReadyToShip, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	case models.OrderStatusDelivered:
		return models.OrderStatusDelivered, nil
	case models.OrderStatusReturned:
		return models.OrderStatusReturned, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Map string to PaymentStatus
func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.ToLower(status)) {
	case models.PaymentStatusPending:
		return models.PaymentStatusPending, nil
	case models.PaymentStatusPaid:
		return models.PaymentStatusPaid, nil
	case models.PaymentStatusFailed:
		return models.PaymentStatusFailed, nil
	case models.PaymentStatusRefunded:
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidCoupon = errors.New("invalid or expired coupon")
)

// -------- Core Logic --------

// PlaceOrder turns the user's cart into an order in one transaction:
// product rows are locked, stock is checked and deducted, the coupon is
// applied, and the cart is cleared. Any failure rolls the whole thing back.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var coupon *models.Coupon
	if req.CouponCode != "" {
		var found models.Coupon
		code := models.NormalizeCode(req.CouponCode)
		if err := db.Where("code = ?", code).First(&found).Error; err != nil {
			return nil, ErrInvalidCoupon
		}
		if !found.Usable(time.Now()) {
			return nil, ErrInvalidCoupon
		}
		coupon = &found
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem

		// Process cart items under row locks
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}

			// Deduct stock
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductSlug:  item.ProductSlug,
				ProductImage: item.ProductImage,
				Price:        item.Price,
				ComparePrice: item.ComparePrice,
				Weight:       item.Weight,
				Quantity:     item.Quantity,
			})
		}

		subtotal := cart.Subtotal()
		shipping := cart.Shipping()

		var discount float64
		var couponCode string
		if coupon != nil {
			discount = coupon.Discount(subtotal)
			couponCode = coupon.Code
		}

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			Subtotal:      subtotal,
			ShippingCost:  shipping,
			Discount:      discount,
			CouponCode:    couponCode,
			TotalAmount:   subtotal - discount + shipping,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: req.PaymentMethod,
			CreatedAt:     time.Now(),
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		notification := models.Notification{
			UserID: userID,
			Type:   models.NotificationOrderPlaced,
			Title:  "Pedido recebido",
			Body:   "Seu pedido " + order.OrderRef + " foi recebido e está sendo processado.",
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.WithContext(c.Request.Context()).
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:ref — accepts a numeric id or an order ref.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ref := c.Param("ref")
		var order models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ? AND (id::text = ? OR order_ref = ?)", userID, ref, ref).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.WithContext(c.Request.Context()).
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&order).Update("status", newStatus).Error; err != nil {
				return err
			}
			notification := models.Notification{
				UserID: order.UserID,
				Type:   models.NotificationOrderStatus,
				Title:  "Pedido atualizado",
				Body:   "Seu pedido " + order.OrderRef + " agora está: " + string(newStatus),
			}
			return tx.Create(&notification).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PUT /admin/orders/:orderID/payment
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			result := tx.Where("id = ?", orderID).Delete(&models.Order{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
