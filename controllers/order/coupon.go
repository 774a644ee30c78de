package ordercontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/middleware"
	"github.com/anderson-code22/lojavirtual/models"
)

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ValidateCouponHandler checks a coupon against the user's current cart
// so the checkout summary can show the discount before the order exists.
func ValidateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req ValidateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var coupon models.Coupon
		code := models.NormalizeCode(req.Code)
		if err := db.Where("code = ?", code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		if !coupon.Usable(time.Now()) {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon is inactive or expired"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		subtotal := cart.Subtotal()
		discount := coupon.Discount(subtotal)

		c.JSON(http.StatusOK, gin.H{
			"code":     coupon.Code,
			"discount": discount,
			"subtotal": subtotal,
			"shipping": cart.Shipping(),
			"total":    subtotal - discount + cart.Shipping(),
		})
	}
}
