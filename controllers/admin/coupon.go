package admincontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/models"
)

type CouponInput struct {
	Code          string     `json:"code" binding:"required"`
	DiscountType  string     `json:"discount_type" binding:"required"`
	DiscountValue float64    `json:"discount_value" binding:"required"`
	Active        *bool      `json:"active"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (in *CouponInput) validate() (models.DiscountType, string) {
	dt := models.DiscountType(in.DiscountType)
	switch dt {
	case models.DiscountPercentage:
		if in.DiscountValue <= 0 || in.DiscountValue > 100 {
			return "", "discount_value must be between 0 and 100 for percentage coupons"
		}
	case models.DiscountFixed:
		if in.DiscountValue <= 0 {
			return "", "discount_value must be greater than zero"
		}
	default:
		return "", "discount_type must be percentage or fixed"
	}
	return dt, ""
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		dt, reason := input.validate()
		if reason != "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
			return
		}

		coupon := models.Coupon{
			Code:          models.NormalizeCode(input.Code),
			DiscountType:  dt,
			DiscountValue: input.DiscountValue,
			Active:        true,
			ExpiresAt:     input.ExpiresAt,
		}
		if input.Active != nil {
			coupon.Active = *input.Active
		}

		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// GET /admin/coupons
func GetCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.WithContext(c.Request.Context()).
			Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// PUT /admin/coupons/:id
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		var coupon models.Coupon
		if err := db.First(&coupon, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		dt, reason := input.validate()
		if reason != "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
			return
		}

		coupon.Code = models.NormalizeCode(input.Code)
		coupon.DiscountType = dt
		coupon.DiscountValue = input.DiscountValue
		coupon.ExpiresAt = input.ExpiresAt
		if input.Active != nil {
			coupon.Active = *input.Active
		}

		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /admin/coupons/:id
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		result := db.Delete(&models.Coupon{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
