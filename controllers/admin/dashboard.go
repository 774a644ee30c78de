package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/models"
)

type DashboardStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	TotalUsers    int64   `json:"total_users"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// GetDashboardStats powers the back-office landing page. Revenue counts
// paid orders only; cancelled and refunded money is not revenue.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats DashboardStats

		if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}
		if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where("payment_status = ?", models.PaymentStatusPaid).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&stats.TotalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
