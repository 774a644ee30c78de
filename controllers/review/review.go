package reviewcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/middleware"
	"github.com/anderson-code22/lojavirtual/models"
	"github.com/anderson-code22/lojavirtual/validation"
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var reviews []models.Review
		if err := db.WithContext(c.Request.Context()).
			Preload("User").
			Where("product_id = ?", id).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// CreateReview stores one review per user per product and folds it into
// the product's rating average and review count in the same transaction.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if fieldErr := validation.Rating(input.Rating); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}
		if len(input.Comment) > 1000 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"comment": "must have at most 1000 characters"}})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var existing models.Review
		if err := db.Where("product_id = ? AND user_id = ?", product.ID, userID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You already reviewed this product"})
			return
		}

		review := models.Review{
			ProductID: product.ID,
			UserID:    userID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			// Recompute from the review rows rather than incrementally,
			// so a failed partial write cannot skew the average.
			var stats struct {
				Avg   float64
				Count int
			}
			if err := tx.Model(&models.Review{}).
				Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
				Where("product_id = ?", product.ID).
				Scan(&stats).Error; err != nil {
				return err
			}
			return tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Updates(map[string]interface{}{
					"rating":       stats.Avg,
					"review_count": stats.Count,
				}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}
