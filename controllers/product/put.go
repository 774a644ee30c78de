package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/cache"
	"github.com/anderson-code22/lojavirtual/models"
)

// UpdateProduct replaces a product's editable fields. The slug is never
// auto-derived here: renaming a product must not silently move its URL.
func UpdateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
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

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Status == "" {
			input.Status = string(product.Status)
		}
		if input.Slug == "" {
			input.Slug = product.Slug
		}
		input.SKU = strings.ToUpper(strings.TrimSpace(input.SKU))

		if errs := input.validate(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs.ByField()})
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}
		if input.BrandID != nil {
			var brand models.Brand
			if err := db.First(&brand, *input.BrandID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
				return
			}
		}

		updated := input.toModel()
		updated.ID = product.ID
		updated.Rating = product.Rating
		updated.ReviewCount = product.ReviewCount
		updated.CreatedAt = product.CreatedAt

		if err := db.Save(&updated).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		store.InvalidateListings(c.Request.Context())
		c.JSON(http.StatusOK, updated)
	}
}
