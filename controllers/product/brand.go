package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/models"
	"github.com/anderson-code22/lojavirtual/validation"
)

type BrandInput struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// GET /brands
func GetAllBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.Brand
		if err := db.WithContext(c.Request.Context()).
			Order("name ASC").Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// POST /admin/brands
func CreateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Slug == "" {
			input.Slug = validation.GenerateSlug(input.Name)
		}
		if fieldErr := validation.Slug(input.Slug); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}

		brand := models.Brand{Name: input.Name, Slug: input.Slug}
		if err := db.Create(&brand).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand name or slug already exists"})
			return
		}
		c.JSON(http.StatusCreated, brand)
	}
}

// DELETE /admin/brands/:id
func DeleteBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
			return
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("brand_id = ?", id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check brand products"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Brand still has products"})
			return
		}

		result := db.Delete(&models.Brand{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
	}
}
