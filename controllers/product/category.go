package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/models"
	"github.com/anderson-code22/lojavirtual/validation"
)

type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.WithContext(c.Request.Context()).
			Order("name ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryBySlug returns one category with its active products, for
// the category landing page.
func GetCategoryBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var category models.Category
		if err := db.WithContext(c.Request.Context()).
			Preload("Products", "status = ?", models.ProductStatusActive).
			Where("slug = ?", slug).
			First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Slug == "" {
			input.Slug = validation.GenerateSlug(input.Name)
		}
		if fieldErr := validation.Name(input.Name); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}
		if fieldErr := validation.Slug(input.Slug); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}

		category := models.Category{Name: input.Name, Slug: input.Slug, Image: input.Image}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Category name or slug already exists"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Slug == "" {
			input.Slug = category.Slug
		}
		if fieldErr := validation.Slug(input.Slug); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}

		category.Name = input.Name
		category.Slug = input.Slug
		if input.Image != "" {
			category.Image = input.Image
		}
		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Category name or slug already exists"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var count int64
		if err := db.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category products"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Category still has products"})
			return
		}

		result := db.Delete(&models.Category{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
