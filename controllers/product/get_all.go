package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/cache"
	"github.com/anderson-code22/lojavirtual/models"
	"github.com/anderson-code22/lojavirtual/search"
)

// GetProducts lists active products filtered, sorted and paginated by the
// URL query string. Queries run under the request context, so a client
// that abandons the request (a superseding search, a closed tab) cancels
// the running query instead of racing a newer one.
func GetProducts(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := search.Parse(c.Request.URL.Query())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		var result search.Result
		if store.Get(ctx, filters.CacheKey(), &result) {
			c.JSON(http.StatusOK, result)
			return
		}

		query := filters.Apply(db.WithContext(ctx).Model(&models.Product{}))

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Preload("Category").
			Preload("Brand").
			Order(filters.Order()).
			Limit(filters.PageSize).
			Offset(filters.Offset()).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		result = search.Result{
			Products:   products,
			Total:      total,
			Page:       filters.Page,
			Limit:      filters.PageSize,
			TotalPages: filters.TotalPages(total),
		}
		store.Set(ctx, filters.CacheKey(), result)

		c.JSON(http.StatusOK, result)
	}
}

// GetAdminProducts lists the catalog for the back-office table. Unlike
// the storefront listing it covers drafts and inactive products too,
// optionally narrowed by ?status=, and it never reads the listing
// cache, which only holds active-only storefront payloads.
func GetAdminProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := search.Parse(c.Request.URL.Query())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := c.Query("status")
		if status != "" {
			switch models.ProductStatus(status) {
			case models.ProductStatusDraft, models.ProductStatusActive, models.ProductStatusInactive:
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "status must be draft, active or inactive"})
				return
			}
		}

		query := filters.ApplyAdmin(db.WithContext(c.Request.Context()).Model(&models.Product{}), status)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Preload("Category").
			Preload("Brand").
			Order(filters.Order()).
			Limit(filters.PageSize).
			Offset(filters.Offset()).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, search.Result{
			Products:   products,
			Total:      total,
			Page:       filters.Page,
			Limit:      filters.PageSize,
			TotalPages: filters.TotalPages(total),
		})
	}
}

// GetFeaturedProducts returns the home page highlights.
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.WithContext(c.Request.Context()).
			Preload("Category").
			Preload("Brand").
			Where("featured = ? AND status = ?", true, models.ProductStatusActive).
			Order("created_at DESC, id ASC").
			Limit(8).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
