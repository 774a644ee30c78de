package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/auth"
	"github.com/anderson-code22/lojavirtual/cache"
	contactcontroller "github.com/anderson-code22/lojavirtual/controllers/contact"
	productcontroller "github.com/anderson-code22/lojavirtual/controllers/product"
	reviewcontroller "github.com/anderson-code22/lojavirtual/controllers/review"
)

// SetupAuthRoutes registers the unauthenticated /auth endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
	}
}

// SetupPublicRoutes registers the storefront browse endpoints. No auth:
// anyone can search the catalog, read reviews or send a contact message.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	r.GET("/products", productcontroller.GetProducts(db, store))
	r.GET("/featured-products", productcontroller.GetFeaturedProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/products/:id/related", productcontroller.GetRelatedProducts(db))
	r.GET("/products/:id/reviews", reviewcontroller.GetProductReviews(db))

	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:slug", productcontroller.GetCategoryBySlug(db))
	r.GET("/brands", productcontroller.GetAllBrands(db))

	r.POST("/contact", contactcontroller.CreateContactMessage(db))
	r.POST("/newsletter", contactcontroller.SubscribeNewsletter(db))
}
