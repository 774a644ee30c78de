package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/cache"
	"github.com/anderson-code22/lojavirtual/models"
	"github.com/anderson-code22/lojavirtual/validation"
)

type ProductInput struct {
	Name             string  `json:"name" binding:"required"`
	Slug             string  `json:"slug"`
	SKU              string  `json:"sku" binding:"required"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	Price            float64 `json:"price" binding:"required"`
	ComparePrice     float64 `json:"compare_price"`
	CostPrice        float64 `json:"cost_price"`
	Stock            int     `json:"stock"`
	MinStockLevel    *int    `json:"min_stock_level"`
	Weight           float64 `json:"weight"`
	Dimensions       string  `json:"dimensions"`
	CategoryID       *uint   `json:"category_id"`
	BrandID          *uint   `json:"brand_id"`
	Image            string  `json:"image"`
	Featured         bool    `json:"featured"`
	Status           string  `json:"status"`
	MetaTitle        string  `json:"meta_title"`
	MetaDescription  string  `json:"meta_description"`
}

// validate runs every field check and collects the failures, so the form
// can show them all at once instead of one per submit.
func (in *ProductInput) validate() validation.Errors {
	var errs validation.Errors
	collect := func(e *validation.FieldError) {
		if e != nil {
			errs = append(errs, e)
		}
	}

	collect(validation.Name(in.Name))
	collect(validation.Slug(in.Slug))
	collect(validation.SKU(in.SKU))
	collect(validation.Price(in.Price))
	collect(validation.ComparePrice(in.ComparePrice, in.Price))
	collect(validation.CostPrice(in.CostPrice))
	collect(validation.Stock(in.Stock))
	if in.MinStockLevel != nil {
		collect(validation.MinStockLevel(*in.MinStockLevel))
	}
	collect(validation.Weight(in.Weight))
	collect(validation.Dimensions(in.Dimensions))
	collect(validation.ShortDescription(in.ShortDescription))
	collect(validation.Description(in.Description))
	collect(validation.MetaTitle(in.MetaTitle))
	collect(validation.MetaDescription(in.MetaDescription))

	switch models.ProductStatus(in.Status) {
	case models.ProductStatusDraft, models.ProductStatusActive, models.ProductStatusInactive:
	default:
		errs = append(errs, &validation.FieldError{Field: "status", Reason: "must be draft, active or inactive"})
	}

	return errs
}

func (in *ProductInput) toModel() models.Product {
	p := models.Product{
		Name:             strings.TrimSpace(in.Name),
		Slug:             in.Slug,
		SKU:              strings.ToUpper(in.SKU),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Price:            in.Price,
		ComparePrice:     in.ComparePrice,
		CostPrice:        in.CostPrice,
		Stock:            in.Stock,
		Weight:           in.Weight,
		Dimensions:       in.Dimensions,
		CategoryID:       in.CategoryID,
		BrandID:          in.BrandID,
		Image:            in.Image,
		Featured:         in.Featured,
		Status:           models.ProductStatus(in.Status),
		MetaTitle:        in.MetaTitle,
		MetaDescription:  in.MetaDescription,
	}
	if in.MinStockLevel != nil {
		p.MinStockLevel = *in.MinStockLevel
	} else {
		p.MinStockLevel = 5
	}
	return p
}

// CreateProduct creates a new product after running the field validators.
// The slug is derived from the name when the form leaves it empty; this
// only happens on create, edits never rename a live URL implicitly.
func CreateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Status == "" {
			input.Status = string(models.ProductStatusDraft)
		}
		if input.Slug == "" {
			input.Slug = validation.GenerateSlug(input.Name)
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

		product := input.toModel()
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		store.InvalidateListings(c.Request.Context())
		c.JSON(http.StatusCreated, product)
	}
}
