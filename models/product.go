package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID               uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string  `gorm:"not null" json:"name"`
	Slug             string  `gorm:"uniqueIndex;not null" json:"slug"`
	SKU              string  `gorm:"uniqueIndex;not null" json:"sku"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	Price            float64 `gorm:"not null" json:"price"` // Sale price, required
	ComparePrice     float64 `json:"compare_price"`         // Original price before discount
	CostPrice        float64 `json:"cost_price"`
	Stock            int     `json:"stock"`
	MinStockLevel    int     `gorm:"default:5" json:"min_stock_level"`
	Weight           float64 `json:"weight"`
	Dimensions       string  `json:"dimensions"` // "LxAxP" in cm

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BrandID    *uint     `gorm:"index" json:"brand_id"`
	Brand      *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	Image           string        `json:"image"`
	Featured        bool          `gorm:"index" json:"featured"`
	Status          ProductStatus `gorm:"type:VARCHAR(20);default:'draft'" json:"status"`
	MetaTitle       string        `json:"meta_title"`
	MetaDescription string        `json:"meta_description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// InStock reports whether the product can still be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
