// Package search turns URL query strings into product queries and back.
// The query string is the single source of truth for the storefront's
// search state: parsing a URL and re-encoding the filters must yield the
// same URL parameters.
package search

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/anderson-code22/lojavirtual/models"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// orderClauses whitelists sort keys so nothing user-supplied reaches the
// ORDER BY directly. Every clause carries id ASC as a secondary key: equal
// primary keys would otherwise paginate non-deterministically.
// Columns are qualified because the category and brand joins also carry
// name and id columns.
var orderClauses = map[SortKey]string{
	SortRelevance: "products.created_at DESC, products.id ASC",
	SortPriceAsc:  "products.price ASC, products.id ASC",
	SortPriceDesc: "products.price DESC, products.id ASC",
	SortNameAsc:   "products.name ASC, products.id ASC",
	SortNameDesc:  "products.name DESC, products.id ASC",
	SortRating:    "products.rating DESC, products.id ASC",
	SortNewest:    "products.created_at DESC, products.id ASC",
}

// Filters is the full search state of a product listing.
// Zero values mean "not set" and are omitted when encoding.
type Filters struct {
	Query    string
	Category string // category slug
	Brand    string // brand slug
	MinPrice float64
	MaxPrice float64
	SortBy   SortKey
	Page     int
	PageSize int
}

// Parse reads filters from URL query parameters. Unknown sort keys fall
// back to relevance, malformed numbers are reported as errors.
func Parse(values url.Values) (Filters, error) {
	f := Filters{
		Query:    values.Get("q"),
		Category: values.Get("category"),
		Brand:    values.Get("brand"),
		SortBy:   SortRelevance,
		Page:     1,
		PageSize: DefaultPageSize,
	}

	if s := values.Get("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return Filters{}, fmt.Errorf("invalid min_price %q", s)
		}
		f.MinPrice = v
	}
	if s := values.Get("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return Filters{}, fmt.Errorf("invalid max_price %q", s)
		}
		f.MaxPrice = v
	}
	if f.MinPrice > 0 && f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		return Filters{}, fmt.Errorf("min_price %.2f exceeds max_price %.2f", f.MinPrice, f.MaxPrice)
	}

	if s := values.Get("sort_by"); s != "" {
		if _, ok := orderClauses[SortKey(s)]; ok {
			f.SortBy = SortKey(s)
		}
	}

	if s := values.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return Filters{}, fmt.Errorf("invalid page %q", s)
		}
		f.Page = v
	}
	if s := values.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return Filters{}, fmt.Errorf("invalid limit %q", s)
		}
		if v > MaxPageSize {
			v = MaxPageSize
		}
		f.PageSize = v
	}

	return f, nil
}

// Values encodes the filters back into URL query parameters. Defaults are
// omitted so Parse(f.Values()) == f and shared URLs stay minimal.
func (f Filters) Values() url.Values {
	values := url.Values{}
	if f.Query != "" {
		values.Set("q", f.Query)
	}
	if f.Category != "" {
		values.Set("category", f.Category)
	}
	if f.Brand != "" {
		values.Set("brand", f.Brand)
	}
	if f.MinPrice > 0 {
		values.Set("min_price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		values.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.SortBy != "" && f.SortBy != SortRelevance {
		values.Set("sort_by", string(f.SortBy))
	}
	if f.Page > 1 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 && f.PageSize != DefaultPageSize {
		values.Set("limit", strconv.Itoa(f.PageSize))
	}
	return values
}

// CacheKey is a stable string for the whole filter set, used by the
// listing cache.
func (f Filters) CacheKey() string {
	return "products:" + f.Values().Encode()
}

// Apply narrows a product query to the filter set for the storefront,
// which only ever lists active products. Sorting and pagination are
// handled separately so the caller can count before paging.
func (f Filters) Apply(query *gorm.DB) *gorm.DB {
	return f.apply(query.Where("products.status = ?", models.ProductStatusActive))
}

// ApplyAdmin is Apply for the back-office listing: every status is
// included unless one is passed in.
func (f Filters) ApplyAdmin(query *gorm.DB, status string) *gorm.DB {
	if status != "" {
		query = query.Where("products.status = ?", status)
	}
	return f.apply(query)
}

func (f Filters) apply(query *gorm.DB) *gorm.DB {
	if f.Query != "" {
		like := "%" + f.Query + "%"
		// Brand names are matched through a subquery so the free-text
		// search does not collide with the brand-slug join below.
		query = query.Where(
			"products.name ILIKE ? OR products.description ILIKE ? OR products.short_description ILIKE ?"+
				" OR products.brand_id IN (SELECT id FROM brands WHERE name ILIKE ?)",
			like, like, like, like,
		)
	}
	if f.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", f.Category)
	}
	if f.Brand != "" {
		query = query.
			Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.slug = ?", f.Brand)
	}
	if f.MinPrice > 0 {
		query = query.Where("products.price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		query = query.Where("products.price <= ?", f.MaxPrice)
	}
	return query
}

// Order returns the whitelisted ORDER BY clause for the sort key.
func (f Filters) Order() string {
	if clause, ok := orderClauses[f.SortBy]; ok {
		return clause
	}
	return orderClauses[SortRelevance]
}

// Offset is the row offset for the current page.
func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// TotalPages computes ceil(total / page size); zero results mean zero pages.
func (f Filters) TotalPages(total int64) int {
	if total <= 0 || f.PageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(f.PageSize)))
}

// Result is the paginated listing response body.
type Result struct {
	Products   []models.Product `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}
