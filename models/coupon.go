package models

import (
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Coupon struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string       `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType  DiscountType `gorm:"type:VARCHAR(20);not null" json:"discount_type"`
	DiscountValue float64      `gorm:"not null" json:"discount_value"`
	Active        bool         `gorm:"default:true" json:"active"`
	ExpiresAt     *time.Time   `json:"expires_at"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Usable reports whether the coupon can be applied right now.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// Discount computes the amount taken off a subtotal. The result never
// exceeds the subtotal, so an order total cannot go negative.
func (c *Coupon) Discount(subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	var d float64
	switch c.DiscountType {
	case DiscountPercentage:
		d = subtotal * c.DiscountValue / 100
	case DiscountFixed:
		d = c.DiscountValue
	}
	if d < 0 {
		return 0
	}
	if d > subtotal {
		return subtotal
	}
	return d
}

// NormalizeCode uppercases and trims a user-supplied coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
