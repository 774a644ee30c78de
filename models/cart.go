package models

import "time"

// Free shipping above this subtotal, flat rate below it.
const (
	FreeShippingThreshold = 200.0
	FlatShippingRate      = 15.0
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cart_id"`
	ProductID    uint      `gorm:"index" json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSlug  string    `json:"product_slug"`
	ProductImage string    `json:"product_image"`
	Price        float64   `json:"price"` // Sale price snapshot at add time
	ComparePrice float64   `json:"compare_price"`
	Weight       float64   `json:"weight"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// Subtotal is the sum of price * quantity over all items.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Shipping is free above the threshold, otherwise a flat rate.
// An empty cart ships nothing and costs nothing.
func (c *Cart) Shipping() float64 {
	if len(c.Items) == 0 {
		return 0
	}
	if c.Subtotal() > FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

// Total is subtotal plus shipping.
func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Shipping()
}

// ItemCount is the number of units across all lines, for the header badge.
func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// FindItem returns the line for a product, or nil if the cart has none.
func (c *Cart) FindItem(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
