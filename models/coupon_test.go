package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponPercentageDiscount(t *testing.T) {
	coupon := Coupon{DiscountType: DiscountPercentage, DiscountValue: 10}
	assert.Equal(t, 25.0, coupon.Discount(250))
	assert.Equal(t, 0.0, coupon.Discount(0))
}

func TestCouponFixedDiscountClampsAtSubtotal(t *testing.T) {
	coupon := Coupon{DiscountType: DiscountFixed, DiscountValue: 50}
	assert.Equal(t, 50.0, coupon.Discount(250))
	// A fixed coupon larger than the subtotal empties it, never below zero.
	assert.Equal(t, 30.0, coupon.Discount(30))
}

func TestCouponUsable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Coupon{Active: true}).Usable(now))
	assert.True(t, (&Coupon{Active: true, ExpiresAt: &future}).Usable(now))
	assert.False(t, (&Coupon{Active: true, ExpiresAt: &past}).Usable(now))
	assert.False(t, (&Coupon{Active: false}).Usable(now))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "BEMVINDO10", NormalizeCode("  bemvindo10 "))
}
