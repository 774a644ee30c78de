package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(productID uint, price float64, qty int) CartItem {
	return CartItem{ProductID: productID, Price: price, Quantity: qty}
}

func TestCartSubtotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		item(1, 100, 2),
		item(2, 50, 1),
	}}
	assert.Equal(t, 250.0, cart.Subtotal())
}

func TestCartSubtotalEmpty(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0.0, cart.Subtotal())
	assert.Equal(t, 0.0, cart.Total())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartShippingFreeAboveThreshold(t *testing.T) {
	// Product A (100) twice plus product B (50): subtotal 250 > 200,
	// so shipping is free and the total equals the subtotal.
	cart := Cart{Items: []CartItem{
		item(1, 100, 2),
		item(2, 50, 1),
	}}
	assert.Equal(t, 0.0, cart.Shipping())
	assert.Equal(t, 250.0, cart.Total())
}

func TestCartShippingFlatRateAtOrBelowThreshold(t *testing.T) {
	// Exactly at the threshold still pays shipping: free starts above 200.
	cart := Cart{Items: []CartItem{item(1, 200, 1)}}
	assert.Equal(t, FlatShippingRate, cart.Shipping())
	assert.Equal(t, 215.0, cart.Total())

	cart = Cart{Items: []CartItem{item(1, 10, 3)}}
	assert.Equal(t, FlatShippingRate, cart.Shipping())
	assert.Equal(t, 45.0, cart.Total())
}

func TestCartShippingEmptyCartIsZero(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0.0, cart.Shipping())
}

func TestCartItemCount(t *testing.T) {
	cart := Cart{Items: []CartItem{
		item(1, 100, 3),
		item(2, 50, 2),
	}}
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartFindItem(t *testing.T) {
	cart := Cart{Items: []CartItem{
		item(1, 100, 1),
		item(2, 50, 4),
	}}

	found := cart.FindItem(2)
	require.NotNil(t, found)
	assert.Equal(t, 4, found.Quantity)

	assert.Nil(t, cart.FindItem(99))
}

func TestCartRepeatedAddsKeepOneLine(t *testing.T) {
	// Mirrors the add-to-cart merge rule: an existing line is
	// incremented, never duplicated.
	cart := Cart{}
	const adds = 5
	for i := 0; i < adds; i++ {
		if existing := cart.FindItem(7); existing != nil {
			existing.Quantity++
		} else {
			cart.Items = append(cart.Items, item(7, 19.9, 1))
		}
	}

	require.Len(t, cart.Items, 1)
	assert.Equal(t, adds, cart.Items[0].Quantity)
}
