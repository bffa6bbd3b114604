package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCartLineSumsQuantity(t *testing.T) {
	cart := []CartItem{}
	cart = UpsertCartLine(cart, "P1", 1)
	cart = UpsertCartLine(cart, "P1", 1)

	require.Len(t, cart, 1)
	assert.Equal(t, "P1", cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestUpsertCartLineAppendsNewProduct(t *testing.T) {
	cart := []CartItem{{ProductID: "P1", Quantity: 2}}
	cart = UpsertCartLine(cart, "P2", 3)

	require.Len(t, cart, 2)
	assert.Equal(t, 3, cart[1].Quantity)
}

func TestUpsertCartLineFloorsQuantityAtOne(t *testing.T) {
	cart := UpsertCartLine(nil, "P1", 0)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestSetCartQuantity(t *testing.T) {
	cart := []CartItem{{ProductID: "P1", Quantity: 2}, {ProductID: "P2", Quantity: 1}}

	cart = SetCartQuantity(cart, "P1", 5)
	assert.Equal(t, 5, cart[0].Quantity)

	// Non-positive quantity removes the line.
	cart = SetCartQuantity(cart, "P1", 0)
	require.Len(t, cart, 1)
	assert.Equal(t, "P2", cart[0].ProductID)

	// Unknown product leaves the cart alone.
	cart = SetCartQuantity(cart, "P9", 4)
	require.Len(t, cart, 1)
}

func TestRemoveCartLine(t *testing.T) {
	cart := []CartItem{{ProductID: "P1", Quantity: 2}}
	cart = RemoveCartLine(cart, "P1")
	assert.Empty(t, cart)

	cart = RemoveCartLine(cart, "P1")
	assert.Empty(t, cart)
}

func TestAddWishlistIsIdempotent(t *testing.T) {
	list := AddWishlist(nil, "P1")
	list = AddWishlist(list, "P1")
	assert.Equal(t, []string{"P1"}, list)
}

func TestRemoveWishlistAbsentIsNoop(t *testing.T) {
	list := []string{"P1", "P2"}
	got := RemoveWishlist(list, "P9")
	assert.Equal(t, []string{"P1", "P2"}, got)

	got = RemoveWishlist(got, "P1")
	assert.Equal(t, []string{"P2"}, got)
}
