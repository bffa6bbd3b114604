package models

// Cart and wishlist transformations on the User document's embedded
// arrays. Handlers read the arrays, apply one of these, and write the
// whole array back with $set. Kept pure so the semantics are testable
// without a database.

// UpsertCartLine adds quantity to an existing line for productID or
// appends a new line. Quantities below one count as one.
func UpsertCartLine(items []CartItem, productID string, quantity int) []CartItem {
	if quantity < 1 {
		quantity = 1
	}
	for i, item := range items {
		if item.ProductID == productID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, CartItem{ProductID: productID, Quantity: quantity})
}

// SetCartQuantity replaces the quantity on an existing line. A quantity
// of zero or less removes the line. Unknown products are left alone.
func SetCartQuantity(items []CartItem, productID string, quantity int) []CartItem {
	for i, item := range items {
		if item.ProductID == productID {
			if quantity > 0 {
				items[i].Quantity = quantity
				return items
			}
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

func RemoveCartLine(items []CartItem, productID string) []CartItem {
	for i, item := range items {
		if item.ProductID == productID {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// AddWishlist is idempotent.
func AddWishlist(list []string, productID string) []string {
	for _, pid := range list {
		if pid == productID {
			return list
		}
	}
	return append(list, productID)
}

// RemoveWishlist on an absent product returns the list unchanged.
func RemoveWishlist(list []string, productID string) []string {
	for i, pid := range list {
		if pid == productID {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
