// Package cart models the client-session shopping cart. Cart state lives for
// a single session and is never persisted server-side; adding a product never
// touches its inventory, which is a display bound only.
package cart

import "storefront/internal/domain"

// Cart holds the ordered list of cart items for one session.
type Cart struct {
	items []domain.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []domain.CartItem {
	return c.items
}

// AddItem adds quantity units of the product. If the product is already in
// the cart the quantities merge onto the existing line.
func (c *Cart) AddItem(product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i, item := range c.items {
		if item.Product.ID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, domain.CartItem{Product: product, Quantity: quantity})
}

// UpdateQuantity sets the quantity for the given product id. A quantity of
// zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i, item := range c.items {
		if item.Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for the given product id, if present.
func (c *Cart) RemoveItem(productID string) {
	for i, item := range c.items {
		if item.Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of price times quantity across all lines.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
