package cart

import "github.com/shopspring/decimal"

// LineItem is one cart entry. It carries a snapshot of the product at the
// moment it was added, plus the chosen quantity.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Brand     string          `json:"brand"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the session's line items and the mini-cart visibility flag.
// Lines keep insertion order and hold at most one entry per product.
type Cart struct {
	Token  string     `json:"token"`
	Lines  []LineItem `json:"lines"`
	IsOpen bool       `json:"is_open"`
}

// NewCart returns an empty, closed cart for the given session token.
func NewCart(token string) *Cart {
	return &Cart{Token: token}
}

// Add merges the snapshot into the cart. An existing line for the same
// product gains one unit; otherwise the item is appended with quantity 1.
func (c *Cart) Add(item LineItem) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == item.ProductID {
			c.Lines[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Lines = append(c.Lines, item)
}

// SetQuantity sets the quantity of an existing line exactly. Quantities of
// zero or less remove the line. Unknown products are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for the product if present.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total is the sum of unit price times quantity across all lines. Derived on
// every call, never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Count is the sum of quantities across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
