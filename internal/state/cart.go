package state

import (
	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/catalog"
)

// CartItem is a product snapshot taken at add time plus its quantity. It
// serializes flat: {"id":1,...,"quantity":2}.
type CartItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price * quantity.
func (c CartItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(c.Price).Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// addToCart increments the line for p, or appends a new line with quantity 1.
func addToCart(items []CartItem, p catalog.Product) []CartItem {
	out := cloneCart(items)
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, CartItem{Product: p, Quantity: 1})
}

// removeFromCart drops the line for id. Absent ids are a no-op.
func removeFromCart(items []CartItem, id int) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// updateQuantity sets the quantity of id to q, removing the line when q <= 0.
// Absent ids are a no-op. changed reports whether id was present.
func updateQuantity(items []CartItem, id, q int) (next []CartItem, changed bool) {
	idx := cartIndex(items, id)
	if idx < 0 {
		return items, false
	}
	if q <= 0 {
		return removeFromCart(items, id), true
	}
	out := cloneCart(items)
	out[idx].Quantity = q
	return out, true
}

func cartIndex(items []CartItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// sanitizeCart enforces the cart invariants on data read from storage: one
// line per id (first wins, later duplicates fold their quantity in) and
// quantity >= 1.
func sanitizeCart(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	index := make(map[int]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i, ok := index[item.ID]; ok {
			out[i].Quantity += item.Quantity
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out
}

func cloneCart(items []CartItem) []CartItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]CartItem, len(items))
	copy(dup, items)
	return dup
}

func cartQuantity(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func cartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
