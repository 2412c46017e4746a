package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/storefront/internal/state"
)

// handleCartKey processes keyboard input for the cart view.
func (m *Model) handleCartKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.ClearAll) {
		if len(m.snapshot.Cart) > 0 {
			m.report("cart", m.store.ClearCart(), "Cart cleared")
		}
		return
	}

	item, ok := m.selectedCartItem()
	if !ok {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cartRow > 0 {
			m.cartRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cartRow < len(m.snapshot.Cart)-1 {
			m.cartRow++
		}
	case key.Matches(msg, m.keys.Increment):
		m.adjustQuantity(item.ID, 1)
	case key.Matches(msg, m.keys.Decrement):
		m.adjustQuantity(item.ID, -1)
	case key.Matches(msg, m.keys.Remove):
		m.removeFromCart(item.ID)
	case key.Matches(msg, m.keys.Open):
		m.openDetail(item.ID)
	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleFavorite(item.Product)
	}
}

func (m Model) selectedCartItem() (state.CartItem, bool) {
	if m.cartRow < 0 || m.cartRow >= len(m.snapshot.Cart) {
		return state.CartItem{}, false
	}
	return m.snapshot.Cart[m.cartRow], true
}

// adjustQuantity sets the line for id to its current quantity plus delta.
// Reaching zero removes the line.
func (m *Model) adjustQuantity(id, delta int) {
	item, ok := m.snapshot.CartItem(id)
	if !ok {
		return
	}
	q := item.Quantity + delta
	err := m.store.UpdateQuantity(id, q)
	if q <= 0 {
		m.report("cart", err, "Removed "+item.Name+" from cart")
		return
	}
	m.report("cart", err, fmt.Sprintf("%s quantity %d", item.Name, q))
}

func (m *Model) removeFromCart(id int) {
	item, ok := m.snapshot.CartItem(id)
	if !ok {
		return
	}
	m.report("cart", m.store.RemoveFromCart(id), "Removed "+item.Name+" from cart")
}

// renderCart renders the cart lines and the order summary.
func (m Model) renderCart() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Shopping Cart"))
	b.WriteString("\n\n")

	if len(m.snapshot.Cart) == 0 {
		b.WriteString(styles.MutedText.Render("Your cart is empty"))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Press 1 to continue shopping"))
		return b.String()
	}

	for i, item := range m.snapshot.Cart {
		cursor := "  "
		name := pad(truncate(item.Name, nameWidth), nameWidth)
		if i == m.cartRow {
			cursor = "› "
			name = styles.Selected.Render(name)
		} else {
			name = styles.Text.Render(name)
		}

		b.WriteString(cursor + name + "  ")
		b.WriteString(styles.MutedText.Render(pad(FormatPrice(m.currency, Price(item.Price)), priceWidth)))
		b.WriteString(styles.FaintText.Render(" × "))
		b.WriteString(styles.Text.Render(pad(fmt.Sprintf("%d", item.Quantity), 4)))
		b.WriteString(styles.FaintText.Render(" = "))
		b.WriteString(styles.Price.Render(FormatPrice(m.currency, item.Subtotal())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("Total (%d items) ", m.snapshot.CartQuantity())))
	b.WriteString(styles.Price.Render(FormatPrice(m.currency, m.snapshot.CartTotal())))
	return b.String()
}
