package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleDetailKey processes keyboard input for the product detail view.
func (m *Model) handleDetailKey(msg tea.KeyMsg) {
	p, ok := m.snapshot.Product(m.detailID)
	if !ok {
		return
	}

	switch {
	case key.Matches(msg, m.keys.AddToCart):
		m.addToCart(p)
	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleFavorite(p)
	case key.Matches(msg, m.keys.Increment):
		m.adjustQuantity(p.ID, 1)
	case key.Matches(msg, m.keys.Decrement):
		m.adjustQuantity(p.ID, -1)
	case key.Matches(msg, m.keys.Remove):
		m.removeFromCart(p.ID)
	}
}

// renderDetail renders the full product page for the selected id.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	p, ok := m.snapshot.Product(m.detailID)
	if !ok {
		var b strings.Builder
		b.WriteString(styles.DangerText.Render("Product Not Found"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("The product you're looking for doesn't exist."))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("Press esc to go back"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(styles.Chip.Render(p.Category))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Bold(true).Render(p.Name))
	b.WriteString("\n")
	b.WriteString(styles.Star.Render(Stars(p.Rating)))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %.1f out of 5", p.Rating)))
	b.WriteString("\n\n")

	b.WriteString(styles.Price.Render(FormatPrice(m.currency, Price(p.Price))))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Strikethrough(true).Render(FormatPrice(m.currency, CompareAt(p.Price, detailMarkup))))
	b.WriteString("\n")
	b.WriteString(styles.SuccessText.Render("You save " + FormatPrice(m.currency, Savings(p.Price, detailMarkup))))
	b.WriteString("\n\n")

	if m.snapshot.IsFavorite(p.ID) {
		b.WriteString(styles.Favorite.Render("♥ In your favorites"))
	} else {
		b.WriteString(styles.MutedText.Render("♡ Not in favorites"))
	}
	b.WriteString("\n")
	if item, ok := m.snapshot.CartItem(p.ID); ok {
		b.WriteString(styles.SuccessText.Render(fmt.Sprintf("In cart: %d", item.Quantity)))
		b.WriteString(styles.MutedText.Render("  (+/- to change, d to remove)"))
	} else {
		b.WriteString(styles.MutedText.Render("Not in cart (a to add)"))
	}
	b.WriteString("\n")

	if p.Image != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Image " + p.Image))
		b.WriteString("\n")
	}

	return styles.Panel.Render(b.String())
}
