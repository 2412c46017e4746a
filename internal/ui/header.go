package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/state"
)

const logoText = "storefront"

// renderHeader renders the top bar: logo, view tabs, load state, and the
// favorites and cart badges.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	left := []string{
		styles.Logo.Render(logoText),
		m.renderTabs(styles),
	}
	if status := m.renderLoadStatus(styles); status != "" {
		left = append(left, status)
	}

	right := []string{
		styles.Favorite.Render("♥ " + strconv.Itoa(len(m.snapshot.Favorites))),
		m.renderCartBadge(styles),
	}

	leftStr := strings.Join(left, sep)
	rightStr := strings.Join(right, sep)
	gap := m.width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Width(m.width).Render(leftStr + strings.Repeat(" ", gap) + rightStr)
}

func (m Model) renderTabs(styles Styles) string {
	tabs := []struct {
		label string
		view  View
	}{
		{"Products", ViewProducts},
		{"Cart", ViewCart},
		{"Favorites", ViewFavorites},
	}

	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := "<" + strconv.Itoa(i+1) + "> " + tab.label
		active := m.currentView == tab.view ||
			(m.currentView == ViewDetail && m.detailBack == tab.view)
		if active {
			parts = append(parts, styles.Chip.Render(label))
		} else {
			parts = append(parts, styles.MutedText.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderLoadStatus(styles Styles) string {
	products := m.snapshot.Products
	switch products.Status {
	case state.LoadLoading:
		return m.spinner.View() + styles.WarningText.Render(" Loading")
	case state.LoadErrored:
		return styles.DangerText.Render("Offline")
	default:
		return ""
	}
}

// renderCartBadge shows the total item quantity in the cart, capped at 99+.
func (m Model) renderCartBadge(styles Styles) string {
	badge := CartBadge(m.snapshot.CartQuantity())
	if badge == "" {
		return styles.MutedText.Render("Cart")
	}
	return styles.AccentText.Render("Cart ") + styles.Chip.Render(badge)
}
