package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/kv"
	"github.com/five82/storefront/internal/listing"
	"github.com/five82/storefront/internal/state"
)

func sampleProducts(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		category := "Audio"
		if i%2 == 0 {
			category = "Kitchen"
		}
		out = append(out, catalog.Product{
			ID:       i,
			Name:     fmt.Sprintf("Product %02d", i),
			Price:    float64(i) * 10,
			Category: category,
			Rating:   float64(i%5) + 0.5,
		})
	}
	return out
}

func newTestModel(t *testing.T, storage kv.Storage, products []catalog.Product) (Model, *state.Store) {
	t.Helper()
	store := state.New(storage)
	if products != nil {
		store.BeginLoad()
		store.FinishLoad(products, nil)
	}
	m := New(Options{Store: store, Storage: storage, PageSize: 12, Currency: "₹"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return updated.(Model), store
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+r":
			msg = tea.KeyMsg{Type: tea.KeyCtrlR}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

type failingStorage struct {
	kv.Memory
}

func (f *failingStorage) Set(string, string) error {
	return errors.New("disk full")
}

func TestModel_AddToCartPersists(t *testing.T) {
	mem := kv.NewMemory(nil)
	m, store := newTestModel(t, mem, sampleProducts(3))

	m = press(t, m, "a", "a")

	snap := store.Snapshot()
	if len(snap.Cart) != 1 || snap.Cart[0].Quantity != 2 {
		t.Fatalf("cart = %+v, want one line with quantity 2", snap.Cart)
	}
	if _, ok := mem.Get(state.CartKey); !ok {
		t.Fatal("cart was not persisted")
	}
	if !strings.Contains(m.status, "Added Product 01 to cart") {
		t.Fatalf("status = %q, want add confirmation", m.status)
	}
}

func TestModel_ToggleFavoriteTwice(t *testing.T) {
	mem := kv.NewMemory(nil)
	m, store := newTestModel(t, mem, sampleProducts(3))

	m = press(t, m, "j", "f")
	if got := store.Snapshot().Favorites; len(got) != 1 || got[0] != 2 {
		t.Fatalf("favorites = %v, want [2]", got)
	}

	press(t, m, "f")
	if got := store.Snapshot().Favorites; len(got) != 0 {
		t.Fatalf("favorites = %v, want empty", got)
	}
	if raw, _ := mem.Get(state.FavoritesKey); raw != "[]" {
		t.Fatalf("persisted favorites = %q, want []", raw)
	}
}

func TestModel_FilterCyclingResetsPage(t *testing.T) {
	m, store := newTestModel(t, kv.NewMemory(nil), sampleProducts(30))

	if m.page.Number != 1 || m.page.TotalPages != 3 {
		t.Fatalf("page = %d/%d, want 1/3", m.page.Number, m.page.TotalPages)
	}

	m = press(t, m, "l", "l", "l")
	if m.page.Number != 3 {
		t.Fatalf("page after three next = %d, want 3", m.page.Number)
	}
	m = press(t, m, "h")
	if m.page.Number != 2 {
		t.Fatalf("page after prev = %d, want 2", m.page.Number)
	}

	m = press(t, m, "c")
	if got := store.Snapshot().Filters.Category; got != "Audio" {
		t.Fatalf("category = %q, want Audio", got)
	}
	if m.page.Number != 1 || m.page.Total != 15 {
		t.Fatalf("page = %d total %d, want page 1 of 15 products", m.page.Number, m.page.Total)
	}

	m = press(t, m, "c", "c")
	if got := store.Snapshot().Filters.Category; got != listing.CategoryAll {
		t.Fatalf("category after full cycle = %q, want all", got)
	}

	m = press(t, m, "s")
	if got := store.Snapshot().Filters.SortBy; got != listing.SortPriceAsc {
		t.Fatalf("sort = %q, want price-asc", got)
	}
	m = press(t, m, "r", "r")
	if got := store.Snapshot().Filters.MinRating; got != 2 {
		t.Fatalf("min rating = %v, want 2", got)
	}

	press(t, m, "0")
	if got := store.Snapshot().Filters; got != listing.DefaultFilters() {
		t.Fatalf("filters after reset = %+v, want defaults", got)
	}
}

func TestModel_CartQuantityKeys(t *testing.T) {
	m, store := newTestModel(t, kv.NewMemory(nil), sampleProducts(3))

	m = press(t, m, "a", "2", "+", "+")
	if got := store.Snapshot().Cart[0].Quantity; got != 3 {
		t.Fatalf("quantity = %d, want 3", got)
	}

	m = press(t, m, "-", "-", "-")
	if got := store.Snapshot().Cart; len(got) != 0 {
		t.Fatalf("cart = %+v, want empty after decrementing to zero", got)
	}
	if !strings.Contains(m.View(), "Your cart is empty") {
		t.Fatal("cart view does not show empty message")
	}
}

func TestModel_ClearCartAndFavorites(t *testing.T) {
	mem := kv.NewMemory(nil)
	m, store := newTestModel(t, mem, sampleProducts(3))

	m = press(t, m, "a", "f", "2", "X")
	if got := store.Snapshot().Cart; len(got) != 0 {
		t.Fatalf("cart = %+v, want cleared", got)
	}
	if _, ok := mem.Get(state.CartKey); ok {
		t.Fatal("cart key still present after clear")
	}

	press(t, m, "3", "X")
	if got := store.Snapshot().Favorites; len(got) != 0 {
		t.Fatalf("favorites = %v, want cleared", got)
	}
}

func TestModel_DetailView(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory(nil), sampleProducts(3))

	m = press(t, m, "j", "enter")
	if m.currentView != ViewDetail || m.detailID != 2 {
		t.Fatalf("view = %v detail = %d, want detail of product 2", m.currentView, m.detailID)
	}
	out := m.View()
	if !strings.Contains(out, "Product 02") || !strings.Contains(out, "You save ₹4.00") {
		t.Fatalf("detail view missing name or savings:\n%s", out)
	}

	m = press(t, m, "esc")
	if m.currentView != ViewProducts {
		t.Fatalf("view after esc = %v, want products", m.currentView)
	}

	m.currentView = ViewDetail
	m.detailID = 999
	if !strings.Contains(m.View(), "Product Not Found") {
		t.Fatal("stale detail id did not render not-found message")
	}
}

func TestModel_ProductListRendering(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory(nil), sampleProducts(30))
	out := m.View()

	for _, want := range []string{"Showing 30 products", "Page 1 of 3", "Product 01", "₹10.00", "Save 15%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("product view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Product 13") {
		t.Fatal("product view rendered an item from page 2")
	}
}

func TestModel_EmptyAndErrorStates(t *testing.T) {
	m, store := newTestModel(t, kv.NewMemory(nil), []catalog.Product{})
	if !strings.Contains(m.View(), "No products found") {
		t.Fatal("empty catalog did not render empty message")
	}

	store.BeginLoad()
	store.FinishLoad(nil, errors.New("connection refused"))
	updated, _ := m.Update(loadDoneMsg{})
	m = updated.(Model)
	if !m.statusErr || !strings.Contains(m.status, "connection refused") {
		t.Fatalf("status = %q, want load failure", m.status)
	}
	if !strings.Contains(m.View(), "Error: connection refused") {
		t.Fatal("product view did not render load error")
	}
}

func TestModel_ThemePersists(t *testing.T) {
	mem := kv.NewMemory(nil)
	m, _ := newTestModel(t, mem, nil)

	m = press(t, m, "T")
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	if got, _ := mem.Get(ThemeKey); got != "Slate" {
		t.Fatalf("persisted theme = %q, want Slate", got)
	}

	restored := New(Options{Store: state.New(mem), Storage: mem})
	if restored.theme.Name != "Slate" {
		t.Fatalf("restored theme = %q, want Slate", restored.theme.Name)
	}
}

func TestModel_WriteFailureKeepsChange(t *testing.T) {
	storage := &failingStorage{}
	m, store := newTestModel(t, storage, sampleProducts(2))

	m = press(t, m, "a")
	if got := store.Snapshot().Cart; len(got) != 1 {
		t.Fatalf("cart = %+v, want in-memory line despite write failure", got)
	}
	if !m.statusErr || !strings.Contains(m.status, "disk full") {
		t.Fatalf("status = %q, want write failure", m.status)
	}
}

func TestModel_ReloadHook(t *testing.T) {
	calls := 0
	allow := true
	store := state.New(kv.NewMemory(nil))
	m := New(Options{
		Store: store,
		Reload: func(done func()) bool {
			calls++
			if !allow {
				return false
			}
			done()
			return true
		},
	})

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init returned nil command")
	}
	if calls != 1 {
		t.Fatalf("reload calls after Init = %d, want 1", calls)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("ctrl+r returned nil command")
	}
	if _, ok := cmd().(loadDoneMsg); !ok {
		t.Fatal("reload command did not report completion")
	}

	allow = false
	m = press(t, m, "ctrl+r")
	if calls != 3 {
		t.Fatalf("reload calls = %d, want 3", calls)
	}
	if m.status != "Catalog is already loading" {
		t.Fatalf("status = %q, want already loading", m.status)
	}
}

func TestModel_TabCyclesViews(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory(nil), sampleProducts(1))

	want := []View{ViewCart, ViewFavorites, ViewProducts}
	for _, v := range want {
		m = press(t, m, "tab")
		if m.currentView != v {
			t.Fatalf("view = %v, want %v", m.currentView, v)
		}
	}
}

func TestModel_CartBadgeCountsQuantity(t *testing.T) {
	m, store := newTestModel(t, kv.NewMemory(nil), sampleProducts(3))
	styles := m.theme.Styles()

	if got := m.renderCartBadge(styles); got != styles.MutedText.Render("Cart") {
		t.Fatalf("empty cart badge = %q, want plain label", got)
	}

	m = press(t, m, "a", "a", "a")
	snap := store.Snapshot()
	if snap.CartLines() != 1 || snap.CartQuantity() != 3 {
		t.Fatalf("lines = %d quantity = %d, want 1 and 3", snap.CartLines(), snap.CartQuantity())
	}
	want := styles.AccentText.Render("Cart ") + styles.Chip.Render("3")
	if got := m.renderCartBadge(styles); got != want {
		t.Fatalf("cart badge = %q, want %q", got, want)
	}

	if err := store.UpdateQuantity(1, 100); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	m.refreshSnapshot()
	want = styles.AccentText.Render("Cart ") + styles.Chip.Render("99+")
	if got := m.renderCartBadge(styles); got != want {
		t.Fatalf("cart badge = %q, want %q", got, want)
	}
}

func TestModel_HeaderFavoritesCount(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory(nil), sampleProducts(3))
	m = press(t, m, "f", "j", "f")

	if out := m.renderHeader(); !strings.Contains(out, "♥ 2") {
		t.Fatalf("header missing favorites count:\n%s", out)
	}
}

func TestModel_ShowingFilteredFromTotal(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory(nil), sampleProducts(30))
	if out := m.View(); strings.Contains(out, "filtered from") {
		t.Fatalf("unfiltered view mentions filtering:\n%s", out)
	}

	m = press(t, m, "c")
	if out := m.View(); !strings.Contains(out, "Showing 15 products (filtered from 30 total)") {
		t.Fatalf("filtered view missing total:\n%s", out)
	}
}
