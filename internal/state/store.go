package state

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/kv"
	"github.com/five82/storefront/internal/listing"
)

// Snapshot is an immutable copy of every store slice.
type Snapshot struct {
	Products  Products
	Filters   listing.Filters
	Favorites []int
	Cart      []CartItem
}

// IsFavorite reports whether id is in the favorites set.
func (s Snapshot) IsFavorite(id int) bool {
	return slices.Contains(s.Favorites, id)
}

// IsInCart reports whether the cart has a line for id.
func (s Snapshot) IsInCart(id int) bool {
	return cartIndex(s.Cart, id) >= 0
}

// CartLines returns the number of distinct cart lines.
func (s Snapshot) CartLines() int {
	return len(s.Cart)
}

// CartQuantity returns the sum of all line quantities.
func (s Snapshot) CartQuantity() int {
	return cartQuantity(s.Cart)
}

// CartTotal returns the sum of price * quantity over all lines.
func (s Snapshot) CartTotal() decimal.Decimal {
	return cartTotal(s.Cart)
}

// CartItem returns the cart line for id.
func (s Snapshot) CartItem(id int) (CartItem, bool) {
	if i := cartIndex(s.Cart, id); i >= 0 {
		return s.Cart[i], true
	}
	return CartItem{}, false
}

// Product looks id up in the loaded catalog.
func (s Snapshot) Product(id int) (catalog.Product, bool) {
	for _, p := range s.Products.Items {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// FavoriteProducts joins the favorites set against the catalog, in favorite
// order. Ids with no catalog entry are skipped.
func (s Snapshot) FavoriteProducts() []catalog.Product {
	out := make([]catalog.Product, 0, len(s.Favorites))
	for _, id := range s.Favorites {
		if p, ok := s.Product(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Filtered returns the catalog after the current filters and sort.
func (s Snapshot) Filtered() []catalog.Product {
	return listing.FilterAndSort(s.Products.Items, s.Filters)
}

// Categories returns the distinct catalog categories.
func (s Snapshot) Categories() []string {
	return listing.UniqueCategories(s.Products.Items)
}

// Store owns the products, filters, favorites and cart slices. Mutations run
// a pure reduction and then persist the affected slice; the returned error
// is the persistence failure, if any, and the in-memory change is kept
// either way. Store is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	storage   kv.Storage
	products  Products
	filters   listing.Filters
	favorites []int
	cart      []CartItem
}

// New builds a Store seeded from storage. Missing or corrupt persisted state
// yields an empty cart and favorites set. A nil storage disables persistence.
func New(storage kv.Storage) *Store {
	return &Store{
		storage:   storage,
		filters:   listing.DefaultFilters(),
		favorites: loadFavorites(storage),
		cart:      loadCart(storage),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Products:  cloneProducts(s.products),
		Filters:   s.filters,
		Favorites: slices.Clone(s.favorites),
		Cart:      cloneCart(s.cart),
	}
}

// BeginLoad marks the catalog as loading. It returns false, changing
// nothing, when a load is already in flight.
func (s *Store) BeginLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := beginLoad(s.products)
	s.products = next
	return ok
}

// FinishLoad records the outcome of a load started with BeginLoad. On error
// the previously loaded items are kept.
func (s *Store) FinishLoad(items []catalog.Product, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = finishLoad(s.products, items, err)
}

// SetCategory replaces the category filter.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Category = category
}

// SetMinRating replaces the minimum rating filter.
func (s *Store) SetMinRating(rating float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.MinRating = rating
}

// SetSortBy replaces the sort option.
func (s *Store) SetSortBy(sortBy listing.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SortBy = sortBy
}

// ResetFilters restores {all, 0, none}.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = listing.DefaultFilters()
}

// ToggleFavorite flips membership of id and persists the set.
func (s *Store) ToggleFavorite(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = toggleFavorite(s.favorites, id)
	return saveFavorites(s.storage, s.favorites)
}

// ClearFavorites empties the set and removes the persisted key.
func (s *Store) ClearFavorites() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = nil
	return removeKey(s.storage, FavoritesKey)
}

// AddToCart increments the line for p or adds it with quantity 1.
func (s *Store) AddToCart(p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = addToCart(s.cart, p)
	return saveCart(s.storage, s.cart)
}

// RemoveFromCart drops the line for id, if any, and persists.
func (s *Store) RemoveFromCart(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = removeFromCart(s.cart, id)
	return saveCart(s.storage, s.cart)
}

// UpdateQuantity sets the quantity of id to exactly q; q <= 0 removes the
// line. Unknown ids change nothing and skip the write.
func (s *Store) UpdateQuantity(id, q int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := updateQuantity(s.cart, id, q)
	if !changed {
		return nil
	}
	s.cart = next
	return saveCart(s.storage, s.cart)
}

// ClearCart empties the cart and removes the persisted key.
func (s *Store) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	return removeKey(s.storage, CartKey)
}
