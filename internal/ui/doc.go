// Package ui provides the terminal storefront built on Bubble Tea.
//
// # Architecture Overview
//
// The UI never owns application state. Every render reads a state.Snapshot
// taken from the shared state.Store, and every user action calls a Store
// mutator and then re-reads the snapshot. The product list is derived on
// each refresh through listing.Pager, which keeps the requested page across
// renders and resets it to page 1 whenever the filter signature changes.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View, global key handling, and Run
//   - header.go: logo, view tabs, load status, favorites and cart badges
//   - products.go: filter bar, paginated product list, filter cycling
//   - detail.go: single product page with compare-at pricing
//   - cart.go: cart lines, quantity changes, order total
//   - favorites.go: favorited products resolved against the catalog
//   - help.go: full key map overlay
//   - format.go: stars, prices, badges, and label helpers
//   - theme.go / keys.go: colors and key bindings
//
// # Views
//
//   - Products: the filtered, sorted, paginated catalog
//   - Detail: one product, or "Product Not Found" for a stale id
//   - Cart: line items with quantities and the running total
//   - Favorites: saved products in the order they were favorited
//
// # Loading
//
// Options.Reload starts a background catalog fetch. The model issues it from
// Init and again on ctrl+r; a reload requested while one is already running
// is ignored. A periodic tick re-reads the store so the loading spinner and
// any load error appear without waiting for the fetch to finish.
//
// # Persistence Errors
//
// Cart and favorites writes can fail after the in-memory change is applied.
// The model logs those failures and shows them on the status line; the
// change stays visible for the rest of the session.
//
// # Theme
//
// The selected theme is stored under ThemeKey in the same key-value storage
// as the cart and favorites, and is restored on the next start.
package ui
