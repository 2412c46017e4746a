// Package state holds the storefront's client-side state: the loaded
// catalog, the filter selection, the favorites set and the cart.
//
// # Architecture
//
// Each slice has pure reducers (addToCart, toggleFavorite, finishLoad, ...)
// that take the old value and return a new one. Store wraps them:
//
//	Store.AddToCart(p)
//	  ├─> cart = addToCart(cart, p)      pure, in memory
//	  └─> saveCart(storage, cart)        side effect, key "cart"
//
// Persistence happens synchronously on the caller's goroutine after the
// reduction. A write failure is returned to the caller and the in-memory
// change stays applied, so the view never disagrees with what the user did.
//
// # Loading
//
// The catalog loader is a small state machine:
//
//	idle ──BeginLoad──> loading ──FinishLoad(items, nil)──> loaded
//	                        └────FinishLoad(nil, err)────> errored
//
// BeginLoad while loading is a no-op that returns false, so a second load
// request never starts a duplicate fetch. A failed load records the message
// and keeps whatever items an earlier load produced.
//
// # Persisted state
//
// Favorites and cart are stored as JSON under "favorites" and "cart".
// On New, a missing key or invalid JSON silently yields an empty slice.
// Clearing removes the key rather than writing an empty list.
//
// # Concurrency
//
// The loader goroutine and the UI share a Store, so access goes through a
// sync.RWMutex. Snapshot returns deep copies; callers may modify them
// freely. Derived values (cart totals, membership, filtered list) are
// computed on the snapshot and never stored.
package state
