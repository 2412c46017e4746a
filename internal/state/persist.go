package state

import (
	"encoding/json"
	"fmt"

	"github.com/five82/storefront/internal/kv"
)

// Storage keys. Cart and favorites never share a key, so their writes need
// no coordination.
const (
	CartKey      = "cart"
	FavoritesKey = "favorites"
)

// loadJSON decodes key into dest. Missing keys and invalid JSON both report
// false and leave dest untouched.
func loadJSON[T any](storage kv.Storage, key string, dest *T) bool {
	if storage == nil {
		return false
	}
	raw, ok := storage.Get(key)
	if !ok {
		return false
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return false
	}
	*dest = v
	return true
}

func saveJSON(storage kv.Storage, key string, v any) error {
	if storage == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := storage.Set(key, string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func removeKey(storage kv.Storage, key string) error {
	if storage == nil {
		return nil
	}
	if err := storage.Remove(key); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func loadCart(storage kv.Storage) []CartItem {
	var items []CartItem
	if !loadJSON(storage, CartKey, &items) {
		return nil
	}
	return sanitizeCart(items)
}

func loadFavorites(storage kv.Storage) []int {
	var ids []int
	if !loadJSON(storage, FavoritesKey, &ids) {
		return nil
	}
	return sanitizeFavorites(ids)
}

// saveCart writes the full cart. An empty cart is still written as [] here;
// only clearCart removes the key.
func saveCart(storage kv.Storage, items []CartItem) error {
	if items == nil {
		items = []CartItem{}
	}
	return saveJSON(storage, CartKey, items)
}

func saveFavorites(storage kv.Storage, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	return saveJSON(storage, FavoritesKey, ids)
}
