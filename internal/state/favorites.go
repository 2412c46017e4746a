package state

import "slices"

// toggleFavorite removes id when present, otherwise appends it.
func toggleFavorite(ids []int, id int) []int {
	if idx := slices.Index(ids, id); idx >= 0 {
		return slices.Delete(slices.Clone(ids), idx, idx+1)
	}
	return append(slices.Clone(ids), id)
}

// sanitizeFavorites drops duplicate ids read from storage, keeping the first.
func sanitizeFavorites(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
