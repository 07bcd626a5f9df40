package models

import "time"

// WishlistEntry is a saved-for-later product reference. There is no
// quantity. Identity matches on ID when both sides have one, otherwise on
// name; the price is kept as the raw display text it was captured with.
type WishlistEntry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Price    string    `json:"price,omitempty"`
	Image    string    `json:"image,omitempty"`
	Category string    `json:"category"`
	AddedAt  time.Time `json:"addedAt"`
}

// Matches reports whether two entries refer to the same product: by ID when
// both carry one, falling back to name equality. Two distinct products
// sharing a display name collide under the fallback; that ambiguity is kept
// as-is rather than papered over with an invented key scheme.
func (e WishlistEntry) Matches(other WishlistEntry) bool {
	if e.ID != "" && other.ID != "" {
		return e.ID == other.ID
	}
	return e.Name == other.Name
}
