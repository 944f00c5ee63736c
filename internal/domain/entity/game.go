package entity

// Game is a read-only projection of a catalog record. It is sourced from the
// external catalog API and never persisted, except as a snapshot embedded in
// a WishlistEntry at the moment the entry is created.
type Game struct {
	ID              int64    // Catalog identifier of the game.
	Name            string   // Display name.
	BackgroundImage string   // URL of the cover image.
	Released        string   // Release date as reported by the catalog (YYYY-MM-DD, may be empty).
	Rating          float64  // Average rating on a 0-5 scale.
	Genres          []string // Genre names.
	Platforms       []string // Platform names.
	Description     string   // Long-form plain-text description. Only populated on detail lookups.
}

// Snapshot returns the denormalized copy of the game that is stored inside a
// wishlist entry. It deliberately drops detail-only fields; the stored copy
// is never refreshed if the catalog record later changes.
func (g *Game) Snapshot() *Game {
	return &Game{
		ID:              g.ID,
		Name:            g.Name,
		BackgroundImage: g.BackgroundImage,
		Released:        g.Released,
		Rating:          g.Rating,
		Genres:          g.Genres,
	}
}
