package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry is a saved association between a user and a game, carrying a
// point-in-time snapshot of the game's display data. At most one entry exists
// per (user, game) pair; entries are created and deleted, never mutated.
type WishlistEntry struct {
	UserID    uuid.UUID // Owner of the entry.
	GameID    int64     // Catalog identifier of the saved game.
	Game      *Game     // Snapshot taken when the entry was created.
	CreatedAt time.Time // Timestamp of the add action.
}
