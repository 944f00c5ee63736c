package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WishlistEntryModel mirrors the 'wishlists' table. The composite primary key
// on (user_id, game_id) is what guarantees at most one entry per pair.
type WishlistEntryModel struct {
	UserID    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GameID    int64          `gorm:"primaryKey"`
	GameData  datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistEntryModel) TableName() string {
	return "wishlists"
}

// GameSnapshot is the JSON shape stored in the game_data column. It matches
// the displayed card fields and is never refreshed after insertion.
type GameSnapshot struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	BackgroundImage string   `json:"background_image"`
	Released        string   `json:"released"`
	Rating          float64  `json:"rating"`
	Genres          []string `json:"genres"`
}
