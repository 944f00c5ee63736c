package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel corresponds to the "profiles" table. One row per user,
// created lazily on first save. Nullable columns stay nil so the usecase
// layer can apply display fallbacks.
type ProfileModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Nickname  *string   `gorm:"column:nickname;type:varchar(64)"`
	Username  *string   `gorm:"column:username;type:varchar(64);uniqueIndex"`
	Bio       *string   `gorm:"column:bio;type:text"`
	IsPublic  bool      `gorm:"column:is_public;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}
