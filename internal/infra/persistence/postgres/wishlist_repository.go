// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/repository"
	"gamevault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the domain.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// FindByUserID retrieves every entry saved by a user, newest first.
func (repo *wishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error) {
	return repo.findByUserID(ctx, userID, 0)
}

// FindByUserIDLimit retrieves up to limit entries saved by a user, newest first.
func (repo *wishlistRepository) FindByUserIDLimit(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WishlistEntry, error) {
	return repo.findByUserID(ctx, userID, limit)
}

func (repo *wishlistRepository) findByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WishlistEntry, error) {
	var entryModels []*model.WishlistEntryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist entries by user id")
	}

	entries := make([]*entity.WishlistEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entry, err := toWishlistEntryDomain(entryM)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Insert persists a new entry with its game snapshot. Inserting an existing
// (user, game) pair is a no-op so the add action stays idempotent.
func (repo *wishlistRepository) Insert(ctx context.Context, entry *entity.WishlistEntry) error {
	entryM, err := fromWishlistEntryDomain(entry)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entryM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required wishlist information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert wishlist entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Delete removes the entry keyed by (user, game). Deleting a missing entry
// is not an error.
func (repo *wishlistRepository) Delete(ctx context.Context, userID uuid.UUID, gameID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&model.WishlistEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete wishlist entry")
	}

	return nil
}

// Exists reports whether an entry for (user, game) is present.
func (repo *wishlistRepository) Exists(ctx context.Context, userID uuid.UUID, gameID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WishlistEntryModel{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check wishlist entry existence")
	}

	return count > 0, nil
}

// CountByUserID returns the number of entries saved by a user.
func (repo *wishlistRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WishlistEntryModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count wishlist entries")
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toWishlistEntryDomain converts a GORM WishlistEntryModel to a domain entity,
// decoding the stored game snapshot.
func toWishlistEntryDomain(data *model.WishlistEntryModel) (*entity.WishlistEntry, error) {
	if data == nil {
		return nil, nil
	}

	var snapshot model.GameSnapshot
	if err := json.Unmarshal(data.GameData, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode game snapshot")
	}

	return &entity.WishlistEntry{
		UserID: data.UserID,
		GameID: data.GameID,
		Game: &entity.Game{
			ID:              snapshot.ID,
			Name:            snapshot.Name,
			BackgroundImage: snapshot.BackgroundImage,
			Released:        snapshot.Released,
			Rating:          snapshot.Rating,
			Genres:          snapshot.Genres,
		},
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromWishlistEntryDomain converts a domain WishlistEntry to a GORM model,
// encoding the game snapshot into the jsonb column.
func fromWishlistEntryDomain(data *entity.WishlistEntry) (*model.WishlistEntryModel, error) {
	if data == nil {
		return nil, nil
	}

	game := data.Game.Snapshot()
	raw, err := json.Marshal(model.GameSnapshot{
		ID:              game.ID,
		Name:            game.Name,
		BackgroundImage: game.BackgroundImage,
		Released:        game.Released,
		Rating:          game.Rating,
		Genres:          game.Genres,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode game snapshot")
	}

	return &model.WishlistEntryModel{
		UserID:   data.UserID,
		GameID:   data.GameID,
		GameData: raw,
	}, nil
}
