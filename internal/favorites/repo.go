package favorites

import (
	"context"
	"strings"
	"time"

	"github.com/clearwell/clearwell-backend/pkg/db/models"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	"github.com/clearwell/clearwell-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates favorites persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a favorites repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts a favorite link and ignores duplicates. It reports whether a
// new row was written so callers can maintain product counters.
func (r *Repository) AddItem(ctx context.Context, userID uuid.UUID, productType enums.ProductType, itemID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || itemID == uuid.Nil {
		return false, gorm.ErrInvalidValue
	}

	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO favorites (id, user_id, product_type, item_id, created_at) VALUES (?, ?, ?, ?, ?) ON CONFLICT (user_id, item_id) DO NOTHING`,
		uuid.New(), userID, productType, itemID, time.Now().UTC(),
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByUserAndItem loads the link row if it exists.
func (r *Repository) FindByUserAndItem(ctx context.Context, userID, itemID uuid.UUID) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// RemoveItem deletes the user-item link if it exists.
func (r *Repository) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.Favorite{}).
		Error
}

// ListByUser returns every favorite link for a user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var rows []models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListItemIDs returns a cursor-paginated projection of saved item IDs.
func (r *Repository) ListItemIDs(ctx context.Context, userID uuid.UUID, cursor string, limit int) (FavoriteIDsDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	limitWithBuffer := pagination.LimitWithBuffer(limit)
	cursorValue := strings.TrimSpace(cursor)
	decodedCursor, err := pagination.ParseCursor(cursorValue)
	if err != nil {
		return FavoriteIDsDTO{}, err
	}

	query := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Select("id", "created_at", "item_id").
		Where("user_id = ?", userID)

	if decodedCursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID)
	}

	query = query.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer)

	type idRecord struct {
		ID        uuid.UUID
		CreatedAt time.Time
		ItemID    uuid.UUID
	}

	var records []idRecord
	if err := query.Scan(&records).Error; err != nil {
		return FavoriteIDsDTO{}, err
	}

	resultRows := records
	nextCursor := ""
	if len(records) > normalizedLimit {
		resultRows = records[:normalizedLimit]
		last := resultRows[len(resultRows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	ids := make([]uuid.UUID, 0, len(resultRows))
	for _, record := range resultRows {
		ids = append(ids, record.ItemID)
	}

	total, err := r.CountByUser(ctx, userID)
	if err != nil {
		return FavoriteIDsDTO{}, err
	}

	return FavoriteIDsDTO{
		ItemIDs: ids,
		Pagination: PageInfo{
			Total:   int(total),
			Current: cursorValue,
			Next:    nextCursor,
		},
	}, nil
}

// CountByUser returns how many favorites the user has saved.
func (r *Repository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	return count, nil
}
