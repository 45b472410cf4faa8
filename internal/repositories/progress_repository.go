package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"chronowalker/internal/models/db_models"
	"chronowalker/pkg/utils"
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *db_models.UserProgress) error
	Update(ctx context.Context, progress *db_models.UserProgress) error
	Delete(ctx context.Context, id int) error

	GetByID(ctx context.Context, id int) (*db_models.UserProgress, error)
	GetByUserAndRoute(ctx context.Context, userID, routeID int) (*db_models.UserProgress, error)
	ListByUser(ctx context.Context, userID, offset, limit int) ([]db_models.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

const uniqueViolation = "23505"

// Create inserts the progress row. The unique index on (user_id, route_id)
// closes the check-then-insert race, so a duplicate surfaces here as
// ErrProgressExists even when two requests pass the existence check together.
func (r *progressRepository) Create(ctx context.Context, progress *db_models.UserProgress) error {
	err := r.db.WithContext(ctx).Create(progress).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return utils.ErrProgressExists
		}
		return err
	}
	return nil
}

func (r *progressRepository) Update(ctx context.Context, progress *db_models.UserProgress) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(progress)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *progressRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.UserProgress{}, "id = ?", id).Error
}

func (r *progressRepository) GetByID(ctx context.Context, id int) (*db_models.UserProgress, error) {
	var progress db_models.UserProgress
	err := r.db.WithContext(ctx).First(&progress, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // default model
		}
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) GetByUserAndRoute(ctx context.Context, userID, routeID int) (*db_models.UserProgress, error) {
	var progress db_models.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND route_id = ?", userID, routeID).
		First(&progress).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID, offset, limit int) ([]db_models.UserProgress, error) {
	var records []db_models.UserProgress

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&records).Error

	if err != nil {
		return nil, err
	}
	return records, nil
}
