package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"potager/entities"
	"potager/pkg/apperr"
	"potager/pkg/watering/repository"
)

type scheduleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &scheduleRepo{db} }

func (r *scheduleRepo) Upsert(ctx context.Context, s *entities.WateringSchedule) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "garden_entry_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mode", "custom_days", "auto_frequency", "updated_at"}),
	}).Create(s).Error
}

func (r *scheduleRepo) Get(ctx context.Context, userID, entryID string) (*entities.WateringSchedule, error) {
	var s entities.WateringSchedule
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND garden_entry_id = ?", userID, entryID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) Delete(ctx context.Context, userID, entryID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND garden_entry_id = ?", userID, entryID).
		Delete(&entities.WateringSchedule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Watering schedule not found")
	}
	return nil
}

func (r *scheduleRepo) ListAll(ctx context.Context) ([]entities.WateringSchedule, error) {
	var out []entities.WateringSchedule
	err := r.db.WithContext(ctx).Order("user_id ASC, garden_entry_id ASC").Find(&out).Error
	return out, err
}
