package repositoryImp

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"potager/entities"
	"potager/pkg/apperr"
	"potager/pkg/garden/repository"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) ListByUser(ctx context.Context, userID string) ([]entities.GardenEntry, error) {
	var out []entities.GardenEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *gardenRepo) Create(ctx context.Context, g *entities.GardenEntry) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gardenRepo) FindOwned(ctx context.Context, id, userID string) (*entities.GardenEntry, error) {
	var g entities.GardenEntry
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Garden entry not found")
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepo) Save(ctx context.Context, g *entities.GardenEntry) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gardenRepo) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&entities.GardenEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Garden entry not found")
		}
		if err := tx.Where("garden_entry_id = ? AND user_id = ?", id, userID).
			Delete(&entities.WateringSchedule{}).Error; err != nil {
			return err
		}
		return tx.Where("garden_entry_id = ?", id).Delete(&entities.WateringEvent{}).Error
	})
}

func (r *gardenRepo) SetNextWatering(ctx context.Context, id string, next *time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.GardenEntry{}).
		Where("id = ?", id).
		Update("next_watering", next).Error
}

func (r *gardenRepo) RecordWatering(ctx context.Context, ev *entities.WateringEvent, next *time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ev).Error; err != nil {
			return err
		}
		res := tx.Model(&entities.GardenEntry{}).
			Where("id = ? AND user_id = ?", ev.GardenEntryID, ev.UserID).
			Updates(map[string]any{"last_watered": ev.WateredAt, "next_watering": next})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Garden entry not found")
		}
		return nil
	})
}

func (r *gardenRepo) ListWaterings(ctx context.Context, entryID, userID string) ([]entities.WateringEvent, error) {
	var out []entities.WateringEvent
	err := r.db.WithContext(ctx).
		Where("garden_entry_id = ? AND user_id = ?", entryID, userID).
		Order("watered_at DESC, id DESC").
		Limit(500).
		Find(&out).Error
	return out, err
}

func (r *gardenRepo) DedupeByPlant(ctx context.Context) (int, error) {
	var all []entities.GardenEntry
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&all).Error; err != nil {
		return 0, err
	}
	var scheduled []string
	if err := r.db.WithContext(ctx).Model(&entities.WateringSchedule{}).
		Pluck("garden_entry_id", &scheduled).Error; err != nil {
		return 0, err
	}
	hasSchedule := make(map[string]bool, len(scheduled))
	for _, id := range scheduled {
		hasSchedule[id] = true
	}

	type key struct{ user, plant, name string }
	groups := map[key][]entities.GardenEntry{}
	var order []key
	for _, g := range all {
		k := key{g.UserID, g.PlantID, g.CustomName}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], g)
	}

	removed := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range order {
			group := groups[k]
			if len(group) < 2 {
				continue
			}
			keep := 0
			for i, g := range group {
				if hasSchedule[g.ID] {
					keep = i
					break
				}
			}
			kept := group[keep]
			lastWatered := kept.LastWatered
			var drop []string
			for i, g := range group {
				if i == keep {
					continue
				}
				drop = append(drop, g.ID)
				if g.LastWatered != nil && (lastWatered == nil || g.LastWatered.After(*lastWatered)) {
					lastWatered = g.LastWatered
				}
			}

			if err := tx.Model(&entities.WateringEvent{}).
				Where("garden_entry_id IN ?", drop).
				Update("garden_entry_id", kept.ID).Error; err != nil {
				return err
			}
			if lastWatered != kept.LastWatered {
				if err := tx.Model(&entities.GardenEntry{}).Where("id = ?", kept.ID).
					Update("last_watered", lastWatered).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("garden_entry_id IN ?", drop).Delete(&entities.WateringSchedule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", drop).Delete(&entities.GardenEntry{}).Error; err != nil {
				return err
			}
			removed += len(drop)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
