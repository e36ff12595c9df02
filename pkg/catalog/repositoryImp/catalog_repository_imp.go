package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"potager/entities"
	"potager/pkg/apperr"
	"potager/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) List(ctx context.Context, category string) ([]entities.Plant, error) {
	q := r.db.WithContext(ctx).Model(&entities.Plant{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []entities.Plant
	if err := q.Order("name_fr ASC, variety ASC").Limit(1000).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindByID(ctx context.Context, id string) (*entities.Plant, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *catalogRepo) FindByName(ctx context.Context, name string) (*entities.Plant, error) {
	return r.first(r.db.WithContext(ctx).Where("name_fr = ?", name).Order("created_at ASC, id ASC"))
}

func (r *catalogRepo) first(q *gorm.DB) (*entities.Plant, error) {
	var p entities.Plant
	err := q.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Plant not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.Plant{}).Count(&n).Error
}

func (r *catalogRepo) Replace(ctx context.Context, plants []entities.Plant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Plant{}).Error; err != nil {
			return err
		}
		if len(plants) == 0 {
			return nil
		}
		return tx.CreateInBatches(plants, 100).Error
	})
}
