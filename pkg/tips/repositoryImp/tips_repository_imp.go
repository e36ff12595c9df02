package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"potager/entities"
	"potager/pkg/tips/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TipsRepository { return &repo{db} }

func (r *repo) CreateDocument(ctx context.Context, d *entities.TipDocument, chunks []entities.TipChunk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		for i := range chunks {
			chunks[i].DocID = d.DocID
		}
		return tx.CreateInBatches(chunks, 200).Error
	})
}

func (r *repo) AllChunks(ctx context.Context) ([]entities.TipChunk, error) {
	var cs []entities.TipChunk
	return cs, r.db.WithContext(ctx).Order("doc_id ASC, ord ASC").Find(&cs).Error
}

func (r *repo) DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.TipDocument, error) {
	if len(ids) == 0 {
		return map[uint]entities.TipDocument{}, nil
	}
	var ds []entities.TipDocument
	if err := r.db.WithContext(ctx).Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.TipDocument, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}

func (r *repo) CountDocuments(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.TipDocument{}).Count(&n).Error
}
