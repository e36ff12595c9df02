package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"potager/entities"
	"potager/pkg/ai/repository"
)

type analysisRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnalysisRepository { return &analysisRepo{db} }

func (r *analysisRepo) Create(ctx context.Context, a *entities.AIAnalysis) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *analysisRepo) Recent(ctx context.Context, userID string, limit int) ([]entities.AIAnalysis, error) {
	var out []entities.AIAnalysis
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
