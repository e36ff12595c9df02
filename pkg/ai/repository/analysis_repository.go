package repository

import (
	"context"

	"potager/entities"
)

type AnalysisRepository interface {
	Create(ctx context.Context, a *entities.AIAnalysis) error
	// Recent lists the user's analyses, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]entities.AIAnalysis, error)
}
