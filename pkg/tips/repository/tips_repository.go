package repository

import (
	"context"

	"potager/entities"
)

type TipsRepository interface {
	// CreateDocument stores d and its chunks in one transaction.
	CreateDocument(ctx context.Context, d *entities.TipDocument, chunks []entities.TipChunk) error
	AllChunks(ctx context.Context) ([]entities.TipChunk, error)
	DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.TipDocument, error)
	CountDocuments(ctx context.Context) (int64, error)
}
