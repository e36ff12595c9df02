package service

import (
	"context"

	"potager/entities"
)

// Hit is one search result with its source document.
type Hit struct {
	ChunkID   uint    `json:"chunk_id"`
	DocID     uint    `json:"doc_id"`
	Ord       int     `json:"ord"`
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
	DocTitle  string  `json:"doc_title,omitempty"`
	SourceURL string  `json:"source_url,omitempty"`
}

type TipsService interface {
	AddDocument(ctx context.Context, title, tags, text, sourceURL string) (*entities.TipDocument, int, error)
	Search(ctx context.Context, query string, k int) ([]Hit, error)
	// SeedDefaults loads the built-in care tips when the knowledge base is empty.
	SeedDefaults(ctx context.Context) (int, error)
}
