package repository

import (
	"context"

	"potager/entities"
)

type CatalogRepository interface {
	List(ctx context.Context, category string) ([]entities.Plant, error)
	FindByID(ctx context.Context, id string) (*entities.Plant, error)
	// FindByName matches name_fr exactly; the first row wins on duplicates.
	FindByName(ctx context.Context, name string) (*entities.Plant, error)
	Count(ctx context.Context) (int64, error)
	// Replace wipes the catalog and inserts plants in one transaction.
	Replace(ctx context.Context, plants []entities.Plant) error
}
