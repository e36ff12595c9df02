package repository

import (
	"context"

	"potager/entities"
)

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}
