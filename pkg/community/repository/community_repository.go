package repository

import (
	"context"

	"potager/entities"
)

type CommunityRepository interface {
	ListPosts(ctx context.Context, category string, limit int) ([]entities.CommunityPost, error)
	CreatePost(ctx context.Context, p *entities.CommunityPost) error
	FindPost(ctx context.Context, id string) (*entities.CommunityPost, error)
	// ToggleLike adds or removes the user's like and moves likes_count with it.
	ToggleLike(ctx context.Context, postID, userID string) (liked bool, likes int, err error)
	// AddComment stores c and bumps the post's comments_count.
	AddComment(ctx context.Context, c *entities.CommunityComment) error
	ListComments(ctx context.Context, postID string) ([]entities.CommunityComment, error)
}
