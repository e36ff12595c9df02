package service

import (
	"context"

	"potager/entities"
)

type PostInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	ImageBase64   string `json:"image_base64"`
	PlantCategory string `json:"plant_category"`
}

type CommentInput struct {
	Content string `json:"content"`
}

type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

type CommunityService interface {
	List(ctx context.Context, category string) ([]entities.CommunityPost, error)
	Publish(ctx context.Context, user *entities.User, in PostInput) (*entities.CommunityPost, error)
	ToggleLike(ctx context.Context, user *entities.User, postID string) (*LikeResult, error)
	Comment(ctx context.Context, user *entities.User, postID string, in CommentInput) (*entities.CommunityComment, error)
	Comments(ctx context.Context, postID string) ([]entities.CommunityComment, error)
}
